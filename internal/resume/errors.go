package resume

import "fmt"

// StructuredExtractionError represents a failure of the structured extraction
// call: timeout, transport error, malformed JSON, or schema mismatch. All are
// treated uniformly and degrade the parse attempt to a failed profile.
type StructuredExtractionError struct {
	Message string
	Cause   error
}

func (e *StructuredExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("structured extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("structured extraction failed: %s", e.Message)
}

func (e *StructuredExtractionError) Unwrap() error {
	return e.Cause
}
