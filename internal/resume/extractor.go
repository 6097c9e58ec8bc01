// Package resume turns extracted résumé text into a normalized candidate profile.
package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

// maxPromptChars caps how much résumé text is sent to the model.
const maxPromptChars = 15000

// StructuredExtractor turns raw résumé text into structured resume data.
// The backing implementation (hosted API, local model, test fake) is
// substituted via dependency injection.
type StructuredExtractor interface {
	Extract(ctx context.Context, text string) (*types.ResumeData, error)
}

// LLMExtractor implements StructuredExtractor on top of an llm.Client.
type LLMExtractor struct {
	client llm.Client
	logger *zap.Logger
}

// NewLLMExtractor creates an extractor backed by the given LLM client.
func NewLLMExtractor(client llm.Client, logger *zap.Logger) *LLMExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMExtractor{client: client, logger: logger}
}

const extractionSystemPrompt = "You are an expert resume parser. " +
	"Extract structured information accurately and return valid JSON only."

// Extract sends résumé text to the LLM and validates the structured response.
func (e *LLMExtractor) Extract(ctx context.Context, text string) (*types.ResumeData, error) {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}

	prompt := buildParsingPrompt(text)

	response, err := e.client.GenerateJSON(ctx, extractionSystemPrompt, prompt)
	if err != nil {
		return nil, &StructuredExtractionError{Message: "LLM call failed", Cause: err}
	}

	jsonBytes := []byte(llm.CleanJSONBlock(response))

	if err := schemas.ValidateResumeData(jsonBytes); err != nil {
		e.logger.Warn("extractor response failed schema validation", zap.Error(err))
		return nil, &StructuredExtractionError{Message: "response does not match resume schema", Cause: err}
	}

	var data types.ResumeData
	if err := json.Unmarshal(jsonBytes, &data); err != nil {
		return nil, &StructuredExtractionError{Message: "failed to parse JSON response", Cause: err}
	}

	return &data, nil
}

// buildParsingPrompt constructs the extraction prompt around the résumé text.
func buildParsingPrompt(resumeText string) string {
	return fmt.Sprintf(`Extract structured information from this resume and return ONLY a valid JSON object.

Resume Text:
%s

Return a JSON object with this EXACT structure:
{
  "personal_info": {
    "full_name": "string or null",
    "email": "string or null",
    "phone": "string or null",
    "location": "string or null",
    "linkedin_url": "string or null",
    "github_url": "string or null",
    "portfolio_url": "string or null"
  },
  "summary": "string or null",
  "skills": {
    "technical": ["skill1", "skill2"],
    "soft": ["skill1", "skill2"],
    "programming_languages": ["lang1", "lang2"],
    "tools_frameworks": ["tool1", "tool2"]
  },
  "work_experience": [
    {
      "company": "string",
      "position": "string",
      "location": "string or null",
      "start_date": "YYYY-MM or YYYY",
      "end_date": "YYYY-MM or YYYY or Present",
      "is_current": false,
      "responsibilities": ["resp1", "resp2"],
      "achievements": ["achievement1"],
      "technologies": ["tech1", "tech2"]
    }
  ],
  "education": [
    {
      "degree": "string",
      "field_of_study": "string or null",
      "institution": "string",
      "location": "string or null",
      "graduation_year": "YYYY",
      "gpa": "string or null"
    }
  ],
  "certifications": [
    {
      "name": "string",
      "issuer": "string or null",
      "date": "YYYY-MM or YYYY",
      "credential_id": "string or null"
    }
  ],
  "projects": [
    {
      "name": "string",
      "description": "string",
      "technologies": ["tech1", "tech2"],
      "url": "string or null"
    }
  ]
}

Rules:
- Use null for missing fields, not empty strings
- Extract ALL skills mentioned anywhere in the resume
- Normalize dates to YYYY-MM format when possible
- For current positions, set is_current to true and end_date to "Present"
- Be thorough - extract every detail
- Return ONLY the JSON object, no additional text
`, resumeText)
}
