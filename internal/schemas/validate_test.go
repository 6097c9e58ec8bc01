package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeData_MinimalValidDocument(t *testing.T) {
	err := ValidateResumeData([]byte(`{}`))
	assert.NoError(t, err)
}

func TestValidateResumeData_FullDocument(t *testing.T) {
	doc := `{
		"personal_info": {"full_name": "Jane Doe", "email": "jane@example.com"},
		"summary": "Backend engineer",
		"skills": {
			"technical": ["APIs"],
			"soft": ["communication"],
			"programming_languages": ["Go"],
			"tools_frameworks": ["Docker"]
		},
		"work_experience": [
			{"company": "Acme", "position": "Engineer", "start_date": "2020-01", "end_date": "Present", "is_current": true}
		],
		"education": [{"degree": "BSc", "institution": "State University"}],
		"certifications": [{"name": "CKA"}],
		"projects": [{"name": "sideproject", "technologies": ["Go"]}]
	}`

	err := ValidateResumeData([]byte(doc))
	assert.NoError(t, err)
}

func TestValidateResumeData_NullFieldsAllowed(t *testing.T) {
	doc := `{
		"personal_info": {"full_name": null, "email": null},
		"summary": null,
		"skills": null,
		"work_experience": null
	}`

	err := ValidateResumeData([]byte(doc))
	assert.NoError(t, err)
}

func TestValidateResumeData_UnknownExtraFieldsIgnored(t *testing.T) {
	doc := `{"summary": "ok", "model_confidence": 0.93, "debug": {"tokens": 512}}`

	err := ValidateResumeData([]byte(doc))
	assert.NoError(t, err)
}

func TestValidateResumeData_WrongTypeRejected(t *testing.T) {
	doc := `{"work_experience": "three years at Acme"}`

	err := ValidateResumeData([]byte(doc))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateResumeData_MalformedJSON(t *testing.T) {
	err := ValidateResumeData([]byte(`{not json`))
	assert.Error(t, err)
}
