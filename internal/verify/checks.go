package verify

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-matcher/internal/types"
)

var validate = validator.New()

// RequiredFieldsCheck rejects records missing any of job_id, company, role,
// description, url or location, or whose values are blank.
type RequiredFieldsCheck struct{}

func (c *RequiredFieldsCheck) Name() string  { return "required_fields" }
func (c *RequiredFieldsCheck) Enabled() bool { return true }

func (c *RequiredFieldsCheck) Apply(_ context.Context, rec *types.RawJobRecord) bool {
	trimmed := *rec
	trimmed.JobID = strings.TrimSpace(rec.JobID)
	trimmed.Company = strings.TrimSpace(rec.Company)
	trimmed.Role = strings.TrimSpace(rec.Role)
	trimmed.Location = strings.TrimSpace(rec.Location)
	trimmed.Description = strings.TrimSpace(rec.Description)
	trimmed.URL = strings.TrimSpace(rec.URL)

	return validate.Struct(&trimmed) == nil
}

// placeholderCompanyTerms are generic placeholder substrings that signal the
// posting hides or lacks a real employer.
var placeholderCompanyTerms = []string{"confidential", "hiring"}

// CompanyProfileCheck rejects records with a blank or placeholder company name.
type CompanyProfileCheck struct{}

func (c *CompanyProfileCheck) Name() string  { return "company_profile" }
func (c *CompanyProfileCheck) Enabled() bool { return true }

func (c *CompanyProfileCheck) Apply(_ context.Context, rec *types.RawJobRecord) bool {
	company := strings.ToLower(strings.TrimSpace(rec.Company))
	if company == "" {
		return false
	}
	for _, term := range placeholderCompanyTerms {
		if strings.Contains(company, term) {
			return false
		}
	}
	return true
}

// VagueDescriptionCheck is the slot for a description-quality classifier.
// It is disabled on purpose: the classifier proved too aggressive for
// production traffic. The extension point stays so it can be re-enabled.
type VagueDescriptionCheck struct{}

func (c *VagueDescriptionCheck) Name() string  { return "vague_description" }
func (c *VagueDescriptionCheck) Enabled() bool { return false }

func (c *VagueDescriptionCheck) Apply(_ context.Context, _ *types.RawJobRecord) bool {
	return true
}
