// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Parsing status values for a CandidateProfile.
const (
	ParsingPending = "pending"
	ParsingSuccess = "success"
	ParsingPartial = "partial"
	ParsingFailed  = "failed"
)

// Experience tier values, ordered from least to most experienced.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
	LevelLead   = "lead"
)

// PersonalInfo holds the contact block extracted from a résumé.
// All fields are optional; absent values stay empty.
type PersonalInfo struct {
	FullName     string `json:"full_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	GitHubURL    string `json:"github_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

// Skills groups extracted skills by category. AllSkillsNormalized is the
// derived flat list: every category entry lower-cased and trimmed, empty
// entries dropped, duplicates preserved.
type Skills struct {
	Technical            []string `json:"technical"`
	Soft                 []string `json:"soft"`
	ProgrammingLanguages []string `json:"programming_languages"`
	ToolsFrameworks      []string `json:"tools_frameworks"`
	AllSkillsNormalized  []string `json:"all_skills_normalized"`
}

// WorkExperience is a single employment record. Dates are kept as the raw
// strings the extractor produced ("2021-03", "2019", "Present", ...).
type WorkExperience struct {
	Company          string   `json:"company,omitempty"`
	Position         string   `json:"position,omitempty"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	IsCurrent        bool     `json:"is_current"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
}

// Education is a single education record.
type Education struct {
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Location       string `json:"location,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// Certification is a single certification record.
type Certification struct {
	Name         string `json:"name,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// Project is a single project record.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// CandidateProfile is the normalized representation of a parsed résumé.
// A profile is created once per parse attempt and superseded, not mutated,
// when the résumé is re-uploaded.
type CandidateProfile struct {
	UserID       string       `json:"user_id"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary,omitempty"`
	Skills       Skills       `json:"skills"`

	WorkExperience []WorkExperience `json:"work_experience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Projects       []Project        `json:"projects"`

	// Derived fields, computed by the profile builder.
	TotalYearsExperience float64 `json:"total_years_experience"`
	ExperienceLevel      string  `json:"experience_level"`
	ProfileCompleteness  int     `json:"profile_completeness"`

	LastUpdated   time.Time `json:"last_updated"`
	ParsingStatus string    `json:"parsing_status"`
	ParsingErrors []string  `json:"parsing_errors,omitempty"`
}

// ResumeData is the structured dictionary returned by the extraction step,
// mirroring the JSON contract of the structured extractor. Fields absent from
// the response unmarshal to their zero values.
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Summary        string           `json:"summary"`
	Skills         SkillsData       `json:"skills"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Projects       []Project        `json:"projects"`
}

// SkillsData is the raw skills block from the extractor, before normalization.
type SkillsData struct {
	Technical            []string `json:"technical"`
	Soft                 []string `json:"soft"`
	ProgrammingLanguages []string `json:"programming_languages"`
	ToolsFrameworks      []string `json:"tools_frameworks"`
}
