package types

import "time"

// Job is a single job posting from the catalog.
// RequiredSkills and PreferredSkills are compared case-insensitively and must
// be trimmed before any set operation.
type Job struct {
	ID       string `json:"id,omitempty"`
	JobID    string `json:"job_id"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	Location string `json:"location"`
	IsRemote bool   `json:"is_remote"`
	Type     string `json:"type"`

	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	ExperienceLevel    string   `json:"experience_level,omitempty"`
	MinYearsExperience *int     `json:"min_years_experience,omitempty"`
	MaxYearsExperience *int     `json:"max_years_experience,omitempty"`

	Description string     `json:"description"`
	Salary      string     `json:"salary,omitempty"`
	PostedAt    time.Time  `json:"posted_at"`
	ExpireAt    *time.Time `json:"expire_at,omitempty"`
	URL         string     `json:"url"`
	Source      string     `json:"source"`
	IsVerified  bool       `json:"is_verified"`
}

// RawJobRecord is a freshly scraped job record before validity filtering.
// Field presence is enforced by the verify package; the validate tags mark
// the fields that must be non-blank for the record to be storable.
type RawJobRecord struct {
	JobID       string `json:"job_id" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Location    string `json:"location" validate:"required"`
	IsRemote    bool   `json:"is_remote"`
	Type        string `json:"type"`
	Description string `json:"description" validate:"required"`
	Salary      string `json:"salary"`
	URL         string `json:"url" validate:"required"`
	Source      string `json:"source"`

	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	ExperienceLevel string   `json:"experience_level"`
	PostedAt        string   `json:"posted_at"`
}
