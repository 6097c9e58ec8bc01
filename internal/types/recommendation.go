package types

// JobSnapshot is the plain view of a job embedded in a Recommendation.
// It carries only caller-facing fields; storage metadata stays behind.
type JobSnapshot struct {
	ID              string   `json:"id,omitempty"`
	JobID           string   `json:"job_id"`
	Company         string   `json:"company"`
	Role            string   `json:"role"`
	Location        string   `json:"location"`
	IsRemote        bool     `json:"is_remote"`
	Type            string   `json:"type"`
	Salary          string   `json:"salary,omitempty"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	URL             string   `json:"url"`
	PostedAt        string   `json:"posted_at,omitempty"`
}

// Recommendation is the computed match view for one (profile, job) pair.
// It is never persisted; a fresh one is produced per scoring call.
type Recommendation struct {
	Job             JobSnapshot `json:"job"`
	MatchScore      float64     `json:"match_score"`
	MatchPercentage string      `json:"match_percentage"`
	MatchingSkills  []string    `json:"matching_skills"`
	MissingSkills   []string    `json:"missing_skills"`
}

// FeedPreferences carries the profile signals the feed ranker scores against.
type FeedPreferences struct {
	Skills            []string `json:"skills"`
	YearsExperience   float64  `json:"years_experience"`
	PreferredRole     string   `json:"preferred_role,omitempty"`
	PreferredLocation string   `json:"preferred_location,omitempty"`
}

// ScoredJob is one entry of the personalized feed. Score may exceed 100 with
// bonuses; MatchPercentage caps the displayed value at 100.
type ScoredJob struct {
	Job             *Job     `json:"job"`
	Score           int      `json:"score"`
	MatchPercentage string   `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	MatchReason     string   `json:"match_reason"`
}
