package resume

import (
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/types"
)

// Builder converts structured resume data into a CandidateProfile, computing
// the derived fields (flattened skills, total years, tier, completeness).
type Builder struct {
	logger *zap.Logger
	now    func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock overrides the time source used for open-ended work entries.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a Builder.
func NewBuilder(logger *zap.Logger, opts ...BuilderOption) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Builder{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces a CandidateProfile from extracted resume data.
func (b *Builder) Build(data *types.ResumeData, userID string) *types.CandidateProfile {
	skills := types.Skills{
		Technical:            data.Skills.Technical,
		Soft:                 data.Skills.Soft,
		ProgrammingLanguages: data.Skills.ProgrammingLanguages,
		ToolsFrameworks:      data.Skills.ToolsFrameworks,
		AllSkillsNormalized:  FlattenSkills(data.Skills),
	}

	totalYears := b.totalYearsExperience(data.WorkExperience)

	profile := &types.CandidateProfile{
		UserID:         userID,
		PersonalInfo:   data.PersonalInfo,
		Summary:        data.Summary,
		Skills:         skills,
		WorkExperience: data.WorkExperience,
		Education:      data.Education,
		Certifications: data.Certifications,
		Projects:       data.Projects,

		TotalYearsExperience: totalYears,
		ExperienceLevel:      ExperienceLevel(totalYears),

		LastUpdated:   b.now().UTC(),
		ParsingStatus: types.ParsingSuccess,
	}
	profile.ProfileCompleteness = completeness(profile)

	return profile
}

// FailedProfile produces the terminal skeleton profile for an unrecoverable
// parse failure. The cause message is recorded in parsing_errors.
func (b *Builder) FailedProfile(userID string, cause error) *types.CandidateProfile {
	return &types.CandidateProfile{
		UserID:          userID,
		Skills:          types.Skills{},
		ExperienceLevel: types.LevelEntry,
		LastUpdated:     b.now().UTC(),
		ParsingStatus:   types.ParsingFailed,
		ParsingErrors:   []string{cause.Error()},
	}
}

// FlattenSkills concatenates the four skill categories into one lower-cased,
// trimmed list. Empty entries are dropped; duplicates are preserved, since
// downstream matching uses set semantics anyway.
func FlattenSkills(s types.SkillsData) []string {
	raw := make([]string, 0, len(s.Technical)+len(s.Soft)+len(s.ProgrammingLanguages)+len(s.ToolsFrameworks))
	raw = append(raw, s.Technical...)
	raw = append(raw, s.Soft...)
	raw = append(raw, s.ProgrammingLanguages...)
	raw = append(raw, s.ToolsFrameworks...)

	flat := make([]string, 0, len(raw))
	for _, skill := range raw {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized != "" {
			flat = append(flat, normalized)
		}
	}
	return flat
}

// totalYearsExperience sums months across work entries with parseable date
// ranges and returns years rounded to one decimal. Entries with unusable
// dates are skipped with a warning, never aborting the build.
func (b *Builder) totalYearsExperience(entries []types.WorkExperience) float64 {
	totalMonths := 0

	for _, exp := range entries {
		if strings.TrimSpace(exp.StartDate) == "" {
			continue
		}
		start, err := parseFlexibleDate(exp.StartDate)
		if err != nil {
			b.logger.Warn("could not parse experience start date",
				zap.String("company", exp.Company), zap.String("start_date", exp.StartDate))
			continue
		}

		var end time.Time
		switch {
		case exp.IsCurrent || exp.EndDate == "Present":
			end = b.now()
		case strings.TrimSpace(exp.EndDate) != "":
			end, err = parseFlexibleDate(exp.EndDate)
			if err != nil {
				b.logger.Warn("could not parse experience end date",
					zap.String("company", exp.Company), zap.String("end_date", exp.EndDate))
				continue
			}
		default:
			continue
		}

		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		if months > 0 {
			totalMonths += months
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}

// ExperienceLevel classifies total years into the fixed tier ordering.
// Thresholds are inclusive on the lower bound, exclusive on the upper.
func ExperienceLevel(years float64) string {
	switch {
	case years < 2:
		return types.LevelEntry
	case years < 5:
		return types.LevelMid
	case years < 10:
		return types.LevelSenior
	default:
		return types.LevelLead
	}
}

// completeness is the additive 0-100 profile completeness heuristic.
func completeness(p *types.CandidateProfile) int {
	score := 0

	// Personal info (30 points)
	if p.PersonalInfo.FullName != "" {
		score += 10
	}
	if p.PersonalInfo.Email != "" {
		score += 5
	}
	if p.PersonalInfo.Phone != "" {
		score += 5
	}
	if p.PersonalInfo.Location != "" {
		score += 5
	}
	if p.PersonalInfo.LinkedInURL != "" || p.PersonalInfo.GitHubURL != "" {
		score += 5
	}

	// Skills (25 points)
	if n := len(p.Skills.AllSkillsNormalized); n > 0 {
		score += min(n*2, 25)
	}

	// Work experience (25 points)
	if n := len(p.WorkExperience); n > 0 {
		score += min(n*10, 25)
	}

	// Education (10 points, flat)
	if len(p.Education) > 0 {
		score += 10
	}

	// Certifications (5 points, flat)
	if len(p.Certifications) > 0 {
		score += 5
	}

	// Projects (5 points, flat)
	if len(p.Projects) > 0 {
		score += 5
	}

	return min(score, 100)
}
