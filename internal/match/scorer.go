// Package match computes compatibility scores between candidate profiles and
// individual job postings.
package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Component weights. The four components sum to 100.
const (
	requiredSkillsWeight = 50.0
	// neutralRequiredCredit is awarded when a job lists no required skills.
	neutralRequiredCredit = 25.0
	preferredSkillsWeight = 20.0
	levelExactScore       = 20.0
	levelAdjacentScore    = 10.0
	levelOverqualified    = 5.0
	yearsInRangeScore     = 10.0
	yearsOverMaxScore     = 5.0
	yearsUnderMinScore    = 3.0
)

// Scorer computes match scores. It is stateless and safe for concurrent use.
type Scorer struct{}

// NewScorer creates a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the 0-100 compatibility score between a profile and a job.
func (s *Scorer) Score(profile *types.CandidateProfile, job *types.Job) float64 {
	score := 0.0

	userSkills := normalizeSkillSet(profile.Skills.AllSkillsNormalized)

	// 1. Required skills (0-50). A job with no required skills gets neutral credit.
	requiredSkills := normalizeSkillSet(job.RequiredSkills)
	if len(requiredSkills) > 0 {
		score += ratio(intersectionSize(userSkills, requiredSkills), len(requiredSkills)) * requiredSkillsWeight
	} else {
		score += neutralRequiredCredit
	}

	// 2. Preferred skills (0-20). No neutral credit here; the asymmetry with
	// required skills is intentional.
	preferredSkills := normalizeSkillSet(job.PreferredSkills)
	if len(preferredSkills) > 0 {
		score += ratio(intersectionSize(userSkills, preferredSkills), len(preferredSkills)) * preferredSkillsWeight
	}

	// 3. Experience level (0-20).
	if job.ExperienceLevel != "" {
		score += levelScore(profile.ExperienceLevel, strings.ToLower(job.ExperienceLevel))
	}

	// 4. Years of experience (0-10), only when the job bounds it.
	if job.MinYearsExperience != nil || job.MaxYearsExperience != nil {
		score += yearsScore(profile.TotalYearsExperience, job.MinYearsExperience, job.MaxYearsExperience)
	}

	return math.Min(math.Round(score*100)/100, 100.0)
}

// MatchingSkills returns the profile's overlap with and gaps against the
// job's required skills. Preferred skills do not feed this explanation.
func (s *Scorer) MatchingSkills(profile *types.CandidateProfile, job *types.Job) (matching, missing []string) {
	userSkills := normalizeSkillSet(profile.Skills.AllSkillsNormalized)
	requiredSkills := normalizeSkillSet(job.RequiredSkills)

	matching = make([]string, 0, len(requiredSkills))
	missing = make([]string, 0, len(requiredSkills))
	for skill := range requiredSkills {
		if userSkills[skill] {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)
	return matching, missing
}

// Recommend builds the full recommendation view for one (profile, job) pair.
func (s *Scorer) Recommend(profile *types.CandidateProfile, job *types.Job) *types.Recommendation {
	score := s.Score(profile, job)
	matching, missing := s.MatchingSkills(profile, job)

	postedAt := ""
	if !job.PostedAt.IsZero() {
		postedAt = job.PostedAt.Format("2006-01-02T15:04:05Z07:00")
	}

	return &types.Recommendation{
		Job: types.JobSnapshot{
			ID:              job.ID,
			JobID:           job.JobID,
			Company:         job.Company,
			Role:            job.Role,
			Location:        job.Location,
			IsRemote:        job.IsRemote,
			Type:            job.Type,
			Salary:          job.Salary,
			Description:     job.Description,
			RequiredSkills:  job.RequiredSkills,
			PreferredSkills: job.PreferredSkills,
			ExperienceLevel: job.ExperienceLevel,
			URL:             job.URL,
			PostedAt:        postedAt,
		},
		MatchScore:      score,
		MatchPercentage: fmt.Sprintf("%d%%", int(score)),
		MatchingSkills:  matching,
		MissingSkills:   missing,
	}
}

// normalizeSkillSet lower-cases and trims skills into a set, dropping blanks.
func normalizeSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

func intersectionSize(a, b map[string]bool) int {
	n := 0
	for skill := range a {
		if b[skill] {
			n++
		}
	}
	return n
}

func ratio(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// yearsScore evaluates the profile's years against the job's bounds.
// A missing bound defaults to min=0 or max=100.
func yearsScore(userYears float64, minBound, maxBound *int) float64 {
	minYears := 0.0
	if minBound != nil {
		minYears = float64(*minBound)
	}
	maxYears := 100.0
	if maxBound != nil {
		maxYears = float64(*maxBound)
	}

	switch {
	case userYears >= minYears && userYears <= maxYears:
		return yearsInRangeScore
	case userYears > maxYears && userYears-maxYears <= 3:
		return yearsOverMaxScore
	case userYears < minYears && minYears-userYears <= 1:
		return yearsUnderMinScore
	default:
		return 0
	}
}
