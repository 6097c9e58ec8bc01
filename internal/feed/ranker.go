// Package feed ranks the full job catalog against a user's profile signals
// for the browse feed. Its weighting differs from the curated match scorer
// and adds employer and salary bonus heuristics.
package feed

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/types"
)

// defaultConcurrency bounds the per-job scoring goroutines.
const defaultConcurrency = 8

// Ranker scores and orders the catalog for one user.
type Ranker struct {
	logger      *zap.Logger
	concurrency int
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithConcurrency sets the scoring parallelism.
func WithConcurrency(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRanker creates a Ranker.
func NewRanker(logger *zap.Logger, opts ...Option) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Ranker{
		logger:      logger,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RankAll scores every job against the preferences and returns them ordered
// by score descending, ties broken by posted time descending then job id
// ascending. Scoring runs in parallel per job; the output order is total and
// deterministic.
func (r *Ranker) RankAll(ctx context.Context, prefs types.FeedPreferences, jobs []*types.Job) ([]types.ScoredJob, error) {
	userSkills := make(map[string]bool, len(prefs.Skills))
	for _, s := range prefs.Skills {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if normalized != "" {
			userSkills[normalized] = true
		}
	}

	scored := make([]types.ScoredJob, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, matching := scoreJob(job, prefs, userSkills)
			scored[i] = types.ScoredJob{
				Job:             job,
				Score:           score,
				MatchPercentage: fmt.Sprintf("%d%%", min(score, 100)),
				MatchingSkills:  matching,
				MatchReason:     buildMatchReason(score, matching, prefs.PreferredRole, job),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if !scored[i].Job.PostedAt.Equal(scored[j].Job.PostedAt) {
			return scored[i].Job.PostedAt.After(scored[j].Job.PostedAt)
		}
		return scored[i].Job.JobID < scored[j].Job.JobID
	})

	r.logger.Debug("ranked feed", zap.Int("jobs", len(jobs)))
	return scored, nil
}

// Skill-count tiers for the 0-50 skills component.
var skillCountTiers = []struct {
	count int
	score int
}{
	{7, 50},
	{5, 40},
	{3, 30},
	{2, 20},
	{1, 10},
}

// scoreJob computes the feed score for a single job.
// Skills 50, role 25, location 15, experience 10, plus bonuses up to 40.
func scoreJob(job *types.Job, prefs types.FeedPreferences, userSkills map[string]bool) (int, []string) {
	score := 0

	// Skills (0-50): required-skills overlap plus description scan, count-tiered.
	matching := matchedSkills(job, userSkills)
	for _, tier := range skillCountTiers {
		if len(matching) >= tier.count {
			score += tier.score
			break
		}
	}

	// Role keyword overlap (0-25).
	score += roleScore(prefs.PreferredRole, job.Role)

	// Location (0-15). Remote jobs match everyone.
	if job.IsRemote {
		score += 15
	} else if prefs.PreferredLocation != "" &&
		strings.Contains(strings.ToLower(job.Location), strings.ToLower(prefs.PreferredLocation)) {
		score += 15
	}

	// Experience fit (0-10).
	expScore, fits := experienceScore(job.ExperienceLevel, prefs.YearsExperience)
	score += expScore

	// Employer and salary bonuses only apply when the job fits the user's
	// experience; they exist to sort attractive fits higher, not to resurface
	// out-of-reach roles.
	if fits {
		score += bonusScore(job)
	}

	return score, matching
}

// matchedSkills unions the required-skills overlap with skills found in the
// description text.
func matchedSkills(job *types.Job, userSkills map[string]bool) []string {
	matched := make(map[string]bool)

	jobSkills := make(map[string]bool, len(job.RequiredSkills))
	for _, s := range job.RequiredSkills {
		jobSkills[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for skill := range userSkills {
		if jobSkills[skill] {
			matched[skill] = true
		}
	}

	for _, skill := range skillsInDescription(job.Description, userSkills) {
		matched[skill] = true
	}

	result := make([]string, 0, len(matched))
	for skill := range matched {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}

// roleScore splits the preferred role into tokens longer than two characters
// (hyphens act as separators) and scores the fraction found in the job role.
func roleScore(preferredRole, jobRole string) int {
	if preferredRole == "" {
		return 0
	}

	jobRoleLower := strings.ToLower(jobRole)
	roleLower := strings.ReplaceAll(strings.ToLower(preferredRole), "-", " ")

	var keywords []string
	for _, w := range strings.Fields(roleLower) {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return 0
	}

	matched := 0
	for _, kw := range keywords {
		if strings.Contains(jobRoleLower, kw) {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	return min(int(math.Round(float64(matched)/float64(len(keywords))*25)), 25)
}
