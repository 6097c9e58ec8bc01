package feed

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Score thresholds for the human-readable reason line.
const (
	excellentMatchThreshold = 70
	goodMatchThreshold      = 45
	fairMatchThreshold      = 20
)

// buildMatchReason generates the short human-readable line shown next to a
// feed entry.
func buildMatchReason(score int, matchingSkills []string, preferredRole string, job *types.Job) string {
	var reasons []string

	switch {
	case len(matchingSkills) >= 5:
		reasons = append(reasons, fmt.Sprintf("%d skills match", len(matchingSkills)))
	case len(matchingSkills) >= 2:
		reasons = append(reasons, strings.Join(matchingSkills[:min(3, len(matchingSkills))], ", ")+" match")
	case len(matchingSkills) == 1:
		reasons = append(reasons, matchingSkills[0]+" matches")
	}

	if preferredRole != "" && strings.Contains(strings.ToLower(job.Role), strings.ToLower(preferredRole)) {
		reasons = append(reasons, "Preferred role")
	}

	if job.IsRemote {
		reasons = append(reasons, "Remote")
	}

	if isTopTechEmployer(job.Company) {
		reasons = append(reasons, "Top Tech")
	}

	if salaryBonus(job.Salary) > 0 {
		reasons = append(reasons, "High Pay")
	}

	switch {
	case score >= excellentMatchThreshold:
		return "Excellent match! " + strings.Join(firstN(reasons, 2), ", ")
	case score >= goodMatchThreshold:
		return "Good match: " + strings.Join(firstN(reasons, 2), ", ")
	case score >= fairMatchThreshold:
		if len(reasons) > 0 {
			return reasons[0]
		}
		return "Consider applying"
	default:
		return "Available position"
	}
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
