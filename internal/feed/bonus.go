package feed

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// topTechEmployers is the fixed set of well-known technology employers that
// earn a ranking bonus.
var topTechEmployers = []string{
	"google", "amazon", "microsoft", "meta", "apple", "netflix",
	"uber", "airbnb", "stripe", "linkedin", "atlassian",
	"salesforce", "oracle", "nvidia",
}

// highPayMarkers are salary-string fragments that signal a high-paying role.
var highPayMarkers = []string{
	"100k", "120k", "150k", "200k", "250k", "300k",
	"30l", "40l", "50l", "60l",
	"100,000", "150,000", "200,000",
	"crore", "cr",
}

// Bonus point values.
const (
	topEmployerBonus    = 25
	highSalaryBonus     = 15
	currencySalaryBonus = 10
)

// isTopTechEmployer reports whether the company name matches a well-known
// technology employer, by case-insensitive substring.
func isTopTechEmployer(company string) bool {
	c := strings.ToLower(company)
	if c == "" {
		return false
	}
	for _, employer := range topTechEmployers {
		if strings.Contains(c, employer) {
			return true
		}
	}
	return false
}

// salaryBonus scores the salary string: a high-pay marker wins the full
// bonus; otherwise any dollar amount earns a lesser one.
func salaryBonus(salary string) int {
	s := strings.ToLower(salary)
	if s == "" {
		return 0
	}

	for _, marker := range highPayMarkers {
		if strings.Contains(s, marker) {
			return highSalaryBonus
		}
	}

	if strings.Contains(s, "$") && strings.ContainsAny(s, "0123456789") {
		return currencySalaryBonus
	}

	return 0
}

// bonusScore sums the employer and salary bonuses for a job.
func bonusScore(job *types.Job) int {
	bonus := 0
	if isTopTechEmployer(job.Company) {
		bonus += topEmployerBonus
	}
	bonus += salaryBonus(job.Salary)
	return bonus
}
