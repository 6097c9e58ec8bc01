package feed

import (
	"regexp"
	"sort"
	"strings"
)

// skillsInDescription finds user skills mentioned in a job description.
// Tokens of two characters or fewer ("c", "r", "go") require whole-word
// boundaries so "r" cannot match inside "requirements"; longer skills use
// plain substring matching.
func skillsInDescription(description string, userSkills map[string]bool) []string {
	if description == "" || len(userSkills) == 0 {
		return nil
	}

	descLower := strings.ToLower(description)

	var matched []string
	for skill := range userSkills {
		if len(skill) <= 2 {
			pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(skill) + `\b`)
			if err != nil {
				continue
			}
			if pattern.MatchString(descLower) {
				matched = append(matched, skill)
			}
		} else if strings.Contains(descLower, skill) {
			matched = append(matched, skill)
		}
	}

	sort.Strings(matched)
	return matched
}
