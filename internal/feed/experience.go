package feed

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rangePattern  = regexp.MustCompile(`^(\d+)\s*[-–]\s*(\d+)`)
	numberPattern = regexp.MustCompile(`^(\d+)`)
)

// labelYears maps free-text experience labels to an approximate minimum-years
// requirement. Order matters: more specific labels must win over labels they
// contain ("mid-senior" before "senior").
var labelYears = []struct {
	label string
	years int
}{
	{"not applicable", -1}, // no requirement
	{"entry", 0},
	{"fresher", 0},
	{"intern", 0},
	{"junior", 1},
	{"associate", 1},
	{"mid-senior", 3},
	{"mid", 3},
	{"senior", 5},
	{"lead", 7},
	{"principal", 8},
	{"director", 10},
	{"executive", 12},
	{"vp", 12},
}

// parseExperienceLabel parses a free-text experience label ("1-3 years",
// "Senior", "Mid-Senior level") into a minimum-years requirement. The second
// return value is false when the text carries no requirement.
func parseExperienceLabel(text string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" || s == "nan" {
		return 0, false
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		years, _ := strconv.Atoi(m[1])
		return years, true
	}
	if m := numberPattern.FindStringSubmatch(s); m != nil {
		years, _ := strconv.Atoi(m[1])
		return years, true
	}

	for _, entry := range labelYears {
		if strings.Contains(s, entry.label) {
			if entry.years < 0 {
				return 0, false
			}
			return entry.years, true
		}
	}

	return 0, false
}

// experienceScore is the 0-10 experience-fit component. An unparseable label
// means no requirement: neutral half credit and the job still counts as a fit.
func experienceScore(label string, userYears float64) (score int, fits bool) {
	required, ok := parseExperienceLabel(label)
	if !ok {
		return 5, true
	}

	switch {
	case float64(required) <= userYears+1:
		return 10, true
	case float64(required) <= userYears+3:
		return 5, true
	default:
		return 0, false
	}
}
