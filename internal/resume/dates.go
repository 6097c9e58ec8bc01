package resume

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts are the common résumé date shapes tried before falling back to
// fuzzy parsing.
var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	"Jan 2006",
	"January 2006",
	"01/2006",
	"2006",
}

var yearTokenPattern = regexp.MustCompile(`(19|20)\d{2}`)

// parseFlexibleDate parses the loosely formatted dates extractors produce.
// It tries exact layouts, then fuzzy parsing, then falls back to a bare
// 4-digit year token treated as January 1 of that year.
func parseFlexibleDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return t, nil
	}

	if match := yearTokenPattern.FindString(s); match != "" {
		year, _ := strconv.Atoi(match)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("could not parse date: %q", raw)
}
