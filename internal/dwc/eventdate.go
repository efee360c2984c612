package dwc

import (
	"fmt"
	"strconv"
	"strings"
)

// qualifier tokens stripped from raw first-occurrence expressions.
var dateQualifiers = []string{"< ", "<", "before "}

// EventDate derives the "{start}/{end}" interval from a raw first-occurrence
// expression. Qualifier tokens ("< 2005", "before 1998") are stripped; a
// "start-end" expression is split on the dash. When no end year is present,
// the range closes at defaultEnd, except that a start year later than
// defaultEnd closes at runYear instead: records added after the reference
// publication are considered current as of processing time.
//
// A start or end that does not parse as a year is a structural error; the
// caller aborts the run.
func EventDate(raw string, defaultEnd, runYear int) (string, error) {
	s := strings.TrimSpace(raw)
	for _, q := range dateQualifiers {
		if strings.HasPrefix(s, q) {
			s = strings.TrimSpace(strings.TrimPrefix(s, q))
			break
		}
	}
	if s == "" {
		return "", fmt.Errorf("empty date expression %q", raw)
	}

	startStr, endStr, hasEnd := strings.Cut(s, "-")
	start, err := parseYear(startStr)
	if err != nil {
		return "", fmt.Errorf("date expression %q: %w", raw, err)
	}

	var end int
	switch {
	case hasEnd:
		end, err = parseYear(endStr)
		if err != nil {
			return "", fmt.Errorf("date expression %q: %w", raw, err)
		}
	case start > defaultEnd:
		end = runYear
	default:
		end = defaultEnd
	}

	return fmt.Sprintf("%d/%d", start, end), nil
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	y, err := strconv.Atoi(s)
	if err != nil || y < 1000 || y > 9999 {
		return 0, fmt.Errorf("%q is not a year", s)
	}
	return y, nil
}
