package tabular

import (
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts tried in order. The onboarding roster uses the
// day-first "02/01/2006 15:04" format; transaction logs have been seen in
// ISO and RFC3339 variants.
var timestampLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
	"2006/01/02 15:04:05",
}

// ParseTimestamp leniently parses a timestamp cell. Unparseable or empty
// values become nil, never an error.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseAmount coerces a numeric cell. Non-numeric or empty values become
// nil and are excluded from sums while still counting as rows.
func ParseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
