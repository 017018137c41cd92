// Package dates parses the date and time strings the seed catalog and the
// API accept.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the calendar-date format used on the wire.
const Layout = "2006-01-02"

var layouts = []string{time.RFC3339, "2006-01-02 15:04", Layout}

// Parse accepts a date, a date with minutes, or RFC 3339. Times without a
// zone are UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseOptional is Parse that maps "" to the zero time.
func ParseOptional(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return Parse(s)
}
