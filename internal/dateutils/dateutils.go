// Package dateutils provides the date layouts and helpers shared by the expense pipeline.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts used throughout the application
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutFull    = "2006-01-02 15:04:05"
	DateLayoutRFC3339 = time.RFC3339
	DateLayoutUS      = "01/02/2006"
	DateLayoutDotted  = "01.02.2006"
)

// CommonFormats is the ordered list of layouts tried by ParseDate.
// ISO comes first since it is what the generator writes. Ambiguous numeric
// dates are read month first.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutRFC3339,
	"2006/01/02",
	DateLayoutUS,
	DateLayoutDotted,
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using CommonFormats.
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("empty date")
	}

	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, layout, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims and collapses whitespace
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// StartOfDay drops the clock part of a time, keeping its location.
func StartOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}
