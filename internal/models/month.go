package models

import (
	"fmt"
	"time"
)

// Month is a month in a specific year. It is comparable and can be used as a map key.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month{Year: year, Month: month}
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}
	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Before reports whether m is earlier than n.
func (m Month) Before(n Month) bool {
	if m.Year != n.Year {
		return m.Year < n.Year
	}
	return m.Month < n.Month
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (m Month) MarshalCSV() (string, error) {
	return m.String(), nil
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (m *Month) UnmarshalCSV(s string) error {
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
