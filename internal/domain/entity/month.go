package entity

import (
	"fmt"
	"time"
)

// Month identifies a calendar month, the derived grouping key for archive views.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month a timestamp falls into.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Before reports whether m is chronologically earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// String formats the month as "YYYY-MM" for rendering and log output.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
