package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for hearing dates
const DateLayout = "2006-01-02"

// ParseDate parses a civil date. The result is midnight UTC so that values
// round-trip through Postgres DATE columns unchanged.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must use YYYY-MM-DD format", s)
	}
	return d, nil
}

// FormatDate renders the civil date part of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf truncates t to its civil date in loc and returns it as midnight UTC.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the first and last civil dates of the given month.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	if year < 1900 || year > 9999 {
		return time.Time{}, time.Time{}, fmt.Errorf("year %d out of range", year)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}
