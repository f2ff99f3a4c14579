package model

import "time"

// DateLayout is the wire and display form for calendar dates.
const DateLayout = "2006-01-02"

// DateOf truncates a timestamp to its calendar date at UTC midnight.
// All date comparisons in the planner and tracker operate on these values.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a date-only value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a date-only value as YYYY-MM-DD. Zero dates render
// as an empty string so unset exam dates do not show as year 1.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DaysBetween returns the whole number of calendar days from one date to
// another, negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}
