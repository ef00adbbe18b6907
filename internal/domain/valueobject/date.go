package valueobject

import "time"

// DateLayout is the wire format for calendar dates (expense dates, bill due
// dates). Dates are stored as strings so that lexical comparison matches
// chronological comparison.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date, accepting either the plain date layout
// or a full RFC 3339 timestamp (legacy rows carry both).
func ParseDate(s string) (time.Time, error) {
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// FormatDate renders t in the wire date format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
