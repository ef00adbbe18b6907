package valueobject

import "time"

// Cadence is the recurrence interval keyword governing how a bill's due
// date advances.
type Cadence string

const (
	CadenceWeekly   Cadence = "weekly"
	CadenceBiweekly Cadence = "biweekly"
	CadenceMonthly  Cadence = "monthly"
	CadenceYearly   Cadence = "yearly"
)

// clampDay is the fallback day-of-month used when advancing a month-edge
// date into a shorter month (e.g. Jan 31 -> Feb). Clamping to 28 instead of
// the last valid day is a documented approximation: it is always valid and
// deterministic, at the cost of silently shifting edge-of-month due dates.
const clampDay = 28

// ParseCadence normalizes a cadence keyword. Unknown values fall back to
// monthly advancement rather than failing.
func ParseCadence(s string) Cadence {
	switch Cadence(s) {
	case CadenceWeekly, CadenceBiweekly, CadenceMonthly, CadenceYearly:
		return Cadence(s)
	default:
		return CadenceMonthly
	}
}

// NextDue computes the next occurrence date after from.
//
//	weekly    +7 days
//	biweekly  +14 days
//	monthly   +1 calendar month, same day-of-month (clamped, see clampDay)
//	yearly    +1 year, same month/day (clamped)
//
// Any unrecognized cadence advances monthly.
func (c Cadence) NextDue(from time.Time) time.Time {
	switch c {
	case CadenceWeekly:
		return from.AddDate(0, 0, 7)
	case CadenceBiweekly:
		return from.AddDate(0, 0, 14)
	case CadenceYearly:
		return addClamped(from, from.Year()+1, from.Month())
	default:
		year, month := from.Year(), from.Month()+1
		if month > time.December {
			year, month = year+1, time.January
		}
		return addClamped(from, year, month)
	}
}

// addClamped builds a date in the target year/month keeping from's
// day-of-month, clamping to clampDay when that day does not exist there.
func addClamped(from time.Time, year int, month time.Month) time.Time {
	day := from.Day()
	if day > daysIn(year, month) {
		day = clampDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, from.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
