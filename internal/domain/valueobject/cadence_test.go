package valueobject

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCadenceNextDue(t *testing.T) {
	tests := []struct {
		name    string
		cadence Cadence
		from    time.Time
		want    time.Time
	}{
		{"weekly adds seven days", CadenceWeekly, date(2024, time.March, 1), date(2024, time.March, 8)},
		{"weekly crosses month boundary", CadenceWeekly, date(2024, time.January, 29), date(2024, time.February, 5)},
		{"biweekly adds fourteen days", CadenceBiweekly, date(2024, time.March, 1), date(2024, time.March, 15)},
		{"monthly keeps day of month", CadenceMonthly, date(2024, time.March, 10), date(2024, time.April, 10)},
		{"monthly wraps year", CadenceMonthly, date(2024, time.December, 15), date(2025, time.January, 15)},
		{"monthly clamps jan 31 into february", CadenceMonthly, date(2024, time.January, 31), date(2024, time.February, 28)},
		{"monthly clamps jan 30 into february", CadenceMonthly, date(2023, time.January, 30), date(2023, time.February, 28)},
		{"monthly clamps march 31 into april", CadenceMonthly, date(2024, time.March, 31), date(2024, time.April, 28)},
		{"monthly keeps jan 29 in leap february", CadenceMonthly, date(2024, time.January, 29), date(2024, time.February, 29)},
		{"yearly keeps month and day", CadenceYearly, date(2024, time.June, 15), date(2025, time.June, 15)},
		{"yearly clamps leap day", CadenceYearly, date(2024, time.February, 29), date(2025, time.February, 28)},
		{"unknown cadence advances monthly", Cadence("fortnightly"), date(2024, time.May, 3), date(2024, time.June, 3)},
		{"empty cadence advances monthly", Cadence(""), date(2024, time.May, 3), date(2024, time.June, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cadence.NextDue(tt.from)
			if !got.Equal(tt.want) {
				t.Errorf("NextDue(%s) = %s, want %s", FormatDate(tt.from), FormatDate(got), FormatDate(tt.want))
			}
		})
	}
}

func TestParseCadenceFallsBackToMonthly(t *testing.T) {
	if got := ParseCadence("quarterly"); got != CadenceMonthly {
		t.Errorf("ParseCadence(quarterly) = %s, want monthly", got)
	}
	if got := ParseCadence("biweekly"); got != CadenceBiweekly {
		t.Errorf("ParseCadence(biweekly) = %s, want biweekly", got)
	}
}

func TestCollapseCategory(t *testing.T) {
	if got := CollapseCategory(CategoryNeed, true); got != CategoryNeedRecurrence {
		t.Errorf("recurring need should collapse to need_recurrence, got %s", got)
	}
	if got := CollapseCategory(CategoryNeed, false); got != CategoryNeed {
		t.Errorf("non-recurring need should stay need, got %s", got)
	}
	if got := CollapseCategory(CategoryWants, true); got != CategoryWants {
		t.Errorf("recurring wants should stay wants, got %s", got)
	}
}
