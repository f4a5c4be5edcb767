package lending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysPerInstallment(t *testing.T) {
	tests := []struct {
		cadence Cadence
		days    int
	}{
		{CadenceDaily, 1},
		{CadenceMonFri, 1},
		{CadenceMonSat, 1},
		{CadenceWeekly, 7},
		{CadenceBiweekly, 15},
		{CadenceEvery14Days, 14},
		{CadenceEndOfMonth, 30},
		{CadenceMonthly, 30},
		{CadenceQuarterly, 90},
		{CadenceFourMonthly, 120},
		{CadenceSemiannual, 180},
		{CadenceAnnual, 365},
		{Cadence("garbage"), 1},
		{Cadence(""), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.cadence), func(t *testing.T) {
			assert.Equal(t, tt.days, tt.cadence.DaysPerInstallment())
		})
	}
}

func TestElapsedInstallments_BusinessDayWalk(t *testing.T) {
	// 2024-01-01 is a Monday. Two full calendar weeks must give exactly
	// 10 working days for mon_fri and 12 for mon_sat.
	start := date(2024, time.January, 1)
	twoWeeksLater := start.AddDate(0, 0, 14)

	assert.Equal(t, 10, ElapsedInstallments(CadenceMonFri, start, twoWeeksLater))
	assert.Equal(t, 12, ElapsedInstallments(CadenceMonSat, start, twoWeeksLater))
	assert.Equal(t, 14, ElapsedInstallments(CadenceDaily, start, twoWeeksLater))
}

func TestElapsedInstallments_WeekBoundaries(t *testing.T) {
	// Friday start: the next three calendar days hold exactly one mon_fri
	// working day (Monday) and two mon_sat days (Saturday, Monday).
	friday := date(2024, time.January, 5)

	assert.Equal(t, 0, ElapsedInstallments(CadenceMonFri, friday, friday.AddDate(0, 0, 2)))
	assert.Equal(t, 1, ElapsedInstallments(CadenceMonFri, friday, friday.AddDate(0, 0, 3)))
	assert.Equal(t, 1, ElapsedInstallments(CadenceMonSat, friday, friday.AddDate(0, 0, 1)))
	assert.Equal(t, 2, ElapsedInstallments(CadenceMonSat, friday, friday.AddDate(0, 0, 3)))
}

func TestElapsedInstallments_FixedCadences(t *testing.T) {
	start := date(2024, time.March, 1)

	assert.Equal(t, 2, ElapsedInstallments(CadenceWeekly, start, start.AddDate(0, 0, 14)))
	assert.Equal(t, 1, ElapsedInstallments(CadenceWeekly, start, start.AddDate(0, 0, 13)))
	assert.Equal(t, 2, ElapsedInstallments(CadenceBiweekly, start, start.AddDate(0, 0, 30)))
	assert.Equal(t, 1, ElapsedInstallments(CadenceMonthly, start, start.AddDate(0, 0, 59)))
}

func TestElapsedInstallments_BeforeStart(t *testing.T) {
	start := date(2024, time.June, 10)

	assert.Equal(t, 0, ElapsedInstallments(CadenceDaily, start, start))
	assert.Equal(t, 0, ElapsedInstallments(CadenceDaily, start, start.AddDate(0, 0, -5)))
}

func TestNextDueDate_WeekendRoll(t *testing.T) {
	// 2024-01-01 is a Monday, so paid+5 days lands on Saturday and
	// paid+6 on Sunday.
	start := date(2024, time.January, 1)

	saturday := NextDueDate(CadenceMonFri, start, 5)
	assert.Equal(t, time.Monday, saturday.Weekday())
	assert.Equal(t, date(2024, time.January, 8), saturday)

	sunday := NextDueDate(CadenceMonFri, start, 6)
	assert.Equal(t, date(2024, time.January, 8), sunday)

	// mon_sat only skips Sunday.
	assert.Equal(t, date(2024, time.January, 6), NextDueDate(CadenceMonSat, start, 5))
	assert.Equal(t, date(2024, time.January, 8), NextDueDate(CadenceMonSat, start, 6))

	// Fixed cadences never roll.
	assert.Equal(t, date(2024, time.January, 6), NextDueDate(CadenceDaily, start, 5))
}

func TestEndDate(t *testing.T) {
	start := date(2024, time.February, 1)

	assert.Equal(t, start.AddDate(0, 0, 30), EndDate(CadenceDaily, start, 30))
	assert.Equal(t, start.AddDate(0, 0, 70), EndDate(CadenceWeekly, start, 10))
}

func TestDaysBetween(t *testing.T) {
	a := date(2024, time.May, 1)

	assert.Equal(t, 9, DaysBetween(a, date(2024, time.May, 10)))
	assert.Equal(t, -9, DaysBetween(date(2024, time.May, 10), a))
	assert.Equal(t, 0, DaysBetween(a, a.Add(23*time.Hour)))
}
