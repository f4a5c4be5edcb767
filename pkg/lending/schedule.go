package lending

import "time"

// Cadence is the payment frequency of a loan.
type Cadence string

const (
	CadenceDaily       Cadence = "daily"
	CadenceMonFri      Cadence = "mon_fri"
	CadenceMonSat      Cadence = "mon_sat"
	CadenceWeekly      Cadence = "weekly"
	CadenceBiweekly    Cadence = "biweekly" // quincenal: every 15 days
	CadenceEvery14Days Cadence = "every_14_days"
	CadenceEndOfMonth  Cadence = "end_of_month"
	CadenceMonthly     Cadence = "monthly"
	CadenceQuarterly   Cadence = "quarterly"
	CadenceFourMonthly Cadence = "four_monthly"
	CadenceSemiannual  Cadence = "semiannual"
	CadenceAnnual      Cadence = "annual"
)

// DaysPerInstallment returns the expected calendar days between installments.
// For mon_fri and mon_sat this is a fallback constant only: elapsed
// installments must be counted with the business-day walk, not by dividing
// calendar days.
func (c Cadence) DaysPerInstallment() int {
	switch c {
	case CadenceDaily, CadenceMonFri, CadenceMonSat:
		return 1
	case CadenceWeekly:
		return 7
	case CadenceBiweekly:
		return 15
	case CadenceEvery14Days:
		return 14
	case CadenceEndOfMonth, CadenceMonthly:
		return 30
	case CadenceQuarterly:
		return 90
	case CadenceFourMonthly:
		return 120
	case CadenceSemiannual:
		return 180
	case CadenceAnnual:
		return 365
	default:
		return 1
	}
}

// CountsBusinessDays reports whether installments for this cadence fall only
// on working days.
func (c Cadence) CountsBusinessDays() bool {
	return c == CadenceMonFri || c == CadenceMonSat
}

func (c Cadence) isWorkingDay(d time.Weekday) bool {
	switch c {
	case CadenceMonFri:
		return d != time.Saturday && d != time.Sunday
	case CadenceMonSat:
		return d != time.Sunday
	default:
		return true
	}
}

// truncateDay normalizes a timestamp to its calendar date.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(truncateDay(b).Sub(truncateDay(a)).Hours() / 24)
}

// ElapsedInstallments returns how many installments should have fallen due
// between start and today. For business-day cadences it walks the calendar
// day by day over (start, today] counting working days; shortcut formulas
// drift near week boundaries.
func ElapsedInstallments(c Cadence, start, today time.Time) int {
	days := DaysBetween(start, today)
	if days <= 0 {
		return 0
	}

	if c.CountsBusinessDays() {
		count := 0
		d := truncateDay(start)
		for i := 0; i < days; i++ {
			d = d.AddDate(0, 0, 1)
			if c.isWorkingDay(d.Weekday()) {
				count++
			}
		}
		return count
	}

	return days / c.DaysPerInstallment()
}

// NextDueDate returns the date the next installment falls due given how many
// have already been paid. Weekend dates roll forward for business-day
// cadences: mon_sat skips Sunday, mon_fri skips Saturday and Sunday.
func NextDueDate(c Cadence, start time.Time, installmentsPaid int) time.Time {
	due := truncateDay(start).AddDate(0, 0, installmentsPaid*c.DaysPerInstallment())

	switch c {
	case CadenceMonSat:
		if due.Weekday() == time.Sunday {
			due = due.AddDate(0, 0, 1)
		}
	case CadenceMonFri:
		switch due.Weekday() {
		case time.Sunday:
			due = due.AddDate(0, 0, 1)
		case time.Saturday:
			due = due.AddDate(0, 0, 2)
		}
	}

	return due
}

// EndDate derives a loan's nominal end date from its cadence and installment
// count.
func EndDate(c Cadence, start time.Time, installments int) time.Time {
	return truncateDay(start).AddDate(0, 0, installments*c.DaysPerInstallment())
}
