package lending

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func baseInput() Input {
	start := date(2025, time.June, 2) // a Monday
	return Input{
		Cadence:          CadenceDaily,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, 30),
		InstallmentValue: dec("20000"),
		TotalPayable:     dec("600000"),
		TotalPaid:        decimal.Zero,
		Today:            start.AddDate(0, 0, 10),
	}
}

func TestClassify_DelinquentDailyLoan(t *testing.T) {
	in := baseInput()
	in.InstallmentsPaid = 5
	in.TotalPaid = dec("100000")

	c, err := Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusDelinquent, c.Status)
	assert.Equal(t, 10, c.ExpectedInstallments)
	assert.Equal(t, 5, c.InstallmentsOverdue)
	assert.True(t, c.AmountOverdue.Equal(dec("100000")), "got %s", c.AmountOverdue)
	assert.Equal(t, 5, c.DaysOverdue)
	assert.True(t, c.Outstanding.Equal(dec("500000")), "got %s", c.Outstanding)
}

func TestClassify_CurrentWhenCaughtUp(t *testing.T) {
	in := baseInput()
	in.InstallmentsPaid = 15
	in.TotalPaid = dec("300000")

	c, err := Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusCurrent, c.Status)
	assert.Equal(t, 0, c.InstallmentsOverdue)
	assert.True(t, c.AmountOverdue.IsZero())
}

func TestClassify_DueSoonWindow(t *testing.T) {
	// A weekly loan paid up exactly: the next due date falls within the
	// three-day lookahead only when close enough.
	start := date(2025, time.June, 2)
	in := Input{
		Cadence:          CadenceWeekly,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, 70),
		InstallmentValue: dec("50000"),
		TotalPayable:     dec("500000"),
		TotalPaid:        dec("100000"),
		InstallmentsPaid: 2,
	}

	// Next due date is start+14. Four days out: still current.
	in.Today = start.AddDate(0, 0, 10)
	c, err := Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusCurrent, c.Status)

	// Three days out: due_soon.
	in.Today = start.AddDate(0, 0, 11)
	c, err = Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusDueSoon, c.Status)

	// On the due date itself: still due_soon, not yet delinquent.
	in.Today = start.AddDate(0, 0, 14)
	c, err = Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusDueSoon, c.Status)
}

func TestClassify_ExpiredBeatsCompleted(t *testing.T) {
	in := baseInput()
	in.Today = in.EndDate.AddDate(0, 0, 3)
	in.InstallmentsPaid = 30
	in.TotalPaid = in.TotalPayable

	c, err := Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusExpired, c.Status)
	assert.Equal(t, 3, c.DaysExpired)
	assert.True(t, c.Outstanding.IsZero())
}

func TestClassifyCompletionFirst_CompletedBeatsExpired(t *testing.T) {
	in := baseInput()
	in.Today = in.EndDate.AddDate(0, 0, 3)
	in.InstallmentsPaid = 30
	in.TotalPaid = in.TotalPayable

	c, err := ClassifyCompletionFirst(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, c.Status)
}

func TestClassify_MarkedExpiredWins(t *testing.T) {
	in := baseInput()
	in.MarkedExpired = true
	in.InstallmentsPaid = 10
	in.TotalPaid = dec("200000")

	c, err := Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusExpired, c.Status)
}

func TestClassify_CompletedBeforeEndDate(t *testing.T) {
	in := baseInput()
	in.InstallmentsPaid = 30
	in.TotalPaid = in.TotalPayable

	c, err := Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, c.Status)
}

func TestClassify_GraceReducesOverdueNotGate(t *testing.T) {
	in := baseInput()
	in.InstallmentsPaid = 7
	in.TotalPaid = dec("140000")
	in.GraceDays = 2

	c, err := Classify(in)
	assert.NoError(t, err)
	// Grace trims the overdue count and amount.
	assert.Equal(t, 10, c.ExpectedInstallments)
	assert.Equal(t, 8, c.ExpectedWithGrace)
	assert.Equal(t, 1, c.InstallmentsOverdue)
	assert.True(t, c.AmountOverdue.Equal(dec("20000")), "got %s", c.AmountOverdue)
	assert.Equal(t, 1, c.DaysOverdue)
	// The delinquent gate still compares against the raw expected count.
	assert.Equal(t, StatusDelinquent, c.Status)
}

func TestClassify_GraceMonotonic(t *testing.T) {
	in := baseInput()
	in.InstallmentsPaid = 4
	in.TotalPaid = dec("80000")

	prevOverdue := -1
	for grace := 20; grace >= 0; grace -= 5 {
		in.GraceDays = grace
		c, err := Classify(in)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, c.InstallmentsOverdue, prevOverdue,
			"overdue must not shrink as grace shrinks")
		prevOverdue = c.InstallmentsOverdue
	}
}

func TestClassify_BusinessCadenceExpected(t *testing.T) {
	in := baseInput()
	in.Cadence = CadenceMonFri
	in.Today = in.StartDate.AddDate(0, 0, 14)
	in.InstallmentsPaid = 10
	in.TotalPaid = dec("200000")

	c, err := Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, 10, c.ExpectedInstallments)
	assert.NotEqual(t, StatusDelinquent, c.Status)

	in.Cadence = CadenceMonSat
	c, err = Classify(in)
	assert.NoError(t, err)
	assert.Equal(t, 12, c.ExpectedInstallments)
	assert.Equal(t, StatusDelinquent, c.Status)
}

func TestClassify_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero start date", func(in *Input) { in.StartDate = time.Time{} }},
		{"zero end date", func(in *Input) { in.EndDate = time.Time{} }},
		{"zero reference date", func(in *Input) { in.Today = time.Time{} }},
		{"negative installments paid", func(in *Input) { in.InstallmentsPaid = -1 }},
		{"negative grace", func(in *Input) { in.GraceDays = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.mutate(&in)
			_, err := Classify(in)
			assert.Error(t, err)
		})
	}
}
