package lending

import (
	"time"

	"github.com/shopspring/decimal"

	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
)

// Status is the arrears state of a loan on a given day.
type Status string

const (
	StatusCurrent    Status = "current"
	StatusDueSoon    Status = "due_soon"
	StatusDelinquent Status = "delinquent"
	StatusExpired    Status = "expired"
	StatusCompleted  Status = "completed"
)

// dueSoonWindowDays is the inclusive lookahead for the due_soon status.
const dueSoonWindowDays = 3

// Input carries everything Classify needs about one loan. InstallmentsPaid
// is the count of payment records; TotalPaid includes transfers.
type Input struct {
	Cadence          Cadence
	StartDate        time.Time
	EndDate          time.Time
	InstallmentValue decimal.Decimal
	TotalPayable     decimal.Decimal
	TotalPaid        decimal.Decimal
	InstallmentsPaid int
	GraceDays        int
	MarkedExpired    bool
	Today            time.Time
}

// Classification is the classifier output consumed by loan views and the
// report aggregators.
type Classification struct {
	Status               Status          `json:"status"`
	ExpectedInstallments int             `json:"expected_installments"`
	ExpectedWithGrace    int             `json:"expected_with_grace"`
	InstallmentsOverdue  int             `json:"installments_overdue"`
	AmountOverdue        decimal.Decimal `json:"amount_overdue"`
	DaysOverdue          int             `json:"days_overdue"`
	DaysExpired          int             `json:"days_expired"`
	NextDueDate          time.Time       `json:"next_due_date"`
	Outstanding          decimal.Decimal `json:"outstanding"`
}

func (in Input) validate() error {
	if in.StartDate.IsZero() {
		return customError.WrapInvalidClassifierInput("start date is required")
	}
	if in.EndDate.IsZero() {
		return customError.WrapInvalidClassifierInput("end date is required")
	}
	if in.Today.IsZero() {
		return customError.WrapInvalidClassifierInput("reference date is required")
	}
	if in.InstallmentsPaid < 0 {
		return customError.WrapInvalidClassifierInput("installments paid cannot be negative")
	}
	if in.GraceDays < 0 {
		return customError.WrapInvalidClassifierInput("grace days cannot be negative")
	}
	return nil
}

// Classify computes the arrears state of a loan. Status precedence is
// expired, completed, delinquent, due_soon, current; a loan past its end
// date reads as expired even when fully paid. Grace days reduce the overdue
// count and amount but not the delinquent gate, which compares against the
// raw expected count.
func Classify(in Input) (Classification, error) {
	c, outstanding, err := classify(in)
	if err != nil {
		return Classification{}, err
	}

	switch {
	case in.MarkedExpired || truncateDay(in.Today).After(truncateDay(in.EndDate)):
		c.Status = StatusExpired
	case !outstanding.IsPositive():
		c.Status = StatusCompleted
	default:
		c.Status = lateOrCurrent(in, c)
	}
	return c, nil
}

// ClassifyCompletionFirst is Classify with the completed check ahead of the
// expired check: a fully paid loan reads as completed even past its end
// date. The general listing screens historically ordered the checks this
// way while the loan detail screen did not; both orderings are kept until
// product settles on one.
func ClassifyCompletionFirst(in Input) (Classification, error) {
	c, outstanding, err := classify(in)
	if err != nil {
		return Classification{}, err
	}

	switch {
	case !outstanding.IsPositive():
		c.Status = StatusCompleted
	case in.MarkedExpired || truncateDay(in.Today).After(truncateDay(in.EndDate)):
		c.Status = StatusExpired
	default:
		c.Status = lateOrCurrent(in, c)
	}
	return c, nil
}

func lateOrCurrent(in Input, c Classification) Status {
	if in.InstallmentsPaid < c.ExpectedInstallments {
		return StatusDelinquent
	}
	daysUntilDue := DaysBetween(in.Today, c.NextDueDate)
	if daysUntilDue >= 0 && daysUntilDue <= dueSoonWindowDays {
		return StatusDueSoon
	}
	return StatusCurrent
}

func classify(in Input) (Classification, decimal.Decimal, error) {
	if err := in.validate(); err != nil {
		return Classification{}, decimal.Zero, err
	}

	daysPer := in.Cadence.DaysPerInstallment()
	expected := ElapsedInstallments(in.Cadence, in.StartDate, in.Today)
	graceInstallments := in.GraceDays / daysPer
	expectedWithGrace := expected - graceInstallments
	if expectedWithGrace < 0 {
		expectedWithGrace = 0
	}

	overdue := expectedWithGrace - in.InstallmentsPaid
	if overdue < 0 {
		overdue = 0
	}

	daysOverdue := DaysBetween(in.StartDate, in.Today) - in.InstallmentsPaid*daysPer - in.GraceDays
	if daysOverdue < 0 {
		daysOverdue = 0
	}

	daysExpired := DaysBetween(in.EndDate, in.Today)
	if daysExpired < 0 {
		daysExpired = 0
	}

	outstanding := in.TotalPayable.Sub(in.TotalPaid)

	return Classification{
		ExpectedInstallments: expected,
		ExpectedWithGrace:    expectedWithGrace,
		InstallmentsOverdue:  overdue,
		AmountOverdue:        in.InstallmentValue.Mul(decimal.NewFromInt(int64(overdue))),
		DaysOverdue:          daysOverdue,
		DaysExpired:          daysExpired,
		NextDueDate:          NextDueDate(in.Cadence, in.StartDate, in.InstallmentsPaid),
		Outstanding:          outstanding,
	}, outstanding, nil
}
