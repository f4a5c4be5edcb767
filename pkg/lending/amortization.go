package lending

import (
	"github.com/shopspring/decimal"

	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
)

// InsuranceMode selects how the optional insurance premium is charged.
type InsuranceMode string

const (
	InsuranceNone    InsuranceMode = "none"
	InsuranceFixed   InsuranceMode = "fixed"
	InsurancePercent InsuranceMode = "percent"
)

var (
	hundred        = decimal.NewFromInt(100)
	minRenewalStep = decimal.NewFromFloat(0.01)
)

// Terms are the financial conditions a loan is quoted from.
type Terms struct {
	Principal      decimal.Decimal
	InterestRate   decimal.Decimal // flat percent over the whole term
	Installments   int
	InsuranceMode  InsuranceMode
	InsuranceValue decimal.Decimal // fixed amount or percent of principal
}

// Quote is the computed amortization for a set of Terms. InstallmentValue is
// ceiled to whole pesos so the schedule never under-collects; TotalPayable
// keeps the exact sum.
type Quote struct {
	TotalWithInterest decimal.Decimal
	InsuranceTotal    decimal.Decimal
	InstallmentValue  decimal.Decimal
	TotalPayable      decimal.Decimal
}

// ComputeQuote validates Terms and derives the amortization quote.
func ComputeQuote(t Terms) (Quote, error) {
	if !t.Principal.IsPositive() {
		return Quote{}, customError.WrapInvalidLoanTerms("principal must be greater than zero")
	}
	if t.InterestRate.IsNegative() {
		return Quote{}, customError.WrapInvalidLoanTerms("interest rate cannot be negative")
	}
	if t.Installments <= 0 {
		return Quote{}, customError.WrapInvalidLoanTerms("installment count must be greater than zero")
	}

	var insurance decimal.Decimal
	switch t.InsuranceMode {
	case InsuranceFixed:
		insurance = t.InsuranceValue
	case InsurancePercent:
		insurance = t.Principal.Mul(t.InsuranceValue).Div(hundred)
	case InsuranceNone, "":
		insurance = decimal.Zero
	default:
		return Quote{}, customError.WrapInvalidLoanTerms("unknown insurance mode " + string(t.InsuranceMode))
	}
	if insurance.IsNegative() {
		return Quote{}, customError.WrapInvalidLoanTerms("insurance cannot be negative")
	}

	totalWithInterest := t.Principal.Add(t.Principal.Mul(t.InterestRate).Div(hundred))
	totalPayable := totalWithInterest.Add(insurance)
	installmentValue := totalPayable.Div(decimal.NewFromInt(int64(t.Installments))).Ceil()

	return Quote{
		TotalWithInterest: totalWithInterest,
		InsuranceTotal:    insurance,
		InstallmentValue:  installmentValue,
		TotalPayable:      totalPayable,
	}, nil
}

// ValidateRenewal checks that a renewal principal clears the old loan's
// outstanding balance with something left to disburse.
func ValidateRenewal(newPrincipal, outstanding decimal.Decimal) error {
	if newPrincipal.LessThan(outstanding.Add(minRenewalStep)) {
		return customError.WrapRenewalBelowBalance(newPrincipal.String(), outstanding.String())
	}
	return nil
}

// RenewalDisbursement is the cash actually handed to the client on renewal:
// the new principal minus what the old loan still owed. Display-only; the
// new loan stores the full principal.
func RenewalDisbursement(newPrincipal, outstanding decimal.Decimal) decimal.Decimal {
	return newPrincipal.Sub(outstanding)
}
