package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcamargo/cobros-engine/pkg/lending"
)

const (
	LoanStatusActive    = "active"
	LoanStatusCompleted = "completed"
	LoanStatusExpired   = "expired"
	LoanStatusRenewed   = "renewed"
)

const (
	ChannelCash     = "cash"
	ChannelTransfer = "transfer"
)

// Loan belongs to exactly one client and is owned by the collector who
// created it. InstallmentValue and TotalPayable are persisted from the
// amortization quote at creation time.
type Loan struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	ClientID         uuid.UUID       `json:"client_id" db:"client_id"`
	CollectorID      uuid.UUID       `json:"collector_id" db:"collector_id"`
	Principal        decimal.Decimal `json:"principal" db:"principal"`
	InterestRate     decimal.Decimal `json:"interest_rate" db:"interest_rate"`
	Cadence          lending.Cadence `json:"cadence" db:"cadence"`
	Installments     int             `json:"installments" db:"installments"`
	InstallmentValue decimal.Decimal `json:"installment_value" db:"installment_value"`
	StartDate        time.Time       `json:"start_date" db:"start_date"`
	EndDate          time.Time       `json:"end_date" db:"end_date"`
	GraceDays        int             `json:"grace_days" db:"grace_days"`
	LateFeePercent   decimal.Decimal `json:"late_fee_percent" db:"late_fee_percent"`
	InsuranceMode    string          `json:"insurance_mode" db:"insurance_mode"`
	InsuranceValue   decimal.Decimal `json:"insurance_value" db:"insurance_value"`
	InsuranceTotal   decimal.Decimal `json:"insurance_total" db:"insurance_total"`
	TotalPayable     decimal.Decimal `json:"total_payable" db:"total_payable"`
	Notes            string          `json:"notes" db:"notes"`
	Channel          string          `json:"channel" db:"channel"`
	Status           string          `json:"status" db:"status"`
	RenewedFrom      *uuid.UUID      `json:"renewed_from,omitempty" db:"renewed_from"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// LoanWithTotals is a loan joined with its payment aggregates, the unit the
// classifier and the reporters consume.
type LoanWithTotals struct {
	Loan
	InstallmentsPaid int             `json:"installments_paid" db:"installments_paid"`
	TotalPaid        decimal.Decimal `json:"total_paid" db:"total_paid"`
}

// DTOs for requests and responses

type CreateLoanRequest struct {
	ClientID       string          `json:"client_id" validate:"required,uuid"`
	CollectorID    string          `json:"collector_id" validate:"required,uuid"`
	Principal      decimal.Decimal `json:"principal" validate:"required"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	Cadence        string          `json:"cadence" validate:"required"`
	Installments   int             `json:"installments" validate:"required,gt=0"`
	StartDate      string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	GraceDays      int             `json:"grace_days" validate:"gte=0"`
	LateFeePercent decimal.Decimal `json:"late_fee_percent"`
	InsuranceMode  string          `json:"insurance_mode" validate:"omitempty,oneof=none fixed percent"`
	InsuranceValue decimal.Decimal `json:"insurance_value"`
	Notes          string          `json:"notes"`
	Channel        string          `json:"channel" validate:"omitempty,oneof=cash transfer"`
}

type RenewLoanRequest struct {
	NewPrincipal   decimal.Decimal `json:"new_principal" validate:"required"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	Cadence        string          `json:"cadence" validate:"required"`
	Installments   int             `json:"installments" validate:"required,gt=0"`
	StartDate      string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	GraceDays      int             `json:"grace_days" validate:"gte=0"`
	LateFeePercent decimal.Decimal `json:"late_fee_percent"`
	InsuranceMode  string          `json:"insurance_mode" validate:"omitempty,oneof=none fixed percent"`
	InsuranceValue decimal.Decimal `json:"insurance_value"`
	Notes          string          `json:"notes"`
	CollectorID    string          `json:"collector_id" validate:"required,uuid"`
}

// LoanResponse pairs a loan with its live arrears classification.
type LoanResponse struct {
	Loan           *Loan                   `json:"loan"`
	Classification *lending.Classification `json:"classification,omitempty"`
}

// RenewalResponse reports the replacement loan plus the cash actually
// disbursed after netting out the old balance.
type RenewalResponse struct {
	NewLoan        *Loan           `json:"new_loan"`
	OldLoanID      uuid.UUID       `json:"old_loan_id"`
	OldOutstanding decimal.Decimal `json:"old_outstanding"`
	CashDisbursed  decimal.Decimal `json:"cash_disbursed"`
}
