package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SalaryPaymentTypeSalary          = "salary"
	SalaryPaymentTypeAdvance         = "advance"
	SalaryPaymentTypeExtraCommission = "extra_commission"
	SalaryPaymentTypeDeduction       = "deduction"
)

const (
	SalaryPaymentStatusPending   = "pending"
	SalaryPaymentStatusPaid      = "paid"
	SalaryPaymentStatusCancelled = "cancelled"
	SalaryPaymentStatusRejected  = "rejected"
)

// SalaryConfig is the one-to-one compensation setup for a collector.
type SalaryConfig struct {
	ID                  uuid.UUID       `json:"id" db:"id"`
	CollectorID         uuid.UUID       `json:"collector_id" db:"collector_id"`
	BaseSalary          decimal.Decimal `json:"base_salary" db:"base_salary"`
	CommissionPercent   decimal.Decimal `json:"commission_percent" db:"commission_percent"`
	AdvanceLimitPercent decimal.Decimal `json:"advance_limit_percent" db:"advance_limit_percent"`
	MinimumAdvance      decimal.Decimal `json:"minimum_advance" db:"minimum_advance"`
	Active              bool            `json:"active" db:"active"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}

// SalaryPayment is a payout or deduction for a collector in a period.
type SalaryPayment struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	CollectorID      uuid.UUID       `json:"collector_id" db:"collector_id"`
	PaidBy           uuid.UUID       `json:"paid_by" db:"paid_by"`
	Type             string          `json:"type" db:"type"`
	Period           string          `json:"period" db:"period"`
	BaseAmount       decimal.Decimal `json:"base_amount" db:"base_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount" db:"commission_amount"`
	AdvanceAmount    decimal.Decimal `json:"advance_amount" db:"advance_amount"`
	FinalAmount      decimal.Decimal `json:"final_amount" db:"final_amount"`
	Status           string          `json:"status" db:"status"`
	Method           string          `json:"method" db:"method"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

type UpsertSalaryConfigRequest struct {
	BaseSalary          decimal.Decimal `json:"base_salary" validate:"required"`
	CommissionPercent   decimal.Decimal `json:"commission_percent"`
	AdvanceLimitPercent decimal.Decimal `json:"advance_limit_percent"`
	MinimumAdvance      decimal.Decimal `json:"minimum_advance"`
	Active              bool            `json:"active"`
}

type CreateSalaryPaymentRequest struct {
	CollectorID string          `json:"collector_id" validate:"required,uuid"`
	PaidBy      string          `json:"paid_by" validate:"required,uuid"`
	Type        string          `json:"type" validate:"required,oneof=salary advance extra_commission deduction"`
	Period      string          `json:"period" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Method      string          `json:"method"`
}

// CommissionReport carries both commission bases side by side: the sueldos
// screen accumulated percent per payment, the profit report took percent of
// the period total. They are kept separate until product reconciles them.
type CommissionReport struct {
	CollectorID    uuid.UUID       `json:"collector_id"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	PaymentCount   int             `json:"payment_count"`
	CollectedTotal decimal.Decimal `json:"collected_total"`
	PerPayment     decimal.Decimal `json:"commission_per_payment"`
	OnPeriodTotal  decimal.Decimal `json:"commission_on_period_total"`
}
