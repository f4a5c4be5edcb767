package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is one collected installment. Payments are append-only; a loan's
// installments-paid count is the count of its payment rows.
type Payment struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	LoanID      uuid.UUID       `json:"loan_id" db:"loan_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Note        string          `json:"note" db:"note"`
	CollectorID uuid.UUID       `json:"collector_id" db:"collector_id"`
	PaidAt      time.Time       `json:"paid_at" db:"paid_at"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// Transfer is a bank-transfer settlement parallel to cash payments.
type Transfer struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	LoanID        uuid.UUID       `json:"loan_id" db:"loan_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Bank          string          `json:"bank" db:"bank"`
	Reference     string          `json:"reference" db:"reference"`
	ReceiptRef    string          `json:"receipt_ref" db:"receipt_ref"`
	CreatedBy     uuid.UUID       `json:"created_by" db:"created_by"`
	TransferredAt time.Time       `json:"transferred_at" db:"transferred_at"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Note        string          `json:"note"`
	CollectorID string          `json:"collector_id" validate:"required,uuid"`
}

type CreateTransferRequest struct {
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Bank       string          `json:"bank"`
	Reference  string          `json:"reference"`
	ReceiptRef string          `json:"receipt_ref"`
	CreatedBy  string          `json:"created_by" validate:"required,uuid"`
}
