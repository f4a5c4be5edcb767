package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is an operating cost line consumed by the daily and period
// reporters.
type Expense struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Category    string          `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	SpentAt     time.Time       `json:"spent_at" db:"spent_at"`
	CreatedBy   uuid.UUID       `json:"created_by" db:"created_by"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

type CreateExpenseRequest struct {
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	SpentAt     string          `json:"spent_at" validate:"required,datetime=2006-01-02"`
	CreatedBy   string          `json:"created_by" validate:"required,uuid"`
}
