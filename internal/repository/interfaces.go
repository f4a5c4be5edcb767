package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	CountCreatedOn(ctx context.Context, day time.Time) (int, error)
}

// LoanRepository defines the interface for loan data operations
type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Loan, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// ListWithTotals returns loans joined with payment count and paid sum
	// (payments plus transfers), optionally filtered by collector/status.
	ListWithTotals(ctx context.Context, collectorID *uuid.UUID, status string) ([]*domain.LoanWithTotals, error)

	// GetWithTotals returns one loan with its payment aggregates.
	GetWithTotals(ctx context.Context, id uuid.UUID) (*domain.LoanWithTotals, error)

	// ListCreatedBetween returns loans whose start date falls in [from, to].
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Loan, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]*domain.Payment, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Payment, error)
	ListByCollectorBetween(ctx context.Context, collectorID uuid.UUID, from, to time.Time) ([]*domain.Payment, error)
}

// TransferRepository defines the interface for bank-transfer settlements
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.Transfer) error
	ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]*domain.Transfer, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Transfer, error)
}

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Expense, error)
}

// SalaryRepository defines the interface for collector compensation data
type SalaryRepository interface {
	GetConfig(ctx context.Context, collectorID uuid.UUID) (*domain.SalaryConfig, error)
	UpsertConfig(ctx context.Context, config *domain.SalaryConfig) error
	CreatePayment(ctx context.Context, payment *domain.SalaryPayment) error
	ListPayments(ctx context.Context, collectorID uuid.UUID, period string) ([]*domain.SalaryPayment, error)
	SumAdvances(ctx context.Context, collectorID uuid.UUID, period string) (decimal.Decimal, error)
}

// SusuRepository defines the interface for rotating-savings data operations
type SusuRepository interface {
	Create(ctx context.Context, susu *domain.Susu, participants []*domain.SusuParticipant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Susu, error)
	GetParticipants(ctx context.Context, susuID uuid.UUID) ([]*domain.SusuParticipant, error)
	CreatePayment(ctx context.Context, payment *domain.SusuPayment) error
	ListPayments(ctx context.Context, susuID uuid.UUID) ([]*domain.SusuPayment, error)
}

// ClosingRepository persists daily closing snapshots
type ClosingRepository interface {
	Create(ctx context.Context, closing *domain.DailyClosing) error
	GetByDate(ctx context.Context, day time.Time) (*domain.DailyClosing, error)
}
