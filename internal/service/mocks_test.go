package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) CountCreatedOn(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLoanRepository) ListWithTotals(ctx context.Context, collectorID *uuid.UUID, status string) ([]*domain.LoanWithTotals, error) {
	args := m.Called(ctx, collectorID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoanWithTotals), args.Error(1)
}

func (m *MockLoanRepository) GetWithTotals(ctx context.Context, id uuid.UUID) (*domain.LoanWithTotals, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanWithTotals), args.Error(1)
}

func (m *MockLoanRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Loan, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]*domain.Payment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Payment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByCollectorBetween(ctx context.Context, collectorID uuid.UUID, from, to time.Time) ([]*domain.Payment, error) {
	args := m.Called(ctx, collectorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]*domain.Transfer, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Transfer, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transfer), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Expense, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

type MockSalaryRepository struct {
	mock.Mock
}

func (m *MockSalaryRepository) GetConfig(ctx context.Context, collectorID uuid.UUID) (*domain.SalaryConfig, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryConfig), args.Error(1)
}

func (m *MockSalaryRepository) UpsertConfig(ctx context.Context, config *domain.SalaryConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockSalaryRepository) CreatePayment(ctx context.Context, payment *domain.SalaryPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockSalaryRepository) ListPayments(ctx context.Context, collectorID uuid.UUID, period string) ([]*domain.SalaryPayment, error) {
	args := m.Called(ctx, collectorID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SalaryPayment), args.Error(1)
}

func (m *MockSalaryRepository) SumAdvances(ctx context.Context, collectorID uuid.UUID, period string) (decimal.Decimal, error) {
	args := m.Called(ctx, collectorID, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockSusuRepository struct {
	mock.Mock
}

func (m *MockSusuRepository) Create(ctx context.Context, susu *domain.Susu, participants []*domain.SusuParticipant) error {
	args := m.Called(ctx, susu, participants)
	return args.Error(0)
}

func (m *MockSusuRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Susu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Susu), args.Error(1)
}

func (m *MockSusuRepository) GetParticipants(ctx context.Context, susuID uuid.UUID) ([]*domain.SusuParticipant, error) {
	args := m.Called(ctx, susuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SusuParticipant), args.Error(1)
}

func (m *MockSusuRepository) CreatePayment(ctx context.Context, payment *domain.SusuPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockSusuRepository) ListPayments(ctx context.Context, susuID uuid.UUID) ([]*domain.SusuPayment, error) {
	args := m.Called(ctx, susuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SusuPayment), args.Error(1)
}

type MockClosingRepository struct {
	mock.Mock
}

func (m *MockClosingRepository) Create(ctx context.Context, closing *domain.DailyClosing) error {
	args := m.Called(ctx, closing)
	return args.Error(0)
}

func (m *MockClosingRepository) GetByDate(ctx context.Context, day time.Time) (*domain.DailyClosing, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClosing), args.Error(1)
}
