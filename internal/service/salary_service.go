package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/repository"
	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
)

// SalaryService computes collector compensation: commission over collected
// payments, salary payouts and advances against the configured ceiling.
type SalaryService struct {
	salaryRepo  repository.SalaryRepository
	paymentRepo repository.PaymentRepository
	log         *logrus.Logger
	now         func() time.Time
}

func NewSalaryService(
	salaryRepo repository.SalaryRepository,
	paymentRepo repository.PaymentRepository,
	log *logrus.Logger,
) *SalaryService {
	return &SalaryService{
		salaryRepo:  salaryRepo,
		paymentRepo: paymentRepo,
		log:         log,
		now:         time.Now,
	}
}

// GetConfig returns the salary config for a collector.
func (s *SalaryService) GetConfig(ctx context.Context, collectorID uuid.UUID) (*domain.SalaryConfig, error) {
	config, err := s.salaryRepo.GetConfig(ctx, collectorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapSalaryConfigNotFound(collectorID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return config, nil
}

// UpsertConfig creates or replaces a collector's salary config.
func (s *SalaryService) UpsertConfig(ctx context.Context, collectorID uuid.UUID, request *domain.UpsertSalaryConfigRequest) (*domain.SalaryConfig, error) {
	if !request.BaseSalary.IsPositive() {
		return nil, customError.WrapInvalidLoanTerms("base salary must be greater than zero")
	}
	if request.CommissionPercent.IsNegative() || request.AdvanceLimitPercent.IsNegative() || request.MinimumAdvance.IsNegative() {
		return nil, customError.WrapInvalidLoanTerms("salary percentages and minimums cannot be negative")
	}

	now := s.now()
	config := &domain.SalaryConfig{
		ID:                  uuid.New(),
		CollectorID:         collectorID,
		BaseSalary:          request.BaseSalary,
		CommissionPercent:   request.CommissionPercent,
		AdvanceLimitPercent: request.AdvanceLimitPercent,
		MinimumAdvance:      request.MinimumAdvance,
		Active:              request.Active,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.salaryRepo.UpsertConfig(ctx, config); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return config, nil
}

// Commission reports both commission bases over [from, to]. The per-payment
// basis rounds each payment's commission to whole pesos before summing; the
// period-total basis takes the percent of the raw sum. The two screens that
// grew these formulas never agreed, so both are returned.
func (s *SalaryService) Commission(ctx context.Context, collectorID uuid.UUID, from, to time.Time) (*domain.CommissionReport, error) {
	config, err := s.GetConfig(ctx, collectorID)
	if err != nil {
		return nil, err
	}

	start, _ := dayBounds(from)
	_, end := dayBounds(to)

	payments, err := s.paymentRepo.ListByCollectorBetween(ctx, collectorID, start, end)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	report := &domain.CommissionReport{
		CollectorID:  collectorID,
		From:         start,
		To:           end.Add(-time.Nanosecond),
		PaymentCount: len(payments),
	}

	for _, p := range payments {
		report.CollectedTotal = report.CollectedTotal.Add(p.Amount)
		report.PerPayment = report.PerPayment.Add(
			p.Amount.Mul(config.CommissionPercent).Div(hundred).Round(0))
	}
	report.OnPeriodTotal = report.CollectedTotal.Mul(config.CommissionPercent).Div(hundred)

	return report, nil
}

// CreatePayment records a salary payout. Advances must reach the configured
// minimum and, summed with prior advances for the period, stay under the
// base-salary ceiling.
func (s *SalaryService) CreatePayment(ctx context.Context, request *domain.CreateSalaryPaymentRequest) (*domain.SalaryPayment, error) {
	collectorID, err := uuid.Parse(request.CollectorID)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("collector_id is not a valid UUID")
	}
	paidBy, err := uuid.Parse(request.PaidBy)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("paid_by is not a valid UUID")
	}
	if !request.Amount.IsPositive() {
		return nil, customError.WrapInvalidLoanTerms("amount must be greater than zero")
	}

	config, err := s.GetConfig(ctx, collectorID)
	if err != nil {
		return nil, err
	}
	if !config.Active {
		return nil, customError.WrapSalaryConfigInactive(collectorID.String())
	}

	now := s.now()
	payment := &domain.SalaryPayment{
		ID:          uuid.New(),
		CollectorID: collectorID,
		PaidBy:      paidBy,
		Type:        request.Type,
		Period:      request.Period,
		Status:      domain.SalaryPaymentStatusPending,
		Method:      request.Method,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch request.Type {
	case domain.SalaryPaymentTypeAdvance:
		if request.Amount.LessThan(config.MinimumAdvance) {
			return nil, customError.WrapAdvanceBelowMinimum(request.Amount.String(), config.MinimumAdvance.String())
		}

		limit := config.BaseSalary.Mul(config.AdvanceLimitPercent).Div(hundred)
		taken, err := s.salaryRepo.SumAdvances(ctx, collectorID, request.Period)
		if err != nil {
			return nil, customError.WrapDatabaseError(err)
		}
		if taken.Add(request.Amount).GreaterThan(limit) {
			return nil, customError.WrapAdvanceLimitExceeded(taken.Add(request.Amount).String(), limit.String())
		}

		payment.AdvanceAmount = request.Amount
		payment.FinalAmount = request.Amount
	case domain.SalaryPaymentTypeSalary:
		payment.BaseAmount = config.BaseSalary
		payment.FinalAmount = request.Amount
	case domain.SalaryPaymentTypeExtraCommission:
		payment.CommissionAmount = request.Amount
		payment.FinalAmount = request.Amount
	case domain.SalaryPaymentTypeDeduction:
		payment.FinalAmount = request.Amount.Neg()
	default:
		return nil, customError.WrapInvalidLoanTerms("unknown salary payment type " + request.Type)
	}

	if err := s.salaryRepo.CreatePayment(ctx, payment); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.log.WithFields(logrus.Fields{
		"collector_id": collectorID,
		"type":         payment.Type,
		"final_amount": payment.FinalAmount,
	}).Info("salary payment created")

	return payment, nil
}

// ListPayments returns salary payments for a collector, optionally filtered
// by period label.
func (s *SalaryService) ListPayments(ctx context.Context, collectorID uuid.UUID, period string) ([]*domain.SalaryPayment, error) {
	payments, err := s.salaryRepo.ListPayments(ctx, collectorID, period)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return payments, nil
}
