package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
)

func newSalaryServiceForTest(salaryRepo *MockSalaryRepository, paymentRepo *MockPaymentRepository, now time.Time) *SalaryService {
	return &SalaryService{
		salaryRepo:  salaryRepo,
		paymentRepo: paymentRepo,
		log:         testLogger(),
		now:         fixedNow(now),
	}
}

func activeSalaryConfig(collectorID uuid.UUID) *domain.SalaryConfig {
	return &domain.SalaryConfig{
		ID:                  uuid.New(),
		CollectorID:         collectorID,
		BaseSalary:          dec("1000000"),
		CommissionPercent:   dec("3.3"),
		AdvanceLimitPercent: dec("50"),
		MinimumAdvance:      dec("50000"),
		Active:              true,
	}
}

func TestSalaryService_Commission(t *testing.T) {
	collectorID := uuid.New()
	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	now := to

	salaryRepo := new(MockSalaryRepository)
	paymentRepo := new(MockPaymentRepository)
	salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(activeSalaryConfig(collectorID), nil)
	paymentRepo.On("ListByCollectorBetween", mock.Anything, collectorID, mock.Anything, mock.Anything).
		Return([]*domain.Payment{
			{ID: uuid.New(), Amount: dec("1111")},
			{ID: uuid.New(), Amount: dec("2222")},
		}, nil)

	svc := newSalaryServiceForTest(salaryRepo, paymentRepo, now)
	report, err := svc.Commission(context.Background(), collectorID, from, to)

	assert.NoError(t, err)
	assert.Equal(t, 2, report.PaymentCount)
	assert.True(t, report.CollectedTotal.Equal(dec("3333")))
	// Per payment: round(1111 x 3.3%) + round(2222 x 3.3%) = 37 + 73.
	assert.True(t, report.PerPayment.Equal(dec("110")), "per payment: %s", report.PerPayment)
	// Period total: 3333 x 3.3% unrounded.
	assert.True(t, report.OnPeriodTotal.Equal(dec("109.989")), "on period total: %s", report.OnPeriodTotal)
}

func TestSalaryService_Commission_NoConfig(t *testing.T) {
	collectorID := uuid.New()
	salaryRepo := new(MockSalaryRepository)
	salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(nil, sql.ErrNoRows)

	svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), time.Now())
	_, err := svc.Commission(context.Background(), collectorID, time.Now(), time.Now())

	assertBusinessCode(t, err, customError.ErrCodeSalaryConfigNotFound)
}

func TestSalaryService_CreatePayment(t *testing.T) {
	collectorID := uuid.New()
	paidBy := uuid.New()
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	request := func(paymentType, amount string) *domain.CreateSalaryPaymentRequest {
		return &domain.CreateSalaryPaymentRequest{
			CollectorID: collectorID.String(),
			PaidBy:      paidBy.String(),
			Type:        paymentType,
			Period:      "2025-06",
			Amount:      dec(amount),
			Method:      "cash",
		}
	}

	t.Run("advance within limit", func(t *testing.T) {
		salaryRepo := new(MockSalaryRepository)
		salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(activeSalaryConfig(collectorID), nil)
		salaryRepo.On("SumAdvances", mock.Anything, collectorID, "2025-06").Return(dec("300000"), nil)
		salaryRepo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *domain.SalaryPayment) bool {
			return p.Type == domain.SalaryPaymentTypeAdvance &&
				p.FinalAmount.Equal(dec("150000")) &&
				p.Status == domain.SalaryPaymentStatusPending
		})).Return(nil)

		svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), now)
		payment, err := svc.CreatePayment(context.Background(), request(domain.SalaryPaymentTypeAdvance, "150000"))

		assert.NoError(t, err)
		assert.True(t, payment.AdvanceAmount.Equal(dec("150000")))
		salaryRepo.AssertExpectations(t)
	})

	t.Run("advance below minimum rejected", func(t *testing.T) {
		salaryRepo := new(MockSalaryRepository)
		salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(activeSalaryConfig(collectorID), nil)

		svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), now)
		_, err := svc.CreatePayment(context.Background(), request(domain.SalaryPaymentTypeAdvance, "40000"))

		assertBusinessCode(t, err, customError.ErrCodeAdvanceBelowMinimum)
	})

	t.Run("advance pushing the period over the ceiling rejected", func(t *testing.T) {
		// Limit is 50% of 1000000; 400000 already taken.
		salaryRepo := new(MockSalaryRepository)
		salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(activeSalaryConfig(collectorID), nil)
		salaryRepo.On("SumAdvances", mock.Anything, collectorID, "2025-06").Return(dec("400000"), nil)

		svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), now)
		_, err := svc.CreatePayment(context.Background(), request(domain.SalaryPaymentTypeAdvance, "150000"))

		assertBusinessCode(t, err, customError.ErrCodeAdvanceLimitExceeded)
		salaryRepo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})

	t.Run("salary payout carries the configured base", func(t *testing.T) {
		salaryRepo := new(MockSalaryRepository)
		salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(activeSalaryConfig(collectorID), nil)
		salaryRepo.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)

		svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), now)
		payment, err := svc.CreatePayment(context.Background(), request(domain.SalaryPaymentTypeSalary, "950000"))

		assert.NoError(t, err)
		assert.True(t, payment.BaseAmount.Equal(dec("1000000")))
		assert.True(t, payment.FinalAmount.Equal(dec("950000")))
	})

	t.Run("deduction stores a negative final amount", func(t *testing.T) {
		salaryRepo := new(MockSalaryRepository)
		salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(activeSalaryConfig(collectorID), nil)
		salaryRepo.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)

		svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), now)
		payment, err := svc.CreatePayment(context.Background(), request(domain.SalaryPaymentTypeDeduction, "30000"))

		assert.NoError(t, err)
		assert.True(t, payment.FinalAmount.Equal(dec("-30000")))
	})

	t.Run("inactive config rejected", func(t *testing.T) {
		config := activeSalaryConfig(collectorID)
		config.Active = false
		salaryRepo := new(MockSalaryRepository)
		salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(config, nil)

		svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), now)
		_, err := svc.CreatePayment(context.Background(), request(domain.SalaryPaymentTypeAdvance, "150000"))

		assertBusinessCode(t, err, customError.ErrCodeSalaryConfigInactive)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		salaryRepo := new(MockSalaryRepository)
		salaryRepo.On("GetConfig", mock.Anything, collectorID).Return(activeSalaryConfig(collectorID), nil)

		svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), now)
		_, err := svc.CreatePayment(context.Background(), request("bonus", "10000"))

		assertBusinessCode(t, err, customError.ErrCodeInvalidLoanTerms)
	})
}

func TestSalaryService_UpsertConfig(t *testing.T) {
	collectorID := uuid.New()
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		salaryRepo := new(MockSalaryRepository)
		salaryRepo.On("UpsertConfig", mock.Anything, mock.MatchedBy(func(c *domain.SalaryConfig) bool {
			return c.CollectorID == collectorID && c.BaseSalary.Equal(dec("1200000"))
		})).Return(nil)

		svc := newSalaryServiceForTest(salaryRepo, new(MockPaymentRepository), now)
		config, err := svc.UpsertConfig(context.Background(), collectorID, &domain.UpsertSalaryConfigRequest{
			BaseSalary:          dec("1200000"),
			CommissionPercent:   dec("3"),
			AdvanceLimitPercent: dec("40"),
			MinimumAdvance:      dec("50000"),
			Active:              true,
		})

		assert.NoError(t, err)
		assert.True(t, config.Active)
		salaryRepo.AssertExpectations(t)
	})

	t.Run("non-positive base salary rejected", func(t *testing.T) {
		svc := newSalaryServiceForTest(new(MockSalaryRepository), new(MockPaymentRepository), now)
		_, err := svc.UpsertConfig(context.Background(), collectorID, &domain.UpsertSalaryConfigRequest{
			BaseSalary: decimal.Zero,
		})

		assertBusinessCode(t, err, customError.ErrCodeInvalidLoanTerms)
	})
}
