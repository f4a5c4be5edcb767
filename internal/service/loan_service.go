package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/repository"
	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
	"github.com/jfcamargo/cobros-engine/pkg/lending"
)

const dateLayout = "2006-01-02"

// LoanService owns the loan lifecycle: origination, collection, renewal and
// the status sweep. All arrears math is delegated to pkg/lending.
type LoanService struct {
	clientRepo   repository.ClientRepository
	loanRepo     repository.LoanRepository
	paymentRepo  repository.PaymentRepository
	transferRepo repository.TransferRepository
	cache        *ReportCache
	log          *logrus.Logger
	now          func() time.Time
}

func NewLoanService(
	clientRepo repository.ClientRepository,
	loanRepo repository.LoanRepository,
	paymentRepo repository.PaymentRepository,
	transferRepo repository.TransferRepository,
	cache *ReportCache,
	log *logrus.Logger,
) *LoanService {
	return &LoanService{
		clientRepo:   clientRepo,
		loanRepo:     loanRepo,
		paymentRepo:  paymentRepo,
		transferRepo: transferRepo,
		cache:        cache,
		log:          log,
		now:          time.Now,
	}
}

// CreateLoan quotes the amortization, derives the end date and persists the
// loan.
func (s *LoanService) CreateLoan(ctx context.Context, request *domain.CreateLoanRequest) (*domain.Loan, error) {
	clientID, err := uuid.Parse(request.ClientID)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("client_id is not a valid UUID")
	}
	collectorID, err := uuid.Parse(request.CollectorID)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("collector_id is not a valid UUID")
	}

	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapClientNotFound(request.ClientID)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	startDate, err := time.Parse(dateLayout, request.StartDate)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("start_date must be YYYY-MM-DD")
	}

	loan, err := s.buildLoan(clientID, collectorID, startDate, loanTerms{
		Principal:      request.Principal,
		InterestRate:   request.InterestRate,
		Cadence:        lending.Cadence(request.Cadence),
		Installments:   request.Installments,
		GraceDays:      request.GraceDays,
		LateFeePercent: request.LateFeePercent,
		InsuranceMode:  request.InsuranceMode,
		InsuranceValue: request.InsuranceValue,
		Notes:          request.Notes,
		Channel:        request.Channel,
	})
	if err != nil {
		return nil, err
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.cache.Invalidate(ctx, startDate)
	s.log.WithFields(logrus.Fields{
		"loan_id":   loan.ID,
		"client_id": loan.ClientID,
		"principal": loan.Principal,
	}).Info("loan created")

	return loan, nil
}

type loanTerms struct {
	Principal      decimal.Decimal
	InterestRate   decimal.Decimal
	Cadence        lending.Cadence
	Installments   int
	GraceDays      int
	LateFeePercent decimal.Decimal
	InsuranceMode  string
	InsuranceValue decimal.Decimal
	Notes          string
	Channel        string
}

func (s *LoanService) buildLoan(clientID, collectorID uuid.UUID, startDate time.Time, t loanTerms) (*domain.Loan, error) {
	mode := lending.InsuranceMode(t.InsuranceMode)
	if t.InsuranceMode == "" {
		mode = lending.InsuranceNone
	}

	quote, err := lending.ComputeQuote(lending.Terms{
		Principal:      t.Principal,
		InterestRate:   t.InterestRate,
		Installments:   t.Installments,
		InsuranceMode:  mode,
		InsuranceValue: t.InsuranceValue,
	})
	if err != nil {
		return nil, err
	}

	channel := t.Channel
	if channel == "" {
		channel = domain.ChannelCash
	}

	now := s.now()
	return &domain.Loan{
		ID:               uuid.New(),
		ClientID:         clientID,
		CollectorID:      collectorID,
		Principal:        t.Principal,
		InterestRate:     t.InterestRate,
		Cadence:          t.Cadence,
		Installments:     t.Installments,
		InstallmentValue: quote.InstallmentValue,
		StartDate:        startDate,
		EndDate:          lending.EndDate(t.Cadence, startDate, t.Installments),
		GraceDays:        t.GraceDays,
		LateFeePercent:   t.LateFeePercent,
		InsuranceMode:    string(mode),
		InsuranceValue:   t.InsuranceValue,
		InsuranceTotal:   quote.InsuranceTotal,
		TotalPayable:     quote.TotalPayable,
		Notes:            t.Notes,
		Channel:          channel,
		Status:           domain.LoanStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// GetLoan returns a loan with its live classification. The detail view
// evaluates expired before completed.
func (s *LoanService) GetLoan(ctx context.Context, id uuid.UUID) (*domain.LoanResponse, error) {
	loan, err := s.loanRepo.GetWithTotals(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapLoanNotFound(id.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	classification, err := lending.Classify(s.classifierInput(loan))
	if err != nil {
		return nil, err
	}

	return &domain.LoanResponse{Loan: &loan.Loan, Classification: &classification}, nil
}

// ListLoans returns loans with classifications, filterable by collector and
// status. Listings use the completion-first ordering.
func (s *LoanService) ListLoans(ctx context.Context, collectorID *uuid.UUID, status string) ([]*domain.LoanResponse, error) {
	loans, err := s.loanRepo.ListWithTotals(ctx, collectorID, status)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	responses := make([]*domain.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		classification, err := lending.ClassifyCompletionFirst(s.classifierInput(loan))
		if err != nil {
			return nil, err
		}
		responses = append(responses, &domain.LoanResponse{Loan: &loan.Loan, Classification: &classification})
	}

	return responses, nil
}

// RegisterPayment appends one payment. The amount may not push the total
// collected above the loan's total payable; a fully paid loan moves to
// completed.
func (s *LoanService) RegisterPayment(ctx context.Context, loanID uuid.UUID, request *domain.CreatePaymentRequest) (*domain.Payment, error) {
	if !request.Amount.IsPositive() {
		return nil, customError.WrapInvalidLoanTerms("payment amount must be greater than zero")
	}
	collectorID, err := uuid.Parse(request.CollectorID)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("collector_id is not a valid UUID")
	}

	loan, err := s.activeLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}

	outstanding := loan.TotalPayable.Sub(loan.TotalPaid)
	if request.Amount.GreaterThan(outstanding) {
		return nil, customError.WrapPaymentExceedsBalance(request.Amount.String(), outstanding.String())
	}

	now := s.now()
	payment := &domain.Payment{
		ID:          uuid.New(),
		LoanID:      loanID,
		Amount:      request.Amount,
		Note:        request.Note,
		CollectorID: collectorID,
		PaidAt:      now,
		CreatedAt:   now,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	if request.Amount.Equal(outstanding) {
		if err := s.loanRepo.UpdateStatus(ctx, loanID, domain.LoanStatusCompleted); err != nil {
			return nil, customError.WrapDatabaseError(err)
		}
	}

	s.cache.Invalidate(ctx, now)
	s.log.WithFields(logrus.Fields{
		"loan_id": loanID,
		"amount":  request.Amount,
	}).Info("payment registered")

	return payment, nil
}

// RegisterTransfer records a bank-transfer settlement against a loan.
func (s *LoanService) RegisterTransfer(ctx context.Context, loanID uuid.UUID, request *domain.CreateTransferRequest) (*domain.Transfer, error) {
	if !request.Amount.IsPositive() {
		return nil, customError.WrapInvalidLoanTerms("transfer amount must be greater than zero")
	}
	createdBy, err := uuid.Parse(request.CreatedBy)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("created_by is not a valid UUID")
	}

	loan, err := s.activeLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}

	outstanding := loan.TotalPayable.Sub(loan.TotalPaid)
	if request.Amount.GreaterThan(outstanding) {
		return nil, customError.WrapPaymentExceedsBalance(request.Amount.String(), outstanding.String())
	}

	now := s.now()
	transfer := &domain.Transfer{
		ID:            uuid.New(),
		LoanID:        loanID,
		Amount:        request.Amount,
		Bank:          request.Bank,
		Reference:     request.Reference,
		ReceiptRef:    request.ReceiptRef,
		CreatedBy:     createdBy,
		TransferredAt: now,
		CreatedAt:     now,
	}

	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	if request.Amount.Equal(outstanding) {
		if err := s.loanRepo.UpdateStatus(ctx, loanID, domain.LoanStatusCompleted); err != nil {
			return nil, customError.WrapDatabaseError(err)
		}
	}

	s.cache.Invalidate(ctx, now)

	return transfer, nil
}

// RenewLoan replaces an active loan with a new one. The new principal must
// clear the old outstanding balance; only the difference is handed to the
// client, but the new loan stores the full principal.
func (s *LoanService) RenewLoan(ctx context.Context, oldLoanID uuid.UUID, request *domain.RenewLoanRequest) (*domain.RenewalResponse, error) {
	collectorID, err := uuid.Parse(request.CollectorID)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("collector_id is not a valid UUID")
	}

	oldLoan, err := s.activeLoan(ctx, oldLoanID)
	if err != nil {
		return nil, err
	}

	outstanding := oldLoan.TotalPayable.Sub(oldLoan.TotalPaid)
	if err := lending.ValidateRenewal(request.NewPrincipal, outstanding); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(dateLayout, request.StartDate)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("start_date must be YYYY-MM-DD")
	}

	newLoan, err := s.buildLoan(oldLoan.ClientID, collectorID, startDate, loanTerms{
		Principal:      request.NewPrincipal,
		InterestRate:   request.InterestRate,
		Cadence:        lending.Cadence(request.Cadence),
		Installments:   request.Installments,
		GraceDays:      request.GraceDays,
		LateFeePercent: request.LateFeePercent,
		InsuranceMode:  request.InsuranceMode,
		InsuranceValue: request.InsuranceValue,
		Notes:          request.Notes,
		Channel:        oldLoan.Channel,
	})
	if err != nil {
		return nil, err
	}
	newLoan.RenewedFrom = &oldLoan.ID

	if err := s.loanRepo.Create(ctx, newLoan); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if err := s.loanRepo.UpdateStatus(ctx, oldLoanID, domain.LoanStatusRenewed); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.cache.Invalidate(ctx, startDate)
	s.log.WithFields(logrus.Fields{
		"old_loan_id": oldLoanID,
		"new_loan_id": newLoan.ID,
		"disbursed":   lending.RenewalDisbursement(request.NewPrincipal, outstanding),
	}).Info("loan renewed")

	return &domain.RenewalResponse{
		NewLoan:        newLoan,
		OldLoanID:      oldLoanID,
		OldOutstanding: outstanding,
		CashDisbursed:  lending.RenewalDisbursement(request.NewPrincipal, outstanding),
	}, nil
}

// SweepExpired marks active loans past their end date as expired. Run
// nightly by the scheduler.
func (s *LoanService) SweepExpired(ctx context.Context, today time.Time) (int, error) {
	loans, err := s.loanRepo.ListWithTotals(ctx, nil, domain.LoanStatusActive)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	swept := 0
	for _, loan := range loans {
		if !today.After(loan.EndDate) {
			continue
		}
		if err := s.loanRepo.UpdateStatus(ctx, loan.ID, domain.LoanStatusExpired); err != nil {
			s.log.WithError(err).WithField("loan_id", loan.ID).Error("marking loan expired")
			continue
		}
		swept++
	}

	return swept, nil
}

func (s *LoanService) activeLoan(ctx context.Context, loanID uuid.UUID) (*domain.LoanWithTotals, error) {
	loan, err := s.loanRepo.GetWithTotals(ctx, loanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapLoanNotFound(loanID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	if loan.Status != domain.LoanStatusActive {
		return nil, customError.WrapLoanNotActive(loanID.String(), loan.Status)
	}
	return loan, nil
}

func (s *LoanService) classifierInput(loan *domain.LoanWithTotals) lending.Input {
	return lending.Input{
		Cadence:          loan.Cadence,
		StartDate:        loan.StartDate,
		EndDate:          loan.EndDate,
		InstallmentValue: loan.InstallmentValue,
		TotalPayable:     loan.TotalPayable,
		TotalPaid:        loan.TotalPaid,
		InstallmentsPaid: loan.InstallmentsPaid,
		GraceDays:        loan.GraceDays,
		MarkedExpired:    loan.Status == domain.LoanStatusExpired,
		Today:            s.now(),
	}
}
