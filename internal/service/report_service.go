package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/repository"
	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
	"github.com/jfcamargo/cobros-engine/pkg/lending"
)

var hundred = decimal.NewFromInt(100)

// ReportService builds the daily closing and period profit reports. All
// per-loan arrears math goes through pkg/lending; the reporters only
// partition rows by date and sum.
type ReportService struct {
	clientRepo     repository.ClientRepository
	loanRepo       repository.LoanRepository
	paymentRepo    repository.PaymentRepository
	transferRepo   repository.TransferRepository
	expenseRepo    repository.ExpenseRepository
	closingRepo    repository.ClosingRepository
	cache          *ReportCache
	log            *logrus.Logger
	openingBalance decimal.Decimal
	now            func() time.Time
}

func NewReportService(
	clientRepo repository.ClientRepository,
	loanRepo repository.LoanRepository,
	paymentRepo repository.PaymentRepository,
	transferRepo repository.TransferRepository,
	expenseRepo repository.ExpenseRepository,
	closingRepo repository.ClosingRepository,
	cache *ReportCache,
	log *logrus.Logger,
	openingBalance decimal.Decimal,
) *ReportService {
	return &ReportService{
		clientRepo:     clientRepo,
		loanRepo:       loanRepo,
		paymentRepo:    paymentRepo,
		transferRepo:   transferRepo,
		expenseRepo:    expenseRepo,
		closingRepo:    closingRepo,
		cache:          cache,
		log:            log,
		openingBalance: openingBalance,
		now:            time.Now,
	}
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// Daily builds the closing report for one calendar date.
func (s *ReportService) Daily(ctx context.Context, day time.Time) (*domain.DailyReport, error) {
	if cached, ok := s.cache.GetDaily(ctx, day); ok {
		return cached, nil
	}

	start, end := dayBounds(day)

	payments, err := s.paymentRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	transfers, err := s.transferRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	expenses, err := s.expenseRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	newLoans, err := s.loanRepo.ListCreatedBetween(ctx, start, end.Add(-time.Nanosecond))
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	newClients, err := s.clientRepo.CountCreatedOn(ctx, day)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	activeLoans, err := s.loanRepo.ListWithTotals(ctx, nil, domain.LoanStatusActive)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	report := &domain.DailyReport{
		Date:           start,
		OpeningBalance: s.openingBalance,
		NewLoans:       len(newLoans),
		NewClients:     newClients,
	}

	for _, p := range payments {
		report.Collections = report.Collections.Add(p.Amount)
	}
	report.PaymentCount = len(payments)

	for _, t := range transfers {
		report.Transfers = report.Transfers.Add(t.Amount)
	}
	for _, e := range expenses {
		report.Expenses = report.Expenses.Add(e.Amount)
	}
	for _, l := range newLoans {
		report.Disbursements = report.Disbursements.Add(l.Principal)
	}

	report.CashBalance = report.OpeningBalance.
		Add(report.Collections).
		Sub(report.Disbursements).
		Sub(report.Expenses)

	// Client visit buckets: visited clients paid something today, pending
	// active clients did not, overdue clients hold a delinquent loan.
	paidToday := make(map[uuid.UUID]bool)
	for _, p := range payments {
		paidToday[p.LoanID] = true
	}

	visited := make(map[uuid.UUID]bool)
	pending := make(map[uuid.UUID]bool)
	overdue := make(map[uuid.UUID]bool)

	for _, loan := range activeLoans {
		classification, err := lending.Classify(s.classifierInput(loan, day))
		if err != nil {
			return nil, err
		}

		if paidToday[loan.ID] {
			visited[loan.ClientID] = true
		} else {
			pending[loan.ClientID] = true
		}
		if classification.Status == lending.StatusDelinquent {
			overdue[loan.ClientID] = true
		}

		if loan.RenewedFrom != nil {
			report.Renewals.Total++
			switch classification.Status {
			case lending.StatusCurrent:
				report.Renewals.Pending++
			case lending.StatusDueSoon, lending.StatusDelinquent:
				report.Renewals.Due++
			case lending.StatusCompleted:
				report.Renewals.Completed++
			}
		}
	}
	for _, l := range newLoans {
		if l.RenewedFrom != nil {
			report.Renewals.New++
		}
	}

	report.VisitedClients = len(visited)
	report.PendingClients = len(pending)
	report.OverdueClients = len(overdue)

	s.cache.SetDaily(ctx, day, report)
	return report, nil
}

// Period aggregates financial metrics over [from, to] inclusive.
func (s *ReportService) Period(ctx context.Context, from, to time.Time) (*domain.PeriodReport, error) {
	if cached, ok := s.cache.GetPeriod(ctx, from, to); ok {
		return cached, nil
	}

	start, _ := dayBounds(from)
	_, end := dayBounds(to)

	loans, err := s.loanRepo.ListCreatedBetween(ctx, start, end.Add(-time.Nanosecond))
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	payments, err := s.paymentRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	expenses, err := s.expenseRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	allLoans, err := s.loanRepo.ListWithTotals(ctx, nil, "")
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	report := &domain.PeriodReport{From: start, To: end.Add(-time.Nanosecond)}

	for _, l := range loans {
		report.CapitalInvested = report.CapitalInvested.Add(l.Principal)
		report.InterestGenerated = report.InterestGenerated.Add(l.Principal.Mul(l.InterestRate).Div(hundred))
	}
	for _, p := range payments {
		report.CapitalRecovered = report.CapitalRecovered.Add(p.Amount)
	}
	for _, e := range expenses {
		report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
	}

	// Interest collected is the interest share of each peso collected:
	// payment x (interest / total payable) per loan. Late fees accrue on
	// the overdue amount of delinquent or expired loans whose term ends in
	// the range; unrecovered capital is their outstanding balance.
	paymentsByLoan := make(map[uuid.UUID]decimal.Decimal)
	for _, p := range payments {
		paymentsByLoan[p.LoanID] = paymentsByLoan[p.LoanID].Add(p.Amount)
	}

	for _, loan := range allLoans {
		if collected, ok := paymentsByLoan[loan.ID]; ok && loan.TotalPayable.IsPositive() {
			interestTotal := loan.Principal.Mul(loan.InterestRate).Div(hundred)
			report.InterestCollected = report.InterestCollected.Add(
				collected.Mul(interestTotal).Div(loan.TotalPayable))
		}

		classification, err := lending.Classify(s.classifierInput(loan, to))
		if err != nil {
			return nil, err
		}

		endsInRange := !loan.EndDate.Before(start) && loan.EndDate.Before(end)
		if !endsInRange {
			continue
		}
		switch classification.Status {
		case lending.StatusExpired, lending.StatusDelinquent:
			if classification.Outstanding.IsPositive() {
				report.CapitalUnrecovered = report.CapitalUnrecovered.Add(classification.Outstanding)
			}
			report.LateFeeRevenue = report.LateFeeRevenue.Add(
				classification.AmountOverdue.Mul(loan.LateFeePercent).Div(hundred))
		}
	}

	report.NetProfit = report.CapitalRecovered.
		Add(report.InterestCollected).
		Add(report.LateFeeRevenue).
		Sub(report.CapitalInvested).
		Sub(report.TotalExpenses)

	// ROI guard: zero invested reports 0, never an error.
	if report.CapitalInvested.IsPositive() {
		report.ROI = report.NetProfit.Div(report.CapitalInvested).Mul(hundred)
	} else {
		report.ROI = decimal.Zero
	}

	s.cache.SetPeriod(ctx, from, to, report)
	return report, nil
}

// SnapshotDay persists the closing for a date. Run nightly for the previous
// day.
func (s *ReportService) SnapshotDay(ctx context.Context, day time.Time) error {
	report, err := s.Daily(ctx, day)
	if err != nil {
		return err
	}

	closing := &domain.DailyClosing{
		Date:           report.Date,
		OpeningBalance: report.OpeningBalance,
		Collections:    report.Collections,
		Transfers:      report.Transfers,
		Disbursements:  report.Disbursements,
		Expenses:       report.Expenses,
		CashBalance:    report.CashBalance,
		NewLoans:       report.NewLoans,
		NewClients:     report.NewClients,
		CreatedAt:      s.now(),
	}

	if err := s.closingRepo.Create(ctx, closing); err != nil {
		return customError.WrapDatabaseError(err)
	}

	s.log.WithField("date", report.Date.Format(dateLayout)).Info("daily closing persisted")
	return nil
}

// RegisterExpense records an operating cost and drops the affected report
// caches.
func (s *ReportService) RegisterExpense(ctx context.Context, request *domain.CreateExpenseRequest) (*domain.Expense, error) {
	if !request.Amount.IsPositive() {
		return nil, customError.WrapInvalidLoanTerms("expense amount must be greater than zero")
	}
	createdBy, err := uuid.Parse(request.CreatedBy)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("created_by is not a valid UUID")
	}
	spentAt, err := time.Parse(dateLayout, request.SpentAt)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("spent_at must be YYYY-MM-DD")
	}

	expense := &domain.Expense{
		ID:          uuid.New(),
		Category:    request.Category,
		Description: request.Description,
		Amount:      request.Amount,
		SpentAt:     spentAt,
		CreatedBy:   createdBy,
		CreatedAt:   s.now(),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.cache.Invalidate(ctx, spentAt)
	return expense, nil
}

// ListExpenses returns the expenses recorded on one date.
func (s *ReportService) ListExpenses(ctx context.Context, day time.Time) ([]*domain.Expense, error) {
	start, end := dayBounds(day)
	expenses, err := s.expenseRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return expenses, nil
}

func (s *ReportService) classifierInput(loan *domain.LoanWithTotals, today time.Time) lending.Input {
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
		Today:            today,
	}
}
