package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

const loanColumns = `id, client_id, collector_id, principal, interest_rate, cadence, installments, installment_value,
	start_date, end_date, grace_days, late_fee_percent, insurance_mode, insurance_value, insurance_total,
	total_payable, notes, channel, status, renewed_from, created_at, updated_at`

type loanRepository struct {
	db *sqlx.DB
}

func NewLoanRepository(db *sqlx.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.ClientID,
		loan.CollectorID,
		loan.Principal,
		loan.InterestRate,
		loan.Cadence,
		loan.Installments,
		loan.InstallmentValue,
		loan.StartDate,
		loan.EndDate,
		loan.GraceDays,
		loan.LateFeePercent,
		loan.InsuranceMode,
		loan.InsuranceValue,
		loan.InsuranceTotal,
		loan.TotalPayable,
		loan.Notes,
		loan.Channel,
		loan.Status,
		loan.RenewedFrom,
		loan.CreatedAt,
		loan.UpdatedAt,
	)

	return err
}

func (r *loanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	var loan domain.Loan
	err := r.db.GetContext(ctx, &loan, query, id)
	if err != nil {
		return nil, err
	}

	return &loan, nil
}

func (r *loanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE loans
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	return err
}

// totalsJoin aggregates payments and transfers per loan. Installments paid
// counts payment rows only; the paid sum includes transfers.
const totalsJoin = `
	LEFT JOIN (
		SELECT loan_id, COUNT(*) AS cnt, COALESCE(SUM(amount), 0) AS total
		FROM payments
		GROUP BY loan_id
	) p ON p.loan_id = l.id
	LEFT JOIN (
		SELECT loan_id, COALESCE(SUM(amount), 0) AS total
		FROM transfers
		GROUP BY loan_id
	) t ON t.loan_id = l.id
`

func loanTotalsQuery(where string) string {
	cols := `l.id, l.client_id, l.collector_id, l.principal, l.interest_rate, l.cadence, l.installments, l.installment_value,
		l.start_date, l.end_date, l.grace_days, l.late_fee_percent, l.insurance_mode, l.insurance_value, l.insurance_total,
		l.total_payable, l.notes, l.channel, l.status, l.renewed_from, l.created_at, l.updated_at,
		COALESCE(p.cnt, 0) AS installments_paid,
		COALESCE(p.total, 0) + COALESCE(t.total, 0) AS total_paid`
	return `SELECT ` + cols + ` FROM loans l` + totalsJoin + where
}

func (r *loanRepository) GetWithTotals(ctx context.Context, id uuid.UUID) (*domain.LoanWithTotals, error) {
	query := loanTotalsQuery(` WHERE l.id = $1`)

	var loan domain.LoanWithTotals
	err := r.db.GetContext(ctx, &loan, query, id)
	if err != nil {
		return nil, err
	}

	return &loan, nil
}

func (r *loanRepository) ListWithTotals(ctx context.Context, collectorID *uuid.UUID, status string) ([]*domain.LoanWithTotals, error) {
	where := ` WHERE ($1::uuid IS NULL OR l.collector_id = $1) AND ($2 = '' OR l.status = $2) ORDER BY l.created_at DESC`
	query := loanTotalsQuery(where)

	var loans []*domain.LoanWithTotals
	err := r.db.SelectContext(ctx, &loans, query, collectorID, status)
	if err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *loanRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE start_date >= $1 AND start_date <= $2 ORDER BY start_date`

	var loans []*domain.Loan
	err := r.db.SelectContext(ctx, &loans, query, from, to)
	if err != nil {
		return nil, err
	}

	return loans, nil
}
