package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, loan_id, amount, note, collector_id, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.LoanID,
		payment.Amount,
		payment.Note,
		payment.CollectorID,
		payment.PaidAt,
		payment.CreatedAt,
	)

	return err
}

func (r *paymentRepository) ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]*domain.Payment, error) {
	query := `
		SELECT id, loan_id, amount, note, collector_id, paid_at, created_at
		FROM payments
		WHERE loan_id = $1
		ORDER BY paid_at
	`

	var payments []*domain.Payment
	err := r.db.SelectContext(ctx, &payments, query, loanID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Payment, error) {
	query := `
		SELECT id, loan_id, amount, note, collector_id, paid_at, created_at
		FROM payments
		WHERE paid_at >= $1 AND paid_at < $2
		ORDER BY paid_at
	`

	var payments []*domain.Payment
	err := r.db.SelectContext(ctx, &payments, query, from, to)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) ListByCollectorBetween(ctx context.Context, collectorID uuid.UUID, from, to time.Time) ([]*domain.Payment, error) {
	query := `
		SELECT id, loan_id, amount, note, collector_id, paid_at, created_at
		FROM payments
		WHERE collector_id = $1 AND paid_at >= $2 AND paid_at < $3
		ORDER BY paid_at
	`

	var payments []*domain.Payment
	err := r.db.SelectContext(ctx, &payments, query, collectorID, from, to)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
