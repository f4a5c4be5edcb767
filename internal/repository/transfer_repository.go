package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

type transferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	query := `
		INSERT INTO transfers (id, loan_id, amount, bank, reference, receipt_ref, created_by, transferred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		transfer.ID,
		transfer.LoanID,
		transfer.Amount,
		transfer.Bank,
		transfer.Reference,
		transfer.ReceiptRef,
		transfer.CreatedBy,
		transfer.TransferredAt,
		transfer.CreatedAt,
	)

	return err
}

func (r *transferRepository) ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]*domain.Transfer, error) {
	query := `
		SELECT id, loan_id, amount, bank, reference, receipt_ref, created_by, transferred_at, created_at
		FROM transfers
		WHERE loan_id = $1
		ORDER BY transferred_at
	`

	var transfers []*domain.Transfer
	err := r.db.SelectContext(ctx, &transfers, query, loanID)
	if err != nil {
		return nil, err
	}

	return transfers, nil
}

func (r *transferRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Transfer, error) {
	query := `
		SELECT id, loan_id, amount, bank, reference, receipt_ref, created_by, transferred_at, created_at
		FROM transfers
		WHERE transferred_at >= $1 AND transferred_at < $2
		ORDER BY transferred_at
	`

	var transfers []*domain.Transfer
	err := r.db.SelectContext(ctx, &transfers, query, from, to)
	if err != nil {
		return nil, err
	}

	return transfers, nil
}
