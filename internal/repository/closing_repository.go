package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

type closingRepository struct {
	db *sqlx.DB
}

func NewClosingRepository(db *sqlx.DB) ClosingRepository {
	return &closingRepository{db: db}
}

func (r *closingRepository) Create(ctx context.Context, closing *domain.DailyClosing) error {
	query := `
		INSERT INTO daily_closings (date, opening_balance, collections, transfers, disbursements, expenses, cash_balance, new_loans, new_clients, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (date) DO UPDATE
		SET opening_balance = EXCLUDED.opening_balance,
			collections = EXCLUDED.collections,
			transfers = EXCLUDED.transfers,
			disbursements = EXCLUDED.disbursements,
			expenses = EXCLUDED.expenses,
			cash_balance = EXCLUDED.cash_balance,
			new_loans = EXCLUDED.new_loans,
			new_clients = EXCLUDED.new_clients
	`

	_, err := r.db.ExecContext(ctx, query,
		closing.Date,
		closing.OpeningBalance,
		closing.Collections,
		closing.Transfers,
		closing.Disbursements,
		closing.Expenses,
		closing.CashBalance,
		closing.NewLoans,
		closing.NewClients,
		closing.CreatedAt,
	)

	return err
}

func (r *closingRepository) GetByDate(ctx context.Context, day time.Time) (*domain.DailyClosing, error) {
	query := `
		SELECT date, opening_balance, collections, transfers, disbursements, expenses, cash_balance, new_loans, new_clients, created_at
		FROM daily_closings
		WHERE date = $1
	`

	var closing domain.DailyClosing
	err := r.db.GetContext(ctx, &closing, query, day)
	if err != nil {
		return nil, err
	}

	return &closing, nil
}
