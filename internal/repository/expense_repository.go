package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

type expenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (id, category, description, amount, spent_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID,
		expense.Category,
		expense.Description,
		expense.Amount,
		expense.SpentAt,
		expense.CreatedBy,
		expense.CreatedAt,
	)

	return err
}

func (r *expenseRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Expense, error) {
	query := `
		SELECT id, category, description, amount, spent_at, created_by, created_at
		FROM expenses
		WHERE spent_at >= $1 AND spent_at < $2
		ORDER BY spent_at
	`

	var expenses []*domain.Expense
	err := r.db.SelectContext(ctx, &expenses, query, from, to)
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
