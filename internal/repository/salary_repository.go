package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

type salaryRepository struct {
	db *sqlx.DB
}

func NewSalaryRepository(db *sqlx.DB) SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) GetConfig(ctx context.Context, collectorID uuid.UUID) (*domain.SalaryConfig, error) {
	query := `
		SELECT id, collector_id, base_salary, commission_percent, advance_limit_percent, minimum_advance, active, created_at, updated_at
		FROM salary_configs
		WHERE collector_id = $1
	`

	var config domain.SalaryConfig
	err := r.db.GetContext(ctx, &config, query, collectorID)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func (r *salaryRepository) UpsertConfig(ctx context.Context, config *domain.SalaryConfig) error {
	query := `
		INSERT INTO salary_configs (id, collector_id, base_salary, commission_percent, advance_limit_percent, minimum_advance, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (collector_id) DO UPDATE
		SET base_salary = EXCLUDED.base_salary,
			commission_percent = EXCLUDED.commission_percent,
			advance_limit_percent = EXCLUDED.advance_limit_percent,
			minimum_advance = EXCLUDED.minimum_advance,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		config.ID,
		config.CollectorID,
		config.BaseSalary,
		config.CommissionPercent,
		config.AdvanceLimitPercent,
		config.MinimumAdvance,
		config.Active,
		config.CreatedAt,
		time.Now(),
	)

	return err
}

func (r *salaryRepository) CreatePayment(ctx context.Context, payment *domain.SalaryPayment) error {
	query := `
		INSERT INTO salary_payments (id, collector_id, paid_by, type, period, base_amount, commission_amount, advance_amount, final_amount, status, method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.CollectorID,
		payment.PaidBy,
		payment.Type,
		payment.Period,
		payment.BaseAmount,
		payment.CommissionAmount,
		payment.AdvanceAmount,
		payment.FinalAmount,
		payment.Status,
		payment.Method,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	return err
}

func (r *salaryRepository) ListPayments(ctx context.Context, collectorID uuid.UUID, period string) ([]*domain.SalaryPayment, error) {
	query := `
		SELECT id, collector_id, paid_by, type, period, base_amount, commission_amount, advance_amount, final_amount, status, method, created_at, updated_at
		FROM salary_payments
		WHERE collector_id = $1 AND ($2 = '' OR period = $2)
		ORDER BY created_at DESC
	`

	var payments []*domain.SalaryPayment
	err := r.db.SelectContext(ctx, &payments, query, collectorID, period)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *salaryRepository) SumAdvances(ctx context.Context, collectorID uuid.UUID, period string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(advance_amount), 0)
		FROM salary_payments
		WHERE collector_id = $1 AND period = $2 AND type = 'advance' AND status IN ('pending', 'paid')
	`

	var total decimal.Decimal
	err := r.db.GetContext(ctx, &total, query, collectorID, period)
	return total, err
}
