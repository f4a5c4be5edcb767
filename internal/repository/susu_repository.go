package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

type susuRepository struct {
	db *sqlx.DB
}

func NewSusuRepository(db *sqlx.DB) SusuRepository {
	return &susuRepository{db: db}
}

func (r *susuRepository) Create(ctx context.Context, susu *domain.Susu, participants []*domain.SusuParticipant) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO susus (id, name, pot_amount, participants, cadence, start_date, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		susu.ID,
		susu.Name,
		susu.PotAmount,
		susu.Participants,
		susu.Cadence,
		susu.StartDate,
		susu.Status,
		susu.CreatedBy,
		susu.CreatedAt,
	)
	if err != nil {
		return err
	}

	for _, p := range participants {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO susu_participants (id, susu_id, client_id, position)
			VALUES ($1, $2, $3, $4)
		`, p.ID, p.SusuID, p.ClientID, p.Position)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *susuRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Susu, error) {
	query := `
		SELECT id, name, pot_amount, participants, cadence, start_date, status, created_by, created_at
		FROM susus
		WHERE id = $1
	`

	var susu domain.Susu
	err := r.db.GetContext(ctx, &susu, query, id)
	if err != nil {
		return nil, err
	}

	return &susu, nil
}

func (r *susuRepository) GetParticipants(ctx context.Context, susuID uuid.UUID) ([]*domain.SusuParticipant, error) {
	query := `
		SELECT id, susu_id, client_id, position
		FROM susu_participants
		WHERE susu_id = $1
		ORDER BY position
	`

	var participants []*domain.SusuParticipant
	err := r.db.SelectContext(ctx, &participants, query, susuID)
	if err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *susuRepository) CreatePayment(ctx context.Context, payment *domain.SusuPayment) error {
	query := `
		INSERT INTO susu_payments (id, susu_id, participant_id, period_number, amount, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.SusuID,
		payment.ParticipantID,
		payment.PeriodNumber,
		payment.Amount,
		payment.PaidAt,
	)

	return err
}

func (r *susuRepository) ListPayments(ctx context.Context, susuID uuid.UUID) ([]*domain.SusuPayment, error) {
	query := `
		SELECT id, susu_id, participant_id, period_number, amount, paid_at
		FROM susu_payments
		WHERE susu_id = $1
		ORDER BY period_number, paid_at
	`

	var payments []*domain.SusuPayment
	err := r.db.SelectContext(ctx, &payments, query, susuID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
