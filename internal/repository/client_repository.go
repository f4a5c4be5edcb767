package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jfcamargo/cobros-engine/internal/domain"
)

type clientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, code, document_id, name, phone, residence_address, collection_address, "references", country, city, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Code,
		client.DocumentID,
		client.Name,
		client.Phone,
		client.ResidenceAddress,
		client.CollectionAddress,
		client.References,
		client.Country,
		client.City,
		client.CreatedBy,
		client.CreatedAt,
		client.UpdatedAt,
	)

	return err
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `
		SELECT id, code, document_id, name, phone, residence_address, collection_address, "references", country, city, created_by, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var client domain.Client
	err := r.db.GetContext(ctx, &client, query, id)
	if err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	query := `
		SELECT id, code, document_id, name, phone, residence_address, collection_address, "references", country, city, created_by, created_at, updated_at
		FROM clients
		ORDER BY name
	`

	var clients []*domain.Client
	err := r.db.SelectContext(ctx, &clients, query)
	if err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, phone = $3, residence_address = $4, collection_address = $5, "references" = $6, country = $7, city = $8, updated_at = $9
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.Phone,
		client.ResidenceAddress,
		client.CollectionAddress,
		client.References,
		client.Country,
		client.City,
		time.Now(),
	)

	return err
}

func (r *clientRepository) CountCreatedOn(ctx context.Context, day time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM clients
		WHERE created_at >= $1 AND created_at < $2
	`

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var count int
	err := r.db.GetContext(ctx, &count, query, start, start.AddDate(0, 0, 1))
	return count, err
}
