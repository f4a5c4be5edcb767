package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a borrower. Clients are never hard-deleted: loans keep pointing
// at them for their whole history.
type Client struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Code              string    `json:"code" db:"code"`
	DocumentID        string    `json:"document_id" db:"document_id"`
	Name              string    `json:"name" db:"name"`
	Phone             string    `json:"phone" db:"phone"`
	ResidenceAddress  string    `json:"residence_address" db:"residence_address"`
	CollectionAddress string    `json:"collection_address" db:"collection_address"`
	References        string    `json:"references" db:"references"`
	Country           string    `json:"country" db:"country"`
	City              string    `json:"city" db:"city"`
	CreatedBy         uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

type CreateClientRequest struct {
	Code              string `json:"code" validate:"required"`
	DocumentID        string `json:"document_id" validate:"required"`
	Name              string `json:"name" validate:"required"`
	Phone             string `json:"phone"`
	ResidenceAddress  string `json:"residence_address" validate:"required"`
	CollectionAddress string `json:"collection_address"`
	References        string `json:"references"`
	Country           string `json:"country"`
	City              string `json:"city"`
	CreatedBy         string `json:"created_by" validate:"required,uuid"`
}

type UpdateClientRequest struct {
	Name              string `json:"name" validate:"required"`
	Phone             string `json:"phone"`
	ResidenceAddress  string `json:"residence_address" validate:"required"`
	CollectionAddress string `json:"collection_address"`
	References        string `json:"references"`
	Country           string `json:"country"`
	City              string `json:"city"`
}
