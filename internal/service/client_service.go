package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/repository"
	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
)

// ClientService manages borrower records. Clients are never deleted.
type ClientService struct {
	clientRepo repository.ClientRepository
	log        *logrus.Logger
	now        func() time.Time
}

func NewClientService(clientRepo repository.ClientRepository, log *logrus.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		log:        log,
		now:        time.Now,
	}
}

func (s *ClientService) Create(ctx context.Context, request *domain.CreateClientRequest) (*domain.Client, error) {
	createdBy, err := uuid.Parse(request.CreatedBy)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("created_by is not a valid UUID")
	}

	now := s.now()
	client := &domain.Client{
		ID:                uuid.New(),
		Code:              request.Code,
		DocumentID:        request.DocumentID,
		Name:              request.Name,
		Phone:             request.Phone,
		ResidenceAddress:  request.ResidenceAddress,
		CollectionAddress: request.CollectionAddress,
		References:        request.References,
		Country:           request.Country,
		City:              request.City,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.log.WithField("client_id", client.ID).Info("client created")
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapClientNotFound(id.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return clients, nil
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, request *domain.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = request.Name
	client.Phone = request.Phone
	client.ResidenceAddress = request.ResidenceAddress
	client.CollectionAddress = request.CollectionAddress
	client.References = request.References
	client.Country = request.Country
	client.City = request.City
	client.UpdatedAt = s.now()

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return client, nil
}
