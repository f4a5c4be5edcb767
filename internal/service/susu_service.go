package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/repository"
	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
	"github.com/jfcamargo/cobros-engine/pkg/lending"
)

// SusuService manages rotating savings groups. Round progress reuses the
// cadence day math loans use.
type SusuService struct {
	susuRepo repository.SusuRepository
	log      *logrus.Logger
	now      func() time.Time
}

func NewSusuService(susuRepo repository.SusuRepository, log *logrus.Logger) *SusuService {
	return &SusuService{
		susuRepo: susuRepo,
		log:      log,
		now:      time.Now,
	}
}

// Create opens a susu. Positions are assigned in the order clients are
// listed; the pot splits evenly per period.
func (s *SusuService) Create(ctx context.Context, request *domain.CreateSusuRequest) (*domain.Susu, error) {
	if !request.PotAmount.IsPositive() {
		return nil, customError.WrapInvalidLoanTerms("pot amount must be greater than zero")
	}
	createdBy, err := uuid.Parse(request.CreatedBy)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("created_by is not a valid UUID")
	}
	startDate, err := time.Parse(dateLayout, request.StartDate)
	if err != nil {
		return nil, customError.WrapInvalidLoanTerms("start_date must be YYYY-MM-DD")
	}

	susu := &domain.Susu{
		ID:           uuid.New(),
		Name:         request.Name,
		PotAmount:    request.PotAmount,
		Participants: len(request.ClientIDs),
		Cadence:      lending.Cadence(request.Cadence),
		StartDate:    startDate,
		Status:       domain.SusuStatusActive,
		CreatedBy:    createdBy,
		CreatedAt:    s.now(),
	}

	participants := make([]*domain.SusuParticipant, 0, len(request.ClientIDs))
	for i, raw := range request.ClientIDs {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			return nil, customError.WrapInvalidLoanTerms("client_ids must all be valid UUIDs")
		}
		participants = append(participants, &domain.SusuParticipant{
			ID:       uuid.New(),
			SusuID:   susu.ID,
			ClientID: clientID,
			Position: i + 1,
		})
	}

	if err := s.susuRepo.Create(ctx, susu, participants); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.log.WithFields(logrus.Fields{
		"susu_id":      susu.ID,
		"participants": susu.Participants,
	}).Info("susu created")

	return susu, nil
}

// RegisterContribution records a participant's payment for the current
// period.
func (s *SusuService) RegisterContribution(ctx context.Context, susuID uuid.UUID, position int, request *domain.CreateSusuPaymentRequest) (*domain.SusuPayment, error) {
	if !request.Amount.IsPositive() {
		return nil, customError.WrapInvalidLoanTerms("contribution amount must be greater than zero")
	}

	susu, participant, err := s.lookup(ctx, susuID, position)
	if err != nil {
		return nil, err
	}

	now := s.now()
	period := currentPeriod(susu, now)

	payment := &domain.SusuPayment{
		ID:            uuid.New(),
		SusuID:        susuID,
		ParticipantID: participant.ID,
		PeriodNumber:  period,
		Amount:        request.Amount,
		PaidAt:        now,
	}

	if err := s.susuRepo.CreatePayment(ctx, payment); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return payment, nil
}

// Progress reports the round state: the running period, whose turn the pot
// is, and how far along each participant's contributions are.
func (s *SusuService) Progress(ctx context.Context, susuID uuid.UUID) (*domain.SusuProgress, error) {
	susu, err := s.susuRepo.GetByID(ctx, susuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapSusuNotFound(susuID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	participants, err := s.susuRepo.GetParticipants(ctx, susuID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	payments, err := s.susuRepo.ListPayments(ctx, susuID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	period := currentPeriod(susu, s.now())

	progress := &domain.SusuProgress{
		SusuID:         susuID,
		CurrentPeriod:  period,
		WinnerPosition: period,
		Contribution:   susu.PotAmount.Div(decimal.NewFromInt(int64(susu.Participants))),
		Completed:      susu.Status == domain.SusuStatusCompleted || period > susu.Participants,
	}
	if progress.Completed {
		progress.WinnerPosition = susu.Participants
	}

	paidPeriods := make(map[uuid.UUID]int)
	paidAmounts := make(map[uuid.UUID]decimal.Decimal)
	for _, p := range payments {
		paidPeriods[p.ParticipantID]++
		paidAmounts[p.ParticipantID] = paidAmounts[p.ParticipantID].Add(p.Amount)
	}

	due := period
	if due > susu.Participants {
		due = susu.Participants
	}

	for _, participant := range participants {
		progress.ParticipantStates = append(progress.ParticipantStates, domain.SusuParticipantRow{
			Position:    participant.Position,
			ClientID:    participant.ClientID,
			PeriodsPaid: paidPeriods[participant.ID],
			PeriodsDue:  due,
			AmountPaid:  paidAmounts[participant.ID],
		})
	}

	return progress, nil
}

// currentPeriod is one-based: the round starts in period 1 on the start
// date.
func currentPeriod(susu *domain.Susu, today time.Time) int {
	return lending.ElapsedInstallments(susu.Cadence, susu.StartDate, today) + 1
}

func (s *SusuService) lookup(ctx context.Context, susuID uuid.UUID, position int) (*domain.Susu, *domain.SusuParticipant, error) {
	susu, err := s.susuRepo.GetByID(ctx, susuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, customError.WrapSusuNotFound(susuID.String())
		}
		return nil, nil, customError.WrapDatabaseError(err)
	}

	participants, err := s.susuRepo.GetParticipants(ctx, susuID)
	if err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}
	for _, p := range participants {
		if p.Position == position {
			return susu, p, nil
		}
	}

	return nil, nil, customError.WrapInvalidLoanTerms("no participant at that position")
}
