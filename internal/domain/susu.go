package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcamargo/cobros-engine/pkg/lending"
)

const (
	SusuStatusActive    = "active"
	SusuStatusCompleted = "completed"
)

// Susu is a rotating savings group: a fixed pot, N participants each holding
// an order position, one winner per period. Contribution per participant per
// period is pot / participants.
type Susu struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	PotAmount    decimal.Decimal `json:"pot_amount" db:"pot_amount"`
	Participants int             `json:"participants" db:"participants"`
	Cadence      lending.Cadence `json:"cadence" db:"cadence"`
	StartDate    time.Time       `json:"start_date" db:"start_date"`
	Status       string          `json:"status" db:"status"`
	CreatedBy    uuid.UUID       `json:"created_by" db:"created_by"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

type SusuParticipant struct {
	ID       uuid.UUID `json:"id" db:"id"`
	SusuID   uuid.UUID `json:"susu_id" db:"susu_id"`
	ClientID uuid.UUID `json:"client_id" db:"client_id"`
	Position int       `json:"position" db:"position"`
}

type SusuPayment struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	SusuID        uuid.UUID       `json:"susu_id" db:"susu_id"`
	ParticipantID uuid.UUID       `json:"participant_id" db:"participant_id"`
	PeriodNumber  int             `json:"period_number" db:"period_number"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	PaidAt        time.Time       `json:"paid_at" db:"paid_at"`
}

type CreateSusuRequest struct {
	Name      string          `json:"name" validate:"required"`
	PotAmount decimal.Decimal `json:"pot_amount" validate:"required"`
	Cadence   string          `json:"cadence" validate:"required"`
	StartDate string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	CreatedBy string          `json:"created_by" validate:"required,uuid"`
	ClientIDs []string        `json:"client_ids" validate:"required,min=2,dive,uuid"`
}

type CreateSusuPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// SusuProgress is the round state on a given day, computed with the same
// cadence math loans use.
type SusuProgress struct {
	SusuID            uuid.UUID            `json:"susu_id"`
	CurrentPeriod     int                  `json:"current_period"`
	WinnerPosition    int                  `json:"winner_position"`
	Contribution      decimal.Decimal      `json:"contribution_per_period"`
	Completed         bool                 `json:"completed"`
	ParticipantStates []SusuParticipantRow `json:"participant_states"`
}

type SusuParticipantRow struct {
	Position    int             `json:"position"`
	ClientID    uuid.UUID       `json:"client_id"`
	PeriodsPaid int             `json:"periods_paid"`
	PeriodsDue  int             `json:"periods_due"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
}
