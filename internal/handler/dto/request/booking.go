package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID      uuid.UUID `json:"room_id" binding:"required"`
	ResidenceID uuid.UUID `json:"residence_id" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	// AmountCents overrides the quoted price when the caller already agreed
	// one (e.g. a staff-negotiated rate). Normally left empty.
	AmountCents *int64 `json:"amount_cents,omitempty"`
}
