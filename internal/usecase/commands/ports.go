package commands

import (
	"context"
	"time"

	"dormstay/internal/domain/reservation"

	"github.com/google/uuid"
)

// Write-side snapshot prevents dependency on read-side query types.
type RoomSnapshot struct {
	ID           uuid.UUID
	ResidenceID  uuid.UUID
	Number       string
	TotalBeds    int
	OccupiedBeds int
	Active       bool
}

// RoomInventory is the only mutation path for a room's occupied-bed count.
// TryHold must be atomic with respect to concurrent callers on the same
// room: two requests racing for the last bed cannot both succeed.
type RoomInventory interface {
	TryHold(ctx context.Context, roomID uuid.UUID, count int) (bool, error)
	Release(ctx context.Context, roomID uuid.UUID, count int) error
	Available(ctx context.Context, roomID uuid.UUID) (int, error)
}

type RoomReader interface {
	FindByID(ctx context.Context, roomID uuid.UUID) (*RoomSnapshot, error)
}

// ReservationLedger owns reservation rows and their status transitions.
// Implementations must guard every transition on the expected source status
// and report an illegal transition as a conflict.
type ReservationLedger interface {
	CreatePending(ctx context.Context, res *reservation.Reservation) error
	Activate(ctx context.Context, id uuid.UUID, paymentID string) error
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, reason string) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindStalePending(ctx context.Context, createdBefore time.Time) ([]*reservation.Reservation, error)
}

type ChargeRequest struct {
	StudentID   uuid.UUID
	AmountCents int64
	Reference   string
}

// ChargeResult distinguishes a processed decline from a transport failure:
// declines come back as a result, failures as an error. Both take the
// rollback path in the coordinator.
type ChargeResult struct {
	Approved      bool
	PaymentID     string
	DeclineReason string
}

type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

type QuoteContext struct {
	RoomID      uuid.UUID
	ResidenceID uuid.UUID
	StudentID   uuid.UUID
	Nights      int
}

// PricingService is a pure collaborator: no side effects are assumed.
type PricingService interface {
	Quote(ctx context.Context, q QuoteContext) (int64, error)
}

type BookingEvent struct {
	Kind          string    `json:"kind"`
	ReservationID uuid.UUID `json:"reservation_id"`
	RoomID        uuid.UUID `json:"room_id"`
	StudentID     uuid.UUID `json:"student_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

const (
	EventReservationActivated = "reservation.activated"
	EventReservationRejected  = "reservation.rejected"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationCompleted = "reservation.completed"
	EventReservationExpired   = "reservation.expired"
)

type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
