package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrEmptyPaymentID    = errors.New("payment id required for activation")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Reservation is the ledger aggregate. Once Active, Completed or Cancelled it
// is immutable except for status; all mutation goes through the transition
// methods below, which enforce the legal-transition table.
type Reservation struct {
	id          uuid.UUID
	studentID   uuid.UUID
	roomID      uuid.UUID
	residenceID uuid.UUID
	stay        StayPeriod
	amount      Money
	status      Status
	paymentID   *string
	statusNote  *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPending builds a fresh reservation awaiting payment.
func NewPending(
	studentID, roomID, residenceID uuid.UUID,
	stay StayPeriod,
	amount Money,
	now time.Time,
) (*Reservation, error) {
	if amount.Cents() < 0 {
		return nil, ErrNegativeAmount
	}

	return &Reservation{
		id:          uuid.New(),
		studentID:   studentID,
		roomID:      roomID,
		residenceID: residenceID,
		stay:        stay,
		amount:      amount,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a reservation from persisted state without validation.
func Reconstruct(
	id, studentID, roomID, residenceID uuid.UUID,
	stay StayPeriod,
	amount Money,
	status Status,
	paymentID *string,
	statusNote *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		studentID:   studentID,
		roomID:      roomID,
		residenceID: residenceID,
		stay:        stay,
		amount:      amount,
		status:      status,
		paymentID:   paymentID,
		statusNote:  statusNote,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) transition(target Status) error {
	if !r.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, r.status, target)
	}
	r.status = target
	return nil
}

// Activate confirms payment and moves the reservation to Active. A
// reservation never becomes Active without a payment id.
func (r *Reservation) Activate(paymentID string) error {
	if paymentID == "" {
		return ErrEmptyPaymentID
	}
	if err := r.transition(StatusActive); err != nil {
		return err
	}
	r.paymentID = &paymentID
	return nil
}

// Approve records staff approval of a pending reservation.
func (r *Reservation) Approve() error {
	return r.transition(StatusApproved)
}

// Reject marks the reservation as refused, keeping the reason for audit.
func (r *Reservation) Reject(reason string) error {
	if err := r.transition(StatusRejected); err != nil {
		return err
	}
	if reason != "" {
		r.statusNote = &reason
	}
	return nil
}

func (r *Reservation) Cancel() error {
	return r.transition(StatusCancelled)
}

func (r *Reservation) Complete() error {
	return r.transition(StatusCompleted)
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) HasEnded(now time.Time) bool {
	return !now.Before(r.stay.End())
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) StudentID() uuid.UUID   { return r.studentID }
func (r *Reservation) RoomID() uuid.UUID      { return r.roomID }
func (r *Reservation) ResidenceID() uuid.UUID { return r.residenceID }
func (r *Reservation) Stay() StayPeriod       { return r.stay }
func (r *Reservation) Amount() Money          { return r.amount }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) PaymentID() *string     { return r.paymentID }
func (r *Reservation) StatusNote() *string    { return r.statusNote }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
