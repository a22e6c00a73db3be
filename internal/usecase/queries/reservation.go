package queries

import (
	"context"
	"time"

	"dormstay/internal/infra"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id"`
	RoomID      uuid.UUID `json:"room_id"`
	RoomNumber  string    `json:"room_number"`
	ResidenceID uuid.UUID `json:"residence_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amount_cents"`
	PaymentID   *string   `json:"payment_id,omitempty"`
	StatusNote  *string   `json:"status_note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomAvailability struct {
	RoomID      uuid.UUID `json:"room_id"`
	ResidenceID uuid.UUID `json:"residence_id"`
	RoomNumber  string    `json:"room_number"`
	TotalBeds   int       `json:"total_beds"`
	FreeBeds    int       `json:"free_beds"`
}

type ReservationReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindViewsByStudent(ctx context.Context, studentID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reads ReservationReadStore
}

func NewReservationQueries(reads ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reads: reads}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reads.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !actor.CanActOn(view.StudentID) {
		return nil, errs.ErrReservationNotOwned
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.reads.FindViewsByStudent(ctx, studentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
