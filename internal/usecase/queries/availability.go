package queries

import (
	"context"

	"dormstay/internal/domain/reservation"
	"dormstay/internal/pkg/errs"

	"github.com/google/uuid"
)

type VacancyReadStore interface {
	FindVacantRooms(ctx context.Context, residenceID uuid.UUID, stay reservation.StayPeriod) ([]*RoomAvailability, error)
}

// AvailabilityQueries is the advisory read path: the result is a hint, not a
// reservation guarantee, and may be stale relative to a concurrent hold.
type AvailabilityQueries interface {
	ListVacantRooms(ctx context.Context, residenceID uuid.UUID, stay reservation.StayPeriod) ([]*RoomAvailability, error)
}

type availabilityQueriesImpl struct {
	vacancies VacancyReadStore
}

func NewAvailabilityQueries(vacancies VacancyReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{vacancies: vacancies}
}

func (q *availabilityQueriesImpl) ListVacantRooms(ctx context.Context, residenceID uuid.UUID, stay reservation.StayPeriod) ([]*RoomAvailability, error) {
	rooms, err := q.vacancies.FindVacantRooms(ctx, residenceID, stay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rooms, nil
}
