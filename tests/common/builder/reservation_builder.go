//go:build unit

package builder

import (
	"time"

	"dormstay/internal/domain/reservation"
	reqdto "dormstay/internal/handler/dto/request"
	"dormstay/internal/usecase/commands"
	"dormstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	StudentID   uuid.UUID
	RoomID      uuid.UUID
	ResidenceID uuid.UUID
	RoomNumber  string
	StartDate   time.Time
	EndDate     time.Time
	Status      reservation.Status
	AmountCents int64
	PaymentID   *string
	StatusNote  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:          uuid.New(),
		StudentID:   uuid.New(),
		RoomID:      uuid.New(),
		ResidenceID: uuid.New(),
		RoomNumber:  "204",
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
		Status:      reservation.StatusPending,
		AmountCents: 200000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Stay() reservation.StayPeriod {
	stay, err := reservation.NewStayPeriod(b.StartDate, b.EndDate)
	if err != nil {
		panic("builder produced an invalid stay period: " + err.Error())
	}
	return stay
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(
		b.ID, b.StudentID, b.RoomID, b.ResidenceID,
		b.Stay(),
		reservation.NewMoney(b.AmountCents),
		b.Status,
		b.PaymentID,
		b.StatusNote,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		StudentID:   b.StudentID,
		RoomID:      b.RoomID,
		RoomNumber:  b.RoomNumber,
		ResidenceID: b.ResidenceID,
		StartDate:   b.Stay().Start(),
		EndDate:     b.Stay().End(),
		Status:      b.Status.String(),
		AmountCents: b.AmountCents,
		PaymentID:   b.PaymentID,
		StatusNote:  b.StatusNote,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:      b.RoomID,
		ResidenceID: b.ResidenceID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
	}
}

func (b *ReservationBuilder) BuildReserveParams() commands.ReserveRoomParams {
	return commands.ReserveRoomParams{
		StudentID:   b.StudentID,
		RoomID:      b.RoomID,
		ResidenceID: b.ResidenceID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
	}
}
