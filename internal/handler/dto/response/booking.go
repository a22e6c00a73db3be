package response

import (
	"time"

	"dormstay/internal/usecase/queries"

	"github.com/jinzhu/copier"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"studentId"`
	RoomID      uuid.UUID `json:"roomId"`
	RoomNumber  string    `json:"roomNumber"`
	ResidenceID uuid.UUID `json:"residenceId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amountCents"`
	PaymentID   *string   `json:"paymentId,omitempty"`
	StatusNote  *string   `json:"statusNote,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"roomId"`
	RoomNumber  string    `json:"roomNumber"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amountCents"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationListResponse {
	items := make([]*ReservationListResponse, 0, len(views))
	for _, view := range views {
		var item ReservationListResponse
		_ = copier.Copy(&item, view)
		items = append(items, &item)
	}
	return items
}
