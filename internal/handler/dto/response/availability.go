package response

import (
	"dormstay/internal/usecase/queries"

	"github.com/jinzhu/copier"

	"github.com/google/uuid"
)

type RoomAvailabilityResponse struct {
	RoomID      uuid.UUID `json:"roomId"`
	ResidenceID uuid.UUID `json:"residenceId"`
	RoomNumber  string    `json:"roomNumber"`
	TotalBeds   int       `json:"totalBeds"`
	FreeBeds    int       `json:"freeBeds"`
}

func FromRoomAvailabilities(rooms []*queries.RoomAvailability) []*RoomAvailabilityResponse {
	items := make([]*RoomAvailabilityResponse, 0, len(rooms))
	for _, rm := range rooms {
		var item RoomAvailabilityResponse
		_ = copier.Copy(&item, rm)
		items = append(items, &item)
	}
	return items
}
