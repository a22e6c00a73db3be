//go:build unit

package builder

import (
	"dormstay/internal/domain/room"
	"dormstay/internal/usecase/commands"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID           uuid.UUID
	ResidenceID  uuid.UUID
	Number       string
	TotalBeds    int
	OccupiedBeds int
	Active       bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          uuid.New(),
		ResidenceID: uuid.New(),
		Number:      "204",
		TotalBeds:   4,
		Active:      true,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *room.Room {
	rm, err := room.Reconstruct(b.ID, b.ResidenceID, b.Number, b.TotalBeds, b.OccupiedBeds, b.Active)
	if err != nil {
		panic("builder produced a corrupt room: " + err.Error())
	}
	return rm
}

func (b *RoomBuilder) BuildSnapshot() *commands.RoomSnapshot {
	return &commands.RoomSnapshot{
		ID:           b.ID,
		ResidenceID:  b.ResidenceID,
		Number:       b.Number,
		TotalBeds:    b.TotalBeds,
		OccupiedBeds: b.OccupiedBeds,
		Active:       b.Active,
	}
}
