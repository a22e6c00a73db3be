package room

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNoFreeBeds       = errors.New("no free beds")
	ErrInvalidBedCount  = errors.New("bed count must be positive")
	ErrOccupancyCorrupt = errors.New("occupancy exceeds capacity")
)

// Room tracks bed capacity for one room of a residence. The occupied count
// is mutated only through Hold and Release, in lockstep with a ledger
// transition that takes or frees a bed.
type Room struct {
	id           uuid.UUID
	residenceID  uuid.UUID
	number       string
	totalBeds    int
	occupiedBeds int
	active       bool
}

func NewRoom(id, residenceID uuid.UUID, number string, totalBeds int) (*Room, error) {
	if totalBeds <= 0 {
		return nil, ErrInvalidBedCount
	}
	return &Room{
		id:          id,
		residenceID: residenceID,
		number:      number,
		totalBeds:   totalBeds,
		active:      true,
	}, nil
}

func Reconstruct(id, residenceID uuid.UUID, number string, totalBeds, occupiedBeds int, active bool) (*Room, error) {
	if occupiedBeds < 0 || occupiedBeds > totalBeds {
		return nil, fmt.Errorf("%w: room %s has %d/%d beds occupied", ErrOccupancyCorrupt, id, occupiedBeds, totalBeds)
	}
	return &Room{
		id:           id,
		residenceID:  residenceID,
		number:       number,
		totalBeds:    totalBeds,
		occupiedBeds: occupiedBeds,
		active:       active,
	}, nil
}

// Hold takes count beds if they fit within capacity. It reports false,
// without mutation, when they do not.
func (r *Room) Hold(count int) (bool, error) {
	if count <= 0 {
		return false, ErrInvalidBedCount
	}
	if !r.active || r.occupiedBeds+count > r.totalBeds {
		return false, nil
	}
	r.occupiedBeds += count
	return true, nil
}

// Release frees count beds. Releasing more beds than are occupied means the
// hold/release pairing was broken somewhere, which is corruption rather than
// a rejected request.
func (r *Room) Release(count int) error {
	if count <= 0 {
		return ErrInvalidBedCount
	}
	if count > r.occupiedBeds {
		occupied := r.occupiedBeds
		r.occupiedBeds = 0
		return fmt.Errorf("%w: release of %d beds with %d occupied", ErrOccupancyCorrupt, count, occupied)
	}
	r.occupiedBeds -= count
	return nil
}

func (r *Room) Available() int {
	return r.totalBeds - r.occupiedBeds
}

func (r *Room) HasFreeBeds() bool {
	return r.active && r.occupiedBeds < r.totalBeds
}

func (r *Room) ID() uuid.UUID          { return r.id }
func (r *Room) ResidenceID() uuid.UUID { return r.residenceID }
func (r *Room) Number() string         { return r.number }
func (r *Room) TotalBeds() int         { return r.totalBeds }
func (r *Room) OccupiedBeds() int      { return r.occupiedBeds }
func (r *Room) IsActive() bool         { return r.active }
