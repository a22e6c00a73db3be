package shared

import (
	"dormstay/internal/domain/student"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller for authorization decisions.
type Actor struct {
	ID   uuid.UUID
	Role student.Role
}

// CanActOn reports whether the actor may operate on a reservation owned by
// the given student.
func (a Actor) CanActOn(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.Role.CanManageReservations()
}
