package student

// Role is carried in the access token issued by the platform's identity
// service. This service only verifies tokens; it never issues them.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageReservations reports whether the role may act on reservations it
// does not own (approve, complete, inspect).
func (r Role) CanManageReservations() bool {
	return r == RoleStaff || r == RoleAdmin
}
