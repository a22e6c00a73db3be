package reservation

// Status is the reservation lifecycle state. Transitions are owned by the
// ledger; nothing else may move a reservation between states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// legalTransitions is the full transition table. Rejected, Cancelled and
// Completed are terminal.
var legalTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusActive, StatusRejected, StatusCancelled},
	StatusApproved: {StatusActive, StatusRejected, StatusCancelled},
	StatusActive:   {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(legalTransitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range legalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// HoldsBed reports whether a reservation in this status accounts for one
// occupied bed in the room inventory.
func (s Status) HoldsBed() bool {
	switch s {
	case StatusPending, StatusApproved, StatusActive:
		return true
	default:
		return false
	}
}
