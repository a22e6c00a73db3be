package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrRoomUnavailable        = errors.New("room unavailable")
	ErrDuplicateActiveBooking = errors.New("duplicate active booking")
	ErrPaymentFailed          = errors.New("payment failed")

	// Ledger errors
	ErrInvalidTransition   = errors.New("invalid reservation transition")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationNotOwned = errors.New("reservation not owned by caller")

	// Inventory errors
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomInactive      = errors.New("room inactive")
	ErrResidenceMismatch = errors.New("room does not belong to residence")

	// ErrInventoryCorrupted marks a programming-invariant violation
	// (occupied over total, or a release without a matching hold). It is
	// never returned for a merely rejected request and callers must treat
	// it as unrecoverable.
	ErrInventoryCorrupted = errors.New("room inventory corrupted")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
