package commands

import (
	"context"
	"log/slog"
	"time"

	"dormstay/internal/domain/reservation"
	"dormstay/internal/infra"
	"dormstay/internal/pkg/clock"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/queries"

	"github.com/google/uuid"
)

// A booking holds exactly one bed. The inventory API keeps a count parameter
// for block bookings the admin side performs.
const bedsPerBooking = 1

type ReserveRoomParams struct {
	StudentID   uuid.UUID
	RoomID      uuid.UUID
	ResidenceID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	// AmountCents overrides the pricing quote when the fee was agreed
	// upfront (e.g. a fee-schedule entry resolved by the caller).
	AmountCents *int64
}

type BookingCommands interface {
	ReserveRoom(ctx context.Context, p ReserveRoomParams) (*queries.ReservationView, error)
}

type bookingUseCaseImpl struct {
	inventory RoomInventory
	rooms     RoomReader
	ledger    ReservationLedger
	payment   PaymentGateway
	pricing   PricingService
	events    EventPublisher
	clock     clock.Clock
}

func NewBookingUseCase(
	inventory RoomInventory,
	rooms RoomReader,
	ledger ReservationLedger,
	payment PaymentGateway,
	pricing PricingService,
	events EventPublisher,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		inventory: inventory,
		rooms:     rooms,
		ledger:    ledger,
		payment:   payment,
		pricing:   pricing,
		events:    events,
		clock:     clock,
	}
}

// ReserveRoom drives the booking state machine:
// Start -> HoldAcquired -> Persisted(Pending) -> Activated | RolledBack.
// RolledBack always releases the inventory hold exactly once; the hold never
// outlives a reservation that did not reach Active.
func (uc *bookingUseCaseImpl) ReserveRoom(ctx context.Context, p ReserveRoomParams) (*queries.ReservationView, error) {
	stay, err := reservation.NewStayPeriod(p.StartDate, p.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	room, err := uc.rooms.FindByID(ctx, p.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if room.ResidenceID != p.ResidenceID {
		return nil, errs.ErrResidenceMismatch
	}
	if !room.Active {
		return nil, errs.ErrRoomInactive
	}

	held, err := uc.inventory.TryHold(ctx, p.RoomID, bedsPerBooking)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !held {
		return nil, errs.ErrRoomUnavailable
	}

	res, err := uc.createPending(ctx, p, stay)
	if err != nil {
		// No pending row exists yet, so no other actor can be rolling this
		// booking back; the hold is still ours to release.
		uc.releaseHold(ctx, p.RoomID)
		return nil, err
	}

	view, err := uc.confirmPending(ctx, res, room)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) createPending(
	ctx context.Context,
	p ReserveRoomParams,
	stay reservation.StayPeriod,
) (*reservation.Reservation, error) {
	amountCents, err := uc.resolveAmount(ctx, p, stay)
	if err != nil {
		return nil, err
	}

	res, err := reservation.NewPending(p.StudentID, p.RoomID, p.ResidenceID, stay, reservation.NewMoney(amountCents), uc.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "building reservation")
	}

	if err := uc.ledger.CreatePending(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrDuplicateActiveBooking)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

// confirmPending charges the student and activates the persisted row. On
// failure it rolls the pending reservation back itself; the caller must not
// release the hold again.
func (uc *bookingUseCaseImpl) confirmPending(
	ctx context.Context,
	res *reservation.Reservation,
	room *RoomSnapshot,
) (*queries.ReservationView, error) {
	// External call: slow, may time out. No lock is held here; the bed is
	// provisionally accounted for by the hold alone.
	result, err := uc.payment.Charge(ctx, ChargeRequest{
		StudentID:   res.StudentID(),
		AmountCents: res.Amount().Cents(),
		Reference:   res.ID().String(),
	})
	if err != nil {
		uc.rollbackPending(ctx, res, "payment gateway unreachable")
		return nil, errs.Mark(err, errs.ErrPaymentFailed)
	}
	if !result.Approved {
		uc.rollbackPending(ctx, res, result.DeclineReason)
		return nil, errs.Mark(errs.Newf("payment declined: %s", result.DeclineReason), errs.ErrPaymentFailed)
	}

	// Validate the transition on the entity before touching the ledger so a
	// malformed gateway response (e.g. empty payment id) rolls back cleanly.
	if err := res.Activate(result.PaymentID); err != nil {
		uc.rollbackPending(ctx, res, "malformed payment confirmation")
		return nil, errs.Mark(err, errs.ErrPaymentFailed)
	}

	if err := uc.ledger.Activate(ctx, res.ID(), result.PaymentID); err != nil {
		// The charge went through but the ledger refused the transition;
		// roll back so the bed is not leaked. Reconciliation against the
		// gateway is the sweep's problem.
		slog.Error("activation failed after successful charge",
			"reservation_id", res.ID(), "payment_id", result.PaymentID, "error", err)
		uc.rollbackPending(ctx, res, "activation failed after charge")
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.publish(ctx, EventReservationActivated, res)
	return viewFrom(res, room), nil
}

func (uc *bookingUseCaseImpl) resolveAmount(ctx context.Context, p ReserveRoomParams, stay reservation.StayPeriod) (int64, error) {
	if p.AmountCents != nil {
		if *p.AmountCents < 0 {
			return 0, errs.Mark(errs.New("negative amount"), errs.ErrInvalidDateRange)
		}
		return *p.AmountCents, nil
	}

	amount, err := uc.pricing.Quote(ctx, QuoteContext{
		RoomID:      p.RoomID,
		ResidenceID: p.ResidenceID,
		StudentID:   p.StudentID,
		Nights:      stay.Nights(),
	})
	if err != nil {
		return 0, errs.Wrap(err, "pricing quote failed")
	}
	return amount, nil
}

// rollbackPending rejects the pending row and releases its hold. The release
// belongs to whichever actor moves the row out of Pending: if the reject
// fails because the stale-pending sweep (or a cancel) got there first, that
// actor already released the bed and releasing here would double-free it.
func (uc *bookingUseCaseImpl) rollbackPending(ctx context.Context, res *reservation.Reservation, reason string) {
	err := uc.ledger.Reject(ctx, res.ID(), reason)
	switch {
	case err == nil:
		uc.releaseHold(ctx, res.RoomID())
		uc.publish(ctx, EventReservationRejected, res)
	case infra.IsKind(err, infra.KindNotFound):
		// Row is gone entirely; nobody else accounted for the hold.
		uc.releaseHold(ctx, res.RoomID())
	default:
		slog.Warn("reservation already transitioned during rollback, leaving hold to its owner",
			"reservation_id", res.ID(), "reason", reason, "error", err)
	}
}

func (uc *bookingUseCaseImpl) releaseHold(ctx context.Context, roomID uuid.UUID) {
	if err := uc.inventory.Release(ctx, roomID, bedsPerBooking); err != nil {
		// An unmatched release is corruption, not a rejected request.
		slog.Error("failed to release inventory hold", "room_id", roomID, "error", err)
	}
}

func (uc *bookingUseCaseImpl) publish(ctx context.Context, kind string, res *reservation.Reservation) {
	event := BookingEvent{
		Kind:          kind,
		ReservationID: res.ID(),
		RoomID:        res.RoomID(),
		StudentID:     res.StudentID(),
		OccurredAt:    uc.clock.Now(),
	}
	if err := uc.events.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish booking event", "kind", kind, "reservation_id", res.ID(), "error", err)
	}
}

func viewFrom(res *reservation.Reservation, room *RoomSnapshot) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          res.ID(),
		StudentID:   res.StudentID(),
		RoomID:      res.RoomID(),
		RoomNumber:  room.Number,
		ResidenceID: res.ResidenceID(),
		StartDate:   res.Stay().Start(),
		EndDate:     res.Stay().End(),
		Status:      res.Status().String(),
		AmountCents: res.Amount().Cents(),
		PaymentID:   res.PaymentID(),
		StatusNote:  res.StatusNote(),
		CreatedAt:   res.CreatedAt(),
		UpdatedAt:   res.UpdatedAt(),
	}
}
