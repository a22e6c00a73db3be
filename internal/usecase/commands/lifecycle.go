package commands

import (
	"context"
	"log/slog"
	"time"

	"dormstay/internal/domain/reservation"
	"dormstay/internal/infra"
	"dormstay/internal/pkg/clock"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/shared"

	"github.com/google/uuid"
)

const sweepRejectReason = "payment not confirmed in time"

type LifecycleCommands interface {
	Approve(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
	// SweepStalePending force-rejects Pending reservations older than the
	// configured TTL and releases their holds. Safety net against
	// crash-during-payment; returns the number of reservations swept.
	SweepStalePending(ctx context.Context) (int, error)
}

type lifecycleUseCaseImpl struct {
	inventory  RoomInventory
	ledger     ReservationLedger
	events     EventPublisher
	clock      clock.Clock
	pendingTTL time.Duration
}

func NewLifecycleUseCase(
	inventory RoomInventory,
	ledger ReservationLedger,
	events EventPublisher,
	clock clock.Clock,
	pendingTTL time.Duration,
) LifecycleCommands {
	return &lifecycleUseCaseImpl{
		inventory:  inventory,
		ledger:     ledger,
		events:     events,
		clock:      clock,
		pendingTTL: pendingTTL,
	}
}

func (uc *lifecycleUseCaseImpl) Approve(ctx context.Context, id uuid.UUID) error {
	if err := uc.ledger.Approve(ctx, id); err != nil {
		return mapLedgerErr(err)
	}
	return nil
}

// Cancel releases the reservation's bed after a successful transition: every
// cancellable status (Pending, Approved, Active) accounts for one held bed.
func (uc *lifecycleUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	res, err := uc.ledger.FindByID(ctx, id)
	if err != nil {
		return mapLedgerErr(err)
	}
	if !actor.CanActOn(res.StudentID()) {
		return errs.ErrReservationNotOwned
	}

	if err := uc.ledger.Cancel(ctx, id); err != nil {
		return mapLedgerErr(err)
	}

	uc.releaseHold(ctx, res.RoomID())
	uc.publishFor(ctx, EventReservationCancelled, res)
	return nil
}

func (uc *lifecycleUseCaseImpl) Complete(ctx context.Context, id uuid.UUID) error {
	res, err := uc.ledger.FindByID(ctx, id)
	if err != nil {
		return mapLedgerErr(err)
	}

	if err := uc.ledger.Complete(ctx, id); err != nil {
		return mapLedgerErr(err)
	}

	uc.releaseHold(ctx, res.RoomID())
	uc.publishFor(ctx, EventReservationCompleted, res)
	return nil
}

func (uc *lifecycleUseCaseImpl) SweepStalePending(ctx context.Context) (int, error) {
	cutoff := uc.clock.Now().Add(-uc.pendingTTL)

	stale, err := uc.ledger.FindStalePending(ctx, cutoff)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	swept := 0
	for _, res := range stale {
		if err := uc.ledger.Reject(ctx, res.ID(), sweepRejectReason); err != nil {
			// Another worker may have transitioned it in the meantime;
			// skip without releasing.
			slog.Warn("sweep could not reject stale reservation", "reservation_id", res.ID(), "error", err)
			continue
		}
		uc.releaseHold(ctx, res.RoomID())
		uc.publishFor(ctx, EventReservationExpired, res)
		swept++
	}

	if swept > 0 {
		slog.Info("swept stale pending reservations", "count", swept, "cutoff", cutoff)
	}
	return swept, nil
}

func (uc *lifecycleUseCaseImpl) releaseHold(ctx context.Context, roomID uuid.UUID) {
	if err := uc.inventory.Release(ctx, roomID, bedsPerBooking); err != nil {
		slog.Error("failed to release inventory hold", "room_id", roomID, "error", err)
	}
}

func (uc *lifecycleUseCaseImpl) publishFor(ctx context.Context, kind string, res *reservation.Reservation) {
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

func mapLedgerErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrInvalidTransition)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
