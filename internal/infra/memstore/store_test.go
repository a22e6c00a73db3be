//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dormstay/internal/domain/reservation"
	"dormstay/internal/domain/room"
	"dormstay/internal/infra"
	"dormstay/internal/infra/memstore"
	"dormstay/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRoom(t *testing.T, store *memstore.Store, beds int) *room.Room {
	t.Helper()
	rm, err := room.NewRoom(uuid.New(), uuid.New(), "101", beds)
	require.NoError(t, err)
	store.AddRoom(rm)
	return rm
}

func pendingReservation(t *testing.T, roomID, residenceID uuid.UUID) *reservation.Reservation {
	t.Helper()
	stay, err := reservation.NewStayPeriod(
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	res, err := reservation.NewPending(uuid.New(), roomID, residenceID, stay, reservation.NewMoney(200000), time.Now())
	require.NoError(t, err)
	return res
}

func TestRoomStoreTryHold(t *testing.T) {
	ctx := context.Background()

	t.Run("holds stop at capacity", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 2)
		rooms := store.Rooms()

		for i := 0; i < 2; i++ {
			ok, err := rooms.TryHold(ctx, rm.ID(), 1)
			require.NoError(t, err)
			require.True(t, ok)
		}

		ok, err := rooms.TryHold(ctx, rm.ID(), 1)
		require.NoError(t, err)
		assert.False(t, ok)

		avail, err := rooms.Available(ctx, rm.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, avail)
	})

	t.Run("unknown room reports no hold", func(t *testing.T) {
		store := memstore.New()
		ok, err := store.Rooms().TryHold(ctx, uuid.New(), 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("concurrent holds never oversell", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 5)
		rooms := store.Rooms()

		const attempts = 50
		var wg sync.WaitGroup
		granted := make(chan struct{}, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := rooms.TryHold(ctx, rm.ID(), 1)
				assert.NoError(t, err)
				if ok {
					granted <- struct{}{}
				}
			}()
		}
		wg.Wait()
		close(granted)

		assert.Len(t, granted, 5)
		avail, err := rooms.Available(ctx, rm.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, avail)
	})
}

func TestRoomStoreRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("release restores availability", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 1)
		rooms := store.Rooms()

		ok, err := rooms.TryHold(ctx, rm.ID(), 1)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, rooms.Release(ctx, rm.ID(), 1))

		ok, err = rooms.TryHold(ctx, rm.ID(), 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unbalanced release is corruption", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 3)

		err := store.Rooms().Release(ctx, rm.ID(), 1)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCorruption))
		assert.ErrorIs(t, err, errs.ErrInventoryCorrupted)
	})
}

func TestLedgerStoreCreatePending(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an overlapping booking for the same student and residence", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 4)
		ledger := store.Ledger()

		first := pendingReservation(t, rm.ID(), rm.ResidenceID())
		require.NoError(t, ledger.CreatePending(ctx, first))

		stay, err := reservation.NewStayPeriod(
			time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		second, err := reservation.NewPending(first.StudentID(), rm.ID(), rm.ResidenceID(), stay, reservation.NewMoney(35000), time.Now())
		require.NoError(t, err)

		err = ledger.CreatePending(ctx, second)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("concurrent overlapping requests admit exactly one", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 8)
		ledger := store.Ledger()

		first := pendingReservation(t, rm.ID(), rm.ResidenceID())
		studentID := first.StudentID()

		const attempts = 16
		results := make(chan error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := reservation.NewPending(studentID, rm.ID(), rm.ResidenceID(), first.Stay(), first.Amount(), time.Now())
				require.NoError(t, err)
				results <- ledger.CreatePending(ctx, res)
			}()
		}
		wg.Wait()
		close(results)

		created := 0
		for err := range results {
			if err == nil {
				created++
				continue
			}
			assert.True(t, infra.IsKind(err, infra.KindConflict))
		}
		assert.Equal(t, 1, created)
	})

	t.Run("released bookings do not block a rebooking", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 4)
		ledger := store.Ledger()

		first := pendingReservation(t, rm.ID(), rm.ResidenceID())
		require.NoError(t, ledger.CreatePending(ctx, first))
		require.NoError(t, ledger.Cancel(ctx, first.ID()))

		second, err := reservation.NewPending(first.StudentID(), rm.ID(), rm.ResidenceID(), first.Stay(), first.Amount(), time.Now())
		require.NoError(t, err)
		assert.NoError(t, ledger.CreatePending(ctx, second))
	})

	t.Run("stored copy is isolated from caller mutation", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 4)
		ledger := store.Ledger()

		res := pendingReservation(t, rm.ID(), rm.ResidenceID())
		require.NoError(t, ledger.CreatePending(ctx, res))

		// Mutating the caller's copy must not affect the ledger.
		require.NoError(t, res.Activate("pay_local"))

		stored, err := ledger.FindByID(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, stored.Status())
	})
}

func TestLedgerStoreTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("activate then complete", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 4)
		ledger := store.Ledger()

		res := pendingReservation(t, rm.ID(), rm.ResidenceID())
		require.NoError(t, ledger.CreatePending(ctx, res))

		require.NoError(t, ledger.Activate(ctx, res.ID(), "pay_1"))
		require.NoError(t, ledger.Complete(ctx, res.ID()))

		stored, err := ledger.FindByID(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCompleted, stored.Status())
	})

	t.Run("illegal transition maps to conflict", func(t *testing.T) {
		store := memstore.New()
		rm := seedRoom(t, store, 4)
		ledger := store.Ledger()

		res := pendingReservation(t, rm.ID(), rm.ResidenceID())
		require.NoError(t, ledger.CreatePending(ctx, res))
		require.NoError(t, ledger.Cancel(ctx, res.ID()))

		err := ledger.Activate(ctx, res.ID(), "pay_1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		store := memstore.New()
		err := store.Ledger().Approve(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestLedgerStoreFindStalePending(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	rm := seedRoom(t, store, 4)
	ledger := store.Ledger()

	stale := pendingReservation(t, rm.ID(), rm.ResidenceID())
	require.NoError(t, ledger.CreatePending(ctx, stale))

	found, err := ledger.FindStalePending(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, stale.ID(), found[0].ID())

	none, err := ledger.FindStalePending(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVacancySearch(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	residenceID := uuid.New()

	roomA, err := room.NewRoom(uuid.New(), residenceID, "101", 1)
	require.NoError(t, err)
	roomB, err := room.NewRoom(uuid.New(), residenceID, "102", 2)
	require.NoError(t, err)
	store.AddRoom(roomA)
	store.AddRoom(roomB)

	stay, err := reservation.NewStayPeriod(
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	t.Run("lists free rooms sorted by number", func(t *testing.T) {
		rooms, err := store.Rooms().FindVacantRooms(ctx, residenceID, stay)
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, "101", rooms[0].RoomNumber)
		assert.Equal(t, "102", rooms[1].RoomNumber)
	})

	t.Run("room with an overlapping reservation is excluded", func(t *testing.T) {
		res := pendingReservation(t, roomA.ID(), residenceID)
		require.NoError(t, store.Ledger().CreatePending(ctx, res))

		rooms, err := store.Rooms().FindVacantRooms(ctx, residenceID, stay)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, roomB.ID(), rooms[0].RoomID)
	})

	t.Run("other residences are not listed", func(t *testing.T) {
		rooms, err := store.Rooms().FindVacantRooms(ctx, uuid.New(), stay)
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})
}
