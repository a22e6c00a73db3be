//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dormstay/internal/infra/memstore"
	"dormstay/internal/pkg/clock"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/commands"
	"dormstay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type approveAllGateway struct{}

func (approveAllGateway) Charge(_ context.Context, req commands.ChargeRequest) (*commands.ChargeResult, error) {
	return &commands.ChargeResult{Approved: true, PaymentID: "pay_" + req.Reference}, nil
}

type flatRatePricing struct{ perNight int64 }

func (p flatRatePricing) Quote(_ context.Context, q commands.QuoteContext) (int64, error) {
	return p.perNight * int64(q.Nights), nil
}

type dropEvents struct{}

func (dropEvents) Publish(context.Context, commands.BookingEvent) error { return nil }

// Many students racing for the last bed of a room must end up with exactly
// one Active reservation; everyone else sees a rejection, never a stuck hold.
func TestReserveRoom_LastBedContention(t *testing.T) {
	const contenders = 24

	store := memstore.New()
	rb := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.TotalBeds = 1
	})
	store.AddRoom(rb.BuildDomain())

	uc := commands.NewBookingUseCase(
		store.Rooms(),
		store.Rooms(),
		store.Ledger(),
		approveAllGateway{},
		flatRatePricing{perNight: 2500},
		dropEvents{},
		clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)),
	)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := uc.ReserveRoom(context.Background(), commands.ReserveRoomParams{
				StudentID:   uuid.New(),
				RoomID:      rb.ID,
				ResidenceID: rb.ResidenceID,
				StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
			})
			if err != nil {
				assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
				return
			}
			assert.Equal(t, "active", view.Status)
			mu.Lock()
			winners++
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, winners)

	// The loser rollbacks must have balanced their releases; the single
	// active reservation accounts for the one remaining hold.
	available, err := store.Rooms().Available(context.Background(), rb.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, available)
}

// A student who already holds a live reservation overlapping the stay gets
// refused at persist time and the bed hold is rolled back.
func TestReserveRoom_DuplicateStayRollsBackHold(t *testing.T) {
	store := memstore.New()
	rb := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.TotalBeds = 4
	})
	store.AddRoom(rb.BuildDomain())

	uc := commands.NewBookingUseCase(
		store.Rooms(),
		store.Rooms(),
		store.Ledger(),
		approveAllGateway{},
		flatRatePricing{perNight: 2500},
		dropEvents{},
		clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)),
	)

	studentID := uuid.New()
	params := commands.ReserveRoomParams{
		StudentID:   studentID,
		RoomID:      rb.ID,
		ResidenceID: rb.ResidenceID,
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
	}

	_, err := uc.ReserveRoom(context.Background(), params)
	require.NoError(t, err)

	_, err = uc.ReserveRoom(context.Background(), params)
	require.ErrorIs(t, err, errs.ErrDuplicateActiveBooking)

	available, err := store.Rooms().Available(context.Background(), rb.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, available)
}
