package components

import (
	"log/slog"

	"dormstay/internal/domain/room"
	"dormstay/internal/infra/memstore"
	repo_impl "dormstay/internal/infra/repository"
	"dormstay/internal/pkg/config"
	"dormstay/internal/usecase/commands"
	"dormstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewStores,
	),
)

// NewStores binds the five persistence ports to either the postgres
// repositories or a single shared in-memory store, per STORE_DRIVER. The
// memory profile backs all ports with one store so invariants hold across
// them.
func NewStores(cfg config.Config, pool *pgxpool.Pool) (
	commands.RoomInventory,
	commands.RoomReader,
	commands.ReservationLedger,
	queries.ReservationReadStore,
	queries.VacancyReadStore,
) {
	if cfg.Store.Driver == "memory" {
		store := memstore.New()
		seedDemoRooms(store)
		rooms := store.Rooms()
		ledger := store.Ledger()
		return rooms, rooms, ledger, ledger, rooms
	}

	roomRepo := repo_impl.NewRoomRepository(pool)
	resRepo := repo_impl.NewReservationRepository(pool)
	return roomRepo, roomRepo, resRepo, resRepo, roomRepo
}

// seedDemoRooms gives the memory profile something to book against. The IDs
// are logged so local clients can use them directly.
func seedDemoRooms(store *memstore.Store) {
	residenceID := uuid.New()
	for _, spec := range []struct {
		number string
		beds   int
	}{
		{"101", 2},
		{"102", 4},
		{"201", 1},
	} {
		rm, err := room.NewRoom(uuid.New(), residenceID, spec.number, spec.beds)
		if err != nil {
			slog.Error("failed to seed demo room", "room", spec.number, "error", err)
			continue
		}
		store.AddRoom(rm)
		slog.Info("seeded demo room", "residence_id", residenceID, "room_id", rm.ID(), "number", spec.number, "beds", spec.beds)
	}
}
