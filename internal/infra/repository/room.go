package repository

import (
	"context"
	"errors"

	"dormstay/internal/domain/reservation"
	"dormstay/internal/infra"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/commands"
	"dormstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoomRepository implements the room inventory and the vacancy read path on
// postgres. The hold is a single conditional UPDATE, so the check and the
// increment are one atomic statement: two workers racing for the last bed
// cannot both match the WHERE clause.
type RoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) FindByID(ctx context.Context, roomID uuid.UUID) (*commands.RoomSnapshot, error) {
	const q = `
		SELECT id, residence_id, room_number, total_beds, occupied_beds, active
		FROM rooms
		WHERE id = $1`

	var snap commands.RoomSnapshot
	err := r.db.QueryRow(ctx, q, roomID).Scan(
		&snap.ID, &snap.ResidenceID, &snap.Number, &snap.TotalBeds, &snap.OccupiedBeds, &snap.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find room", err)
	}
	return &snap, nil
}

// TryHold atomically checks capacity and increments the occupied count.
// A false return means the room is full (or inactive or unknown); the row is
// untouched in that case.
func (r *RoomRepository) TryHold(ctx context.Context, roomID uuid.UUID, count int) (bool, error) {
	const q = `
		UPDATE rooms
		SET occupied_beds = occupied_beds + $2, updated_at = now()
		WHERE id = $1 AND active AND occupied_beds + $2 <= total_beds`

	tag, err := r.db.Exec(ctx, q, roomID, count)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to hold beds", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Release decrements the occupied count. A release that would go below zero
// has no matching hold; that is corruption, not a rejected request.
func (r *RoomRepository) Release(ctx context.Context, roomID uuid.UUID, count int) error {
	const q = `
		UPDATE rooms
		SET occupied_beds = occupied_beds - $2, updated_at = now()
		WHERE id = $1 AND occupied_beds >= $2`

	tag, err := r.db.Exec(ctx, q, roomID, count)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to release beds", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindCorruption, "release without matching hold", errs.ErrInventoryCorrupted)
	}
	return nil
}

// Available is advisory only: the value may be stale relative to a
// concurrent hold by the time the caller acts on it.
func (r *RoomRepository) Available(ctx context.Context, roomID uuid.UUID) (int, error) {
	const q = `SELECT total_beds - occupied_beds FROM rooms WHERE id = $1`

	var free int
	err := r.db.QueryRow(ctx, q, roomID).Scan(&free)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.NewRepoErr(infra.KindNotFound, "room not found")
		}
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to read availability", err)
	}
	return free, nil
}

// FindVacantRooms lists rooms with free beds and no bed-holding reservation
// overlapping the half-open stay range. Plain read, no row locks.
func (r *RoomRepository) FindVacantRooms(ctx context.Context, residenceID uuid.UUID, stay reservation.StayPeriod) ([]*queries.RoomAvailability, error) {
	const q = `
		SELECT r.id, r.residence_id, r.room_number, r.total_beds, r.total_beds - r.occupied_beds
		FROM rooms r
		WHERE r.residence_id = $1
		  AND r.active
		  AND r.occupied_beds < r.total_beds
		  AND NOT EXISTS (
			SELECT 1 FROM reservations v
			WHERE v.room_id = r.id
			  AND v.status IN ('pending', 'approved', 'active')
			  AND v.start_date < $3
			  AND $2 < v.end_date
		  )
		ORDER BY r.room_number`

	rows, err := r.db.Query(ctx, q, residenceID, stay.Start(), stay.End())
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query vacant rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomAvailability
	for rows.Next() {
		var ra queries.RoomAvailability
		if err := rows.Scan(&ra.RoomID, &ra.ResidenceID, &ra.RoomNumber, &ra.TotalBeds, &ra.FreeBeds); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan vacant room", err)
		}
		result = append(result, &ra)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate vacant rooms", err)
	}
	return result, nil
}
