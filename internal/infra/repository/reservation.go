package repository

import (
	"context"
	"errors"
	"time"

	"dormstay/internal/domain/reservation"
	"dormstay/internal/infra"
	"dormstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository is the ledger's persistence. Every status transition
// is a guarded UPDATE on the expected source status, so an illegal transition
// shows up as zero affected rows rather than a lost update.
type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CreatePending inserts a new pending reservation unless the student already
// holds a bed-holding reservation overlapping the range in the same
// residence. Under read committed, two concurrent inserts from the same
// student could each pass a NOT EXISTS check before the other commits, so the
// check runs behind a per-student-per-residence advisory lock that is held
// until the transaction ends.
func (r *ReservationRepository) CreatePending(ctx context.Context, res *reservation.Reservation) error {
	const lockQ = `SELECT pg_advisory_xact_lock(hashtext($1::text), hashtext($2::text))`
	const q = `
		INSERT INTO reservations
			(id, student_id, room_id, residence_id, start_date, end_date, amount_cents, status, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, 'pending', $8, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations d
			WHERE d.student_id = $2
			  AND d.residence_id = $4
			  AND d.status IN ('pending', 'approved', 'active')
			  AND d.start_date < $6
			  AND $5 < d.end_date
		)`

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, lockQ, res.StudentID(), res.ResidenceID()); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to acquire booking lock", err)
	}

	tag, err := tx.Exec(ctx, q,
		res.ID(), res.StudentID(), res.RoomID(), res.ResidenceID(),
		res.Stay().Start(), res.Stay().End(), res.Amount().Cents(), res.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "student already has an overlapping booking in this residence")
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to commit reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Activate(ctx context.Context, id uuid.UUID, paymentID string) error {
	const q = `
		UPDATE reservations
		SET status = 'active', payment_id = $2, updated_at = now()
		WHERE id = $1 AND status IN ('pending', 'approved')`

	return r.transition(ctx, id, q, paymentID)
}

func (r *ReservationRepository) Approve(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE reservations
		SET status = 'approved', updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	return r.transition(ctx, id, q)
}

func (r *ReservationRepository) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	const q = `
		UPDATE reservations
		SET status = 'rejected', status_note = NULLIF($2, ''), updated_at = now()
		WHERE id = $1 AND status IN ('pending', 'approved')`

	return r.transition(ctx, id, q, reason)
}

func (r *ReservationRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE reservations
		SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status IN ('pending', 'approved', 'active')`

	return r.transition(ctx, id, q)
}

func (r *ReservationRepository) Complete(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE reservations
		SET status = 'completed', updated_at = now()
		WHERE id = $1 AND status = 'active'`

	return r.transition(ctx, id, q)
}

func (r *ReservationRepository) transition(ctx context.Context, id uuid.UUID, query string, extraArgs ...any) error {
	args := append([]any{id}, extraArgs...)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update reservation status", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Zero rows: either the row is missing or it sits in a status the
	// guard refuses. Disambiguate for the caller.
	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reservations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to check reservation existence", err)
	}
	if !exists {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return infra.NewRepoErr(infra.KindConflict, "reservation status does not permit this transition")
}

const reservationColumns = `
	id, student_id, room_id, residence_id, start_date, end_date,
	amount_cents, status, payment_id, status_note, created_at, updated_at`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindStalePending(ctx context.Context, createdBefore time.Time) ([]*reservation.Reservation, error) {
	q := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, createdBefore)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query stale reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate reservations", err)
	}
	return result, nil
}

func (r *ReservationRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const q = `
		SELECT v.id, v.student_id, v.room_id, r.room_number, v.residence_id,
		       v.start_date, v.end_date, v.status, v.amount_cents,
		       v.payment_id, v.status_note, v.created_at, v.updated_at
		FROM reservations v
		JOIN rooms r ON r.id = v.room_id
		WHERE v.id = $1`

	view, err := scanReservationView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation view", err)
	}
	return view, nil
}

func (r *ReservationRepository) FindViewsByStudent(ctx context.Context, studentID uuid.UUID) ([]*queries.ReservationView, error) {
	const q = `
		SELECT v.id, v.student_id, v.room_id, r.room_number, v.residence_id,
		       v.start_date, v.end_date, v.status, v.amount_cents,
		       v.payment_id, v.status_note, v.created_at, v.updated_at
		FROM reservations v
		JOIN rooms r ON r.id = v.room_id
		WHERE v.student_id = $1
		ORDER BY v.created_at DESC`

	rows, err := r.db.Query(ctx, q, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate reservation views", err)
	}
	return result, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, studentID, roomID, residenceID uuid.UUID
		startDate, endDate                 time.Time
		amountCents                        int64
		status                             string
		paymentID, statusNote              *string
		createdAt, updatedAt               time.Time
	)
	err := row.Scan(&id, &studentID, &roomID, &residenceID, &startDate, &endDate,
		&amountCents, &status, &paymentID, &statusNote, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return reservation.Reconstruct(
		id, studentID, roomID, residenceID,
		stay, reservation.NewMoney(amountCents), reservation.Status(status),
		paymentID, statusNote, createdAt, updatedAt,
	), nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(&view.ID, &view.StudentID, &view.RoomID, &view.RoomNumber, &view.ResidenceID,
		&view.StartDate, &view.EndDate, &view.Status, &view.AmountCents,
		&view.PaymentID, &view.StatusNote, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
