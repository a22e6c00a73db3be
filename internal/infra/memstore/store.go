// Package memstore backs the inventory and ledger ports with mutex-guarded
// maps. It drives unit tests and the STORE_DRIVER=memory local profile; the
// postgres repositories are the production implementations.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"dormstay/internal/domain/reservation"
	"dormstay/internal/domain/room"
	"dormstay/internal/infra"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/commands"
	"dormstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	rooms        map[uuid.UUID]*room.Room
	reservations map[uuid.UUID]*reservation.Reservation
}

func New() *Store {
	return &Store{
		rooms:        make(map[uuid.UUID]*room.Room),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
	}
}

// Rooms exposes the inventory side of the store.
func (s *Store) Rooms() *RoomStore {
	return &RoomStore{s: s}
}

// Ledger exposes the reservation side of the store.
func (s *Store) Ledger() *LedgerStore {
	return &LedgerStore{s: s}
}

// RoomStore is the inventory facet: room reads, holds, releases, vacancies.
type RoomStore struct {
	s *Store
}

// LedgerStore is the reservation facet: pending creation, guarded
// transitions, reads.
type LedgerStore struct {
	s *Store
}

// AddRoom seeds a room. Seeding happens at startup (memory profile) or in
// test setup; it is not part of the inventory contract.
func (s *Store) AddRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID()] = r
}

// --- commands.RoomInventory ---

func (r *RoomStore) TryHold(_ context.Context, roomID uuid.UUID, count int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rm, ok := r.s.rooms[roomID]
	if !ok {
		return false, nil
	}
	return rm.Hold(count)
}

func (r *RoomStore) Release(_ context.Context, roomID uuid.UUID, count int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rm, ok := r.s.rooms[roomID]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	if err := rm.Release(count); err != nil {
		return infra.WrapRepoErr(infra.KindCorruption, "unbalanced release", errs.Mark(err, errs.ErrInventoryCorrupted))
	}
	return nil
}

func (r *RoomStore) Available(_ context.Context, roomID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rm, ok := r.s.rooms[roomID]
	if !ok {
		return 0, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	return rm.Available(), nil
}

// --- commands.RoomReader ---

func (r *RoomStore) FindByID(_ context.Context, roomID uuid.UUID) (*commands.RoomSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rm, ok := r.s.rooms[roomID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	return snapshotOf(rm), nil
}

// --- commands.ReservationLedger ---

func (l *LedgerStore) CreatePending(_ context.Context, res *reservation.Reservation) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	for _, existing := range l.s.reservations {
		if existing.StudentID() == res.StudentID() &&
			existing.ResidenceID() == res.ResidenceID() &&
			existing.Status().HoldsBed() &&
			existing.Stay().Overlaps(res.Stay()) {
			return infra.NewRepoErr(infra.KindConflict, "student already has an overlapping booking in this residence")
		}
	}

	l.s.reservations[res.ID()] = copyOf(res)
	return nil
}

func (l *LedgerStore) Activate(_ context.Context, id uuid.UUID, paymentID string) error {
	return l.applyTransition(id, func(res *reservation.Reservation) error {
		return res.Activate(paymentID)
	})
}

func (l *LedgerStore) Approve(_ context.Context, id uuid.UUID) error {
	return l.applyTransition(id, func(res *reservation.Reservation) error {
		return res.Approve()
	})
}

func (l *LedgerStore) Reject(_ context.Context, id uuid.UUID, reason string) error {
	return l.applyTransition(id, func(res *reservation.Reservation) error {
		return res.Reject(reason)
	})
}

func (l *LedgerStore) Cancel(_ context.Context, id uuid.UUID) error {
	return l.applyTransition(id, func(res *reservation.Reservation) error {
		return res.Cancel()
	})
}

func (l *LedgerStore) Complete(_ context.Context, id uuid.UUID) error {
	return l.applyTransition(id, func(res *reservation.Reservation) error {
		return res.Complete()
	})
}

func (l *LedgerStore) applyTransition(id uuid.UUID, fn func(*reservation.Reservation) error) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	res, ok := l.s.reservations[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	if err := fn(res); err != nil {
		return infra.WrapRepoErr(infra.KindConflict, "reservation status does not permit this transition", err)
	}
	return nil
}

func (l *LedgerStore) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	res, ok := l.s.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return copyOf(res), nil
}

func (l *LedgerStore) FindStalePending(_ context.Context, createdBefore time.Time) ([]*reservation.Reservation, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	var result []*reservation.Reservation
	for _, res := range l.s.reservations {
		if res.Status() == reservation.StatusPending && res.CreatedAt().Before(createdBefore) {
			result = append(result, copyOf(res))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt().Before(result[j].CreatedAt())
	})
	return result, nil
}

// --- queries.ReservationReadStore ---

func (l *LedgerStore) FindViewByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	res, ok := l.s.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return l.s.viewOf(res), nil
}

func (l *LedgerStore) FindViewsByStudent(_ context.Context, studentID uuid.UUID) ([]*queries.ReservationView, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	var result []*queries.ReservationView
	for _, res := range l.s.reservations {
		if res.StudentID() == studentID {
			result = append(result, l.s.viewOf(res))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// --- queries.VacancyReadStore ---

func (r *RoomStore) FindVacantRooms(_ context.Context, residenceID uuid.UUID, stay reservation.StayPeriod) ([]*queries.RoomAvailability, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*queries.RoomAvailability
	for _, rm := range r.s.rooms {
		if rm.ResidenceID() != residenceID || !rm.HasFreeBeds() {
			continue
		}
		if r.s.hasOverlappingReservation(rm.ID(), stay) {
			continue
		}
		result = append(result, &queries.RoomAvailability{
			RoomID:      rm.ID(),
			ResidenceID: rm.ResidenceID(),
			RoomNumber:  rm.Number(),
			TotalBeds:   rm.TotalBeds(),
			FreeBeds:    rm.Available(),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RoomNumber < result[j].RoomNumber
	})
	return result, nil
}

func (s *Store) hasOverlappingReservation(roomID uuid.UUID, stay reservation.StayPeriod) bool {
	for _, res := range s.reservations {
		if res.RoomID() == roomID && res.Status().HoldsBed() && res.Stay().Overlaps(stay) {
			return true
		}
	}
	return false
}

func (s *Store) viewOf(res *reservation.Reservation) *queries.ReservationView {
	number := ""
	if rm, ok := s.rooms[res.RoomID()]; ok {
		number = rm.Number()
	}
	return &queries.ReservationView{
		ID:          res.ID(),
		StudentID:   res.StudentID(),
		RoomID:      res.RoomID(),
		RoomNumber:  number,
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

func snapshotOf(rm *room.Room) *commands.RoomSnapshot {
	return &commands.RoomSnapshot{
		ID:           rm.ID(),
		ResidenceID:  rm.ResidenceID(),
		Number:       rm.Number(),
		TotalBeds:    rm.TotalBeds(),
		OccupiedBeds: rm.OccupiedBeds(),
		Active:       rm.IsActive(),
	}
}

func copyOf(res *reservation.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(
		res.ID(), res.StudentID(), res.RoomID(), res.ResidenceID(),
		res.Stay(), res.Amount(), res.Status(),
		res.PaymentID(), res.StatusNote(), res.CreatedAt(), res.UpdatedAt(),
	)
}
