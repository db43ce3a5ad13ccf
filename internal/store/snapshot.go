// Package store keeps the in-memory snapshot of upstream business data.  The
// snapshot is replaced wholesale after every successful mutation rather than
// patched incrementally; for a low-traffic admin tool this is the simplest
// design that keeps reads consistent, at the cost of a full re-fetch.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// Lister is the read side of the upstream API, the five bulk listings the
// snapshot is built from.
type Lister interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
	ListRoomTypes(ctx context.Context) ([]model.RoomType, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListDailyBookings(ctx context.Context) ([]model.DailyBooking, error)
	ListMonthlyContracts(ctx context.Context) ([]model.MonthlyContract, error)
}

// Snapshot is one immutable view of the property data.  Callers must treat
// the slices as read-only; they are shared between all readers of the same
// version.
type Snapshot struct {
	Rooms            []model.Room
	RoomTypes        []model.RoomType
	Customers        []model.Customer
	DailyBookings    []model.DailyBooking
	MonthlyContracts []model.MonthlyContract
	Version          uint64
	SyncedAt         time.Time
}

// RoomByID resolves a room reference, returning false for dangling ids.
func (s Snapshot) RoomByID(id int64) (model.Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return model.Room{}, false
}

// RoomTypeByID resolves a room-type reference.
func (s Snapshot) RoomTypeByID(id int64) (model.RoomType, bool) {
	for _, t := range s.RoomTypes {
		if t.ID == id {
			return t, true
		}
	}
	return model.RoomType{}, false
}

// CustomerByID resolves a customer reference.
func (s Snapshot) CustomerByID(id int64) (model.Customer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return model.Customer{}, false
}

// BookingByID resolves a daily booking by id.
func (s Snapshot) BookingByID(id int64) (model.DailyBooking, bool) {
	for _, b := range s.DailyBookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.DailyBooking{}, false
}

// ContractByID resolves a monthly contract by id.
func (s Snapshot) ContractByID(id int64) (model.MonthlyContract, bool) {
	for _, c := range s.MonthlyContracts {
		if c.ID == id {
			return c, true
		}
	}
	return model.MonthlyContract{}, false
}

// Store guards the current snapshot.  Reads take the read lock and receive
// the snapshot value; Sync builds a complete replacement before taking the
// write lock, so readers never observe a half-loaded state.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	api  Lister
}

// New returns a Store that syncs from the given upstream listing client.
func New(api Lister) *Store {
	return &Store{api: api}
}

// Current returns the latest snapshot.
func (st *Store) Current() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap
}

// Version returns the current snapshot version without copying the snapshot.
func (st *Store) Version() uint64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap.Version
}

// Sync fetches the five listings concurrently and replaces the snapshot.  On
// any fetch error the current snapshot is left untouched and the first error
// is returned.
func (st *Store) Sync(ctx context.Context) error {
	var (
		next Snapshot
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		if err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	}
	wg.Add(5)
	go func() {
		defer wg.Done()
		rooms, err := st.api.ListRooms(ctx)
		next.Rooms = rooms
		record(err)
	}()
	go func() {
		defer wg.Done()
		types, err := st.api.ListRoomTypes(ctx)
		next.RoomTypes = types
		record(err)
	}()
	go func() {
		defer wg.Done()
		customers, err := st.api.ListCustomers(ctx)
		next.Customers = customers
		record(err)
	}()
	go func() {
		defer wg.Done()
		bookings, err := st.api.ListDailyBookings(ctx)
		next.DailyBookings = bookings
		record(err)
	}()
	go func() {
		defer wg.Done()
		contracts, err := st.api.ListMonthlyContracts(ctx)
		next.MonthlyContracts = contracts
		record(err)
	}()
	wg.Wait()
	if len(errs) > 0 {
		return errs[0]
	}

	next.SyncedAt = time.Now().UTC()
	st.mu.Lock()
	next.Version = st.snap.Version + 1
	st.snap = next
	st.mu.Unlock()
	return nil
}
