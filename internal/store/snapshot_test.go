package store

import (
	"context"
	"errors"
	"testing"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// fakeLister serves canned listings and can fail one of them.
type fakeLister struct {
	rooms     []model.Room
	types     []model.RoomType
	customers []model.Customer
	bookings  []model.DailyBooking
	contracts []model.MonthlyContract
	failRooms error
}

func (f *fakeLister) ListRooms(ctx context.Context) ([]model.Room, error) {
	return f.rooms, f.failRooms
}
func (f *fakeLister) ListRoomTypes(ctx context.Context) ([]model.RoomType, error) {
	return f.types, nil
}
func (f *fakeLister) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return f.customers, nil
}
func (f *fakeLister) ListDailyBookings(ctx context.Context) ([]model.DailyBooking, error) {
	return f.bookings, nil
}
func (f *fakeLister) ListMonthlyContracts(ctx context.Context) ([]model.MonthlyContract, error) {
	return f.contracts, nil
}

func TestSyncReplacesSnapshotWholesale(t *testing.T) {
	api := &fakeLister{
		rooms:     []model.Room{{ID: 1, RoomNumber: "101"}, {ID: 2, RoomNumber: "102"}},
		customers: []model.Customer{{ID: 5, FullName: "A"}},
	}
	st := New(api)

	if err := st.Sync(context.Background()); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	snap := st.Current()
	if snap.Version != 1 {
		t.Errorf("version = %d, want 1", snap.Version)
	}
	if len(snap.Rooms) != 2 || len(snap.Customers) != 1 {
		t.Errorf("snapshot contents = %d rooms, %d customers", len(snap.Rooms), len(snap.Customers))
	}

	// A record deleted upstream must disappear from the next snapshot.
	api.rooms = api.rooms[:1]
	api.customers = nil
	if err := st.Sync(context.Background()); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	snap = st.Current()
	if snap.Version != 2 {
		t.Errorf("version = %d, want 2", snap.Version)
	}
	if len(snap.Rooms) != 1 || len(snap.Customers) != 0 {
		t.Errorf("stale data survived the replace: %d rooms, %d customers", len(snap.Rooms), len(snap.Customers))
	}
}

func TestSyncFailureKeepsCurrentSnapshot(t *testing.T) {
	api := &fakeLister{rooms: []model.Room{{ID: 1, RoomNumber: "101"}}}
	st := New(api)
	if err := st.Sync(context.Background()); err != nil {
		t.Fatalf("seed sync: %v", err)
	}

	api.failRooms = errors.New("boom")
	api.rooms = nil
	if err := st.Sync(context.Background()); err == nil {
		t.Fatal("expected sync error")
	}

	snap := st.Current()
	if snap.Version != 1 {
		t.Errorf("version = %d, want 1 (unchanged)", snap.Version)
	}
	if len(snap.Rooms) != 1 {
		t.Errorf("failed sync must not touch the snapshot, rooms = %d", len(snap.Rooms))
	}
}

func TestSnapshotLookups(t *testing.T) {
	snap := Snapshot{
		Rooms:     []model.Room{{ID: 1, RoomNumber: "101"}},
		RoomTypes: []model.RoomType{{ID: 2, TypeName: "standard"}},
		Customers: []model.Customer{{ID: 3, FullName: "B"}},
	}
	if _, ok := snap.RoomByID(1); !ok {
		t.Error("RoomByID(1) not found")
	}
	if _, ok := snap.RoomByID(99); ok {
		t.Error("RoomByID(99) should be missing")
	}
	if got, ok := snap.RoomTypeByID(2); !ok || got.TypeName != "standard" {
		t.Errorf("RoomTypeByID(2) = %+v, %v", got, ok)
	}
	if _, ok := snap.CustomerByID(3); !ok {
		t.Error("CustomerByID(3) not found")
	}
}
