package availability

import (
	"errors"
	"testing"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

func TestCheckConflictAgainstBooking(t *testing.T) {
	res := Resolver{
		Bookings: []model.DailyBooking{
			{ID: 4, RoomID: 3, CheckInDate: d(2025, 4, 10), CheckOutDate: d(2025, 4, 12), BookingStatus: model.BookingConfirmed},
			{ID: 5, RoomID: 3, CheckInDate: d(2025, 4, 20), CheckOutDate: d(2025, 4, 22), BookingStatus: model.BookingCheckedOut},
		},
	}

	err := res.CheckConflict(3, d(2025, 4, 12), d(2025, 4, 14), "", 0)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.ReservationID != 4 || conflict.Kind != model.OccupancyDaily {
		t.Errorf("conflict names reservation %d (%s), want 4 (daily)", conflict.ReservationID, conflict.Kind)
	}

	// Checked-out bookings release the room.
	if err := res.CheckConflict(3, d(2025, 4, 20), d(2025, 4, 22), "", 0); err != nil {
		t.Errorf("range held only by checked-out booking should be free, got %v", err)
	}

	// Adjacent range is free.
	if err := res.CheckConflict(3, d(2025, 4, 13), d(2025, 4, 15), "", 0); err != nil {
		t.Errorf("adjacent range should be free, got %v", err)
	}
}

func TestCheckConflictAgainstOpenEndedContract(t *testing.T) {
	res := Resolver{
		Contracts: []model.MonthlyContract{
			{ID: 9, RoomID: 8, StartDate: d(2025, 1, 1), ContractStatus: model.ContractActive},
		},
	}

	// Any range after the start collides with an open-ended active contract.
	err := res.CheckConflict(8, d(2030, 6, 1), d(2030, 6, 3), "", 0)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.ReservationID != 9 || conflict.Kind != model.OccupancyMonthly {
		t.Errorf("conflict = %+v, want contract 9", conflict)
	}

	// Before the start is free.
	if err := res.CheckConflict(8, d(2024, 12, 1), d(2024, 12, 31), "", 0); err != nil {
		t.Errorf("range before contract start should be free, got %v", err)
	}
}

func TestCheckConflictExclusion(t *testing.T) {
	res := Resolver{
		Contracts: []model.MonthlyContract{
			{ID: 9, RoomID: 8, StartDate: d(2025, 1, 1), EndDate: d(2025, 6, 30), ContractStatus: model.ContractActive},
		},
	}

	// A contract does not conflict with itself when excluded, e.g. during
	// approval re-checks.
	if err := res.CheckConflict(8, d(2025, 1, 1), d(2025, 6, 30), model.OccupancyMonthly, 9); err != nil {
		t.Errorf("excluded contract should not conflict with itself, got %v", err)
	}

	// Excluding a daily id does not skip the contract.
	if err := res.CheckConflict(8, d(2025, 2, 1), d(2025, 2, 3), model.OccupancyDaily, 9); err == nil {
		t.Error("exclusion of wrong kind should not suppress the conflict")
	}
}
