package availability

import (
	"testing"
	"time"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

func d(year int, month time.Month, day int) model.Date {
	return model.NewDate(year, month, day)
}

func TestResolveDailyBooking(t *testing.T) {
	res := Resolver{
		Bookings: []model.DailyBooking{
			{ID: 1, RoomID: 10, CheckInDate: d(2025, 3, 5), CheckOutDate: d(2025, 3, 5), BookingStatus: model.BookingConfirmed},
			{ID: 2, RoomID: 10, CheckInDate: d(2025, 3, 7), CheckOutDate: d(2025, 3, 9), BookingStatus: model.BookingCancelled},
			{ID: 3, RoomID: 11, CheckInDate: d(2025, 3, 1), CheckOutDate: d(2025, 3, 31), BookingStatus: model.BookingStayed},
		},
	}

	tests := []struct {
		name     string
		roomID   int64
		day      model.Date
		wantBusy bool
		wantID   int64
	}{
		{"single-day stay occupies its day", 10, d(2025, 3, 5), true, 1},
		{"day before single-day stay is free", 10, d(2025, 3, 4), false, 0},
		{"day after single-day stay is free", 10, d(2025, 3, 6), false, 0},
		{"cancelled booking does not occupy", 10, d(2025, 3, 8), false, 0},
		{"stayed booking occupies", 11, d(2025, 3, 15), true, 3},
		{"other room unaffected", 12, d(2025, 3, 5), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ, busy := res.Resolve(tt.roomID, tt.day)
			if busy != tt.wantBusy {
				t.Fatalf("Resolve(%d, %s) busy = %v, want %v", tt.roomID, tt.day, busy, tt.wantBusy)
			}
			if busy {
				if occ.Kind != model.OccupancyDaily {
					t.Errorf("kind = %q, want daily", occ.Kind)
				}
				if occ.ReservationID() != tt.wantID {
					t.Errorf("reservation id = %d, want %d", occ.ReservationID(), tt.wantID)
				}
			}
		})
	}
}

func TestResolveMonthlyContract(t *testing.T) {
	res := Resolver{
		Contracts: []model.MonthlyContract{
			{ID: 7, RoomID: 20, StartDate: d(2024, 6, 1), ContractStatus: model.ContractActive}, // open-ended
			{ID: 8, RoomID: 21, StartDate: d(2024, 6, 1), EndDate: d(2024, 12, 31), ContractStatus: model.ContractActive},
			{ID: 9, RoomID: 22, StartDate: d(2024, 6, 1), ContractStatus: model.ContractPending},
		},
	}

	tests := []struct {
		name     string
		roomID   int64
		day      model.Date
		wantBusy bool
	}{
		{"open-ended contract occupies far future", 20, d(2098, 1, 1), true},
		{"open-ended contract free before start", 20, d(2024, 5, 31), false},
		{"bounded contract occupies its end day", 21, d(2024, 12, 31), true},
		{"bounded contract free after end", 21, d(2025, 1, 1), false},
		{"pending contract does not occupy", 22, d(2024, 7, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ, busy := res.Resolve(tt.roomID, tt.day)
			if busy != tt.wantBusy {
				t.Fatalf("Resolve(%d, %s) busy = %v, want %v", tt.roomID, tt.day, busy, tt.wantBusy)
			}
			if busy && occ.Kind != model.OccupancyMonthly {
				t.Errorf("kind = %q, want monthly", occ.Kind)
			}
		})
	}
}

func TestDailyBookingWinsOverContract(t *testing.T) {
	// Both cover the day; daily is checked first.
	res := Resolver{
		Bookings: []model.DailyBooking{
			{ID: 1, RoomID: 5, CheckInDate: d(2025, 1, 10), CheckOutDate: d(2025, 1, 12), BookingStatus: model.BookingConfirmed},
		},
		Contracts: []model.MonthlyContract{
			{ID: 2, RoomID: 5, StartDate: d(2025, 1, 1), ContractStatus: model.ContractActive},
		},
	}
	occ, busy := res.Resolve(5, d(2025, 1, 11))
	if !busy || occ.Kind != model.OccupancyDaily {
		t.Fatalf("got busy=%v kind=%q, want daily occupancy", busy, occ.Kind)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd model.Date
		want                       bool
	}{
		{"shared boundary overlaps", d(2025, 1, 1), d(2025, 1, 10), d(2025, 1, 10), d(2025, 1, 15), true},
		{"adjacent ranges do not overlap", d(2025, 1, 1), d(2025, 1, 9), d(2025, 1, 10), d(2025, 1, 15), false},
		{"contained range overlaps", d(2025, 1, 1), d(2025, 1, 31), d(2025, 1, 10), d(2025, 1, 12), true},
		{"identical ranges overlap", d(2025, 1, 5), d(2025, 1, 5), d(2025, 1, 5), d(2025, 1, 5), true},
		{"disjoint ranges do not overlap", d(2025, 1, 1), d(2025, 1, 5), d(2025, 2, 1), d(2025, 2, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
