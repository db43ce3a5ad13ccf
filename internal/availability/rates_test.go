package availability

import (
	"testing"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

func TestStayNights(t *testing.T) {
	tests := []struct {
		name    string
		in, out model.Date
		want    int
	}{
		{"single day counts as one", d(2025, 3, 1), d(2025, 3, 1), 1},
		{"two-day stay", d(2025, 3, 1), d(2025, 3, 2), 2},
		{"three-day stay", d(2025, 3, 1), d(2025, 3, 3), 3},
		{"across month boundary", d(2025, 1, 31), d(2025, 2, 2), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StayNights(tt.in, tt.out); got != tt.want {
				t.Errorf("StayNights(%s, %s) = %d, want %d", tt.in, tt.out, got, tt.want)
			}
		})
	}
}

func TestStayAmount(t *testing.T) {
	got := StayAmount(d(2025, 3, 1), d(2025, 3, 3), 300)
	if got != 900 {
		t.Errorf("StayAmount = %v, want 900", got)
	}
}

func TestRatePrecedence(t *testing.T) {
	types := []model.RoomType{
		{ID: 1, BaseDailyRate: 500, BaseMonthlyRate: 8000},
		{ID: 2}, // rate card with no rates set
	}

	withType := model.Room{ID: 10, TypeID: 1, PricePerDay: 350, PricePerMonth: 6000}
	if got := DailyRateFor(withType, types); got != 500 {
		t.Errorf("type base rate should win, got %v", got)
	}
	if got := MonthlyRateFor(withType, types); got != 8000 {
		t.Errorf("type monthly rate should win, got %v", got)
	}

	zeroType := model.Room{ID: 11, TypeID: 2, PricePerDay: 350, PricePerMonth: 6000}
	if got := DailyRateFor(zeroType, types); got != 350 {
		t.Errorf("room override should apply when type rate is zero, got %v", got)
	}

	dangling := model.Room{ID: 12, TypeID: 99, PricePerDay: 350}
	if got := DailyRateFor(dangling, types); got != 350 {
		t.Errorf("dangling type reference should fall back to room override, got %v", got)
	}
}
