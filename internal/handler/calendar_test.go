package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bellathena/cityhill-backoffice/internal/config"
	"github.com/bellathena/cityhill-backoffice/internal/model"
	"github.com/bellathena/cityhill-backoffice/internal/store"
	"github.com/bellathena/cityhill-backoffice/internal/upstream"
	"github.com/bellathena/cityhill-backoffice/internal/validator"
)

func newCalendarEnv(t *testing.T) *Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Room{
			{ID: 1, RoomNumber: "101", Floor: 1, TypeID: 1, CurrentStatus: model.RoomAvailable},
			{ID: 2, RoomNumber: "202", Floor: 2, TypeID: 1, CurrentStatus: model.RoomAvailable},
			{ID: 3, RoomNumber: "201", Floor: 2, TypeID: 1, CurrentStatus: model.RoomMaintenance},
		})
	})
	mux.HandleFunc("GET /room-types", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.RoomType{{ID: 1, TypeName: "standard"}})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Customer{{ID: 9, FullName: "Tenant", Phone: "0811111111"}})
	})
	mux.HandleFunc("GET /daily-bookings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.DailyBooking{{
			ID: 50, RoomID: 1, CustomerID: 9,
			CheckInDate:   model.NewDate(2025, time.March, 5),
			CheckOutDate:  model.NewDate(2025, time.March, 7),
			BookingStatus: model.BookingStayed,
		}})
	})
	mux.HandleFunc("GET /monthly-contracts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.MonthlyContract{{
			ID: 60, RoomID: 2, CustomerID: 9,
			StartDate:      model.NewDate(2025, time.January, 1),
			ContractStatus: model.ContractActive, // open-ended
		}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := upstream.New(srv.URL, "", 5*time.Second)
	st := store.New(api)
	if err := st.Sync(context.Background()); err != nil {
		t.Fatalf("seed sync: %v", err)
	}
	return New(api, st, nil, config.Config{}, zerolog.Nop())
}

type calendarResponse struct {
	DaysInMonth int           `json:"daysInMonth"`
	Rooms       []calendarRow `json:"rooms"`
}

func getCalendar(t *testing.T, h *Handler, query string) calendarResponse {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/calendar?"+query, nil)
	rec := httptest.NewRecorder()
	if err := h.Calendar(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body)
	}
	var resp calendarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestCalendarRowOrderAndCells(t *testing.T) {
	h := newCalendarEnv(t)
	resp := getCalendar(t, h, "year=2025&month=3")

	if resp.DaysInMonth != 31 {
		t.Errorf("daysInMonth = %d, want 31", resp.DaysInMonth)
	}

	// Floor descending, room number ascending within a floor.
	wantOrder := []string{"201", "202", "101"}
	if len(resp.Rooms) != len(wantOrder) {
		t.Fatalf("rows = %d, want %d", len(resp.Rooms), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got := resp.Rooms[i].Room.RoomNumber; got != want {
			t.Errorf("row %d = %q, want %q", i, got, want)
		}
	}

	cellsByRoom := map[string][]calendarCell{}
	for _, row := range resp.Rooms {
		cellsByRoom[row.Room.RoomNumber] = row.Cells
	}

	// Room 101: stayed booking covers March 5-7 inclusive.
	r101 := cellsByRoom["101"]
	for day := 1; day <= 31; day++ {
		want := "free"
		if day >= 5 && day <= 7 {
			want = "daily"
		}
		if got := r101[day-1].Status; got != want {
			t.Errorf("room 101 day %d = %q, want %q", day, got, want)
		}
	}
	if r101[4].ReservationID != 50 || r101[4].CustomerName != "Tenant" {
		t.Errorf("occupied cell = %+v, want booking 50 by Tenant", r101[4])
	}

	// Room 202: open-ended active contract covers the whole month.
	for _, cell := range cellsByRoom["202"] {
		if cell.Status != "monthly" {
			t.Errorf("room 202 day %d = %q, want monthly", cell.Day, cell.Status)
		}
	}

	// Room 201: no reservations at all.
	for _, cell := range cellsByRoom["201"] {
		if cell.Status != "free" {
			t.Errorf("room 201 day %d = %q, want free", cell.Day, cell.Status)
		}
	}
}

func TestCalendarFilters(t *testing.T) {
	h := newCalendarEnv(t)

	bySearch := getCalendar(t, h, "year=2025&month=3&search=20")
	if len(bySearch.Rooms) != 2 {
		t.Errorf("search=20 rows = %d, want 2", len(bySearch.Rooms))
	}

	byStatus := getCalendar(t, h, "year=2025&month=3&status=MAINTENANCE")
	if len(byStatus.Rooms) != 1 || byStatus.Rooms[0].Room.RoomNumber != "201" {
		t.Errorf("status filter rows = %+v", byStatus.Rooms)
	}
}
