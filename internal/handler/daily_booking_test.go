package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
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

// testEnv fakes the upstream API with httptest and seeds the snapshot from
// it, so handler tests exercise the same code paths as production.
type testEnv struct {
	handler   *Handler
	echo      *echo.Echo
	postCount *int64
	lastPost  *atomic.Value
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	var postCount int64
	var lastPost atomic.Value

	existing := model.DailyBooking{
		ID: 100, RoomID: 1, CustomerID: 5,
		CheckInDate:   model.NewDate(2025, time.January, 10),
		CheckOutDate:  model.NewDate(2025, time.January, 12),
		BookingStatus: model.BookingConfirmed,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Room{{ID: 1, RoomNumber: "101", Floor: 1, TypeID: 1}})
	})
	mux.HandleFunc("GET /room-types", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.RoomType{{ID: 1, TypeName: "standard", BaseDailyRate: 300}})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Customer{{ID: 5, FullName: "Guest", Phone: "0800000000"}})
	})
	mux.HandleFunc("GET /daily-bookings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.DailyBooking{existing})
	})
	mux.HandleFunc("GET /monthly-contracts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.MonthlyContract{})
	})
	mux.HandleFunc("POST /daily-bookings", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&postCount, 1)
		var in upstream.DailyBookingInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		lastPost.Store(in)
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, model.DailyBooking{
			ID: 101, RoomID: in.RoomID, CustomerID: in.CustomerID,
			CheckInDate: in.CheckInDate, CheckOutDate: in.CheckOutDate,
			TotalAmount: in.TotalAmount, BookingStatus: in.BookingStatus,
			PaymentStatus: in.PaymentStatus,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := upstream.New(srv.URL, "", 5*time.Second)
	st := store.New(api)
	if err := st.Sync(context.Background()); err != nil {
		t.Fatalf("seed sync: %v", err)
	}

	e := echo.New()
	e.Validator = validator.New()
	h := New(api, st, nil, config.Config{JWTSecret: "test"}, zerolog.Nop())
	return &testEnv{handler: h, echo: e, postCount: &postCount, lastPost: &lastPost}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (env *testEnv) createBooking(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/daily-bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if err := env.handler.CreateDailyBooking(c); err != nil {
		env.echo.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestCreateBookingConflictRejectedLocally(t *testing.T) {
	env := newTestEnv(t)

	// Overlaps the existing booking on its shared boundary day.
	rec := env.createBooking(t, `{"roomId":1,"customerId":5,"checkInDate":"2025-01-12","checkOutDate":"2025-01-14"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body %s", rec.Code, rec.Body)
	}
	if n := atomic.LoadInt64(env.postCount); n != 0 {
		t.Errorf("conflict must not reach the upstream, got %d POSTs", n)
	}

	var resp struct {
		ReservationID int64 `json:"reservationId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ReservationID != 100 {
		t.Errorf("conflict should name booking 100, got %d", resp.ReservationID)
	}
}

func TestCreateBookingComputesAmountAndResyncs(t *testing.T) {
	env := newTestEnv(t)
	before := env.handler.Store.Version()

	rec := env.createBooking(t, `{"roomId":1,"customerId":5,"checkInDate":"2025-01-13","checkOutDate":"2025-01-14"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body)
	}
	if n := atomic.LoadInt64(env.postCount); n != 1 {
		t.Fatalf("POST count = %d, want 1", n)
	}

	sent := env.lastPost.Load().(upstream.DailyBookingInput)
	// Two inclusive days at the type's 300 base rate.
	if sent.TotalAmount != 600 {
		t.Errorf("computed amount = %v, want 600", sent.TotalAmount)
	}
	if sent.BookingStatus != model.BookingConfirmed {
		t.Errorf("status sent upstream = %q, want CONFIRMED", sent.BookingStatus)
	}
	if sent.PaymentStatus != model.PaymentPending {
		t.Errorf("payment default = %q, want PENDING", sent.PaymentStatus)
	}

	if after := env.handler.Store.Version(); after != before+1 {
		t.Errorf("snapshot version = %d, want %d (re-sync after mutation)", after, before+1)
	}
}

func TestCreateBookingMalformedRange(t *testing.T) {
	env := newTestEnv(t)

	rec := env.createBooking(t, `{"roomId":1,"customerId":5,"checkInDate":"2025-01-14","checkOutDate":"2025-01-13"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body %s", rec.Code, rec.Body)
	}
	if n := atomic.LoadInt64(env.postCount); n != 0 {
		t.Errorf("malformed range must not reach the upstream, got %d POSTs", n)
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	env := newTestEnv(t)

	rec := env.createBooking(t, `{"roomId":9,"customerId":5,"checkInDate":"2025-01-13","checkOutDate":"2025-01-14"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body %s", rec.Code, rec.Body)
	}
}
