// Package handler contains the HTTP handlers for the back-office API.  Every
// handler reads from the in-memory snapshot, proxies mutations to the
// upstream data API, and re-syncs the snapshot before answering.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bellathena/cityhill-backoffice/internal/availability"
	"github.com/bellathena/cityhill-backoffice/internal/config"
	"github.com/bellathena/cityhill-backoffice/internal/queue"
	"github.com/bellathena/cityhill-backoffice/internal/service/queue_publisher"
	"github.com/bellathena/cityhill-backoffice/internal/session"
	"github.com/bellathena/cityhill-backoffice/internal/store"
	"github.com/bellathena/cityhill-backoffice/internal/upstream"
)

// Handler bundles the dependencies shared by all HTTP handlers.
type Handler struct {
	API      *upstream.Client
	Store    *store.Store
	Sessions *session.TokenStore
	Cfg      config.Config
	Log      zerolog.Logger
}

// New builds a Handler.
func New(api *upstream.Client, st *store.Store, sessions *session.TokenStore, cfg config.Config, log zerolog.Logger) *Handler {
	return &Handler{API: api, Store: st, Sessions: sessions, Cfg: cfg, Log: log}
}

// resolver builds an availability resolver over the given snapshot.
func resolver(snap store.Snapshot) availability.Resolver {
	return availability.Resolver{Bookings: snap.DailyBookings, Contracts: snap.MonthlyContracts}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// actorID returns the authenticated operator's account id, zero on public
// routes.
func actorID(c echo.Context) int64 {
	if id, ok := c.Get("user_id").(int64); ok {
		return id
	}
	return 0
}

// upstreamError translates an upstream failure into an HTTP response.  The
// upstream's own status and message are forwarded when present so operators
// see the real reason for a rejection.
func (h *Handler) upstreamError(c echo.Context, err error) error {
	if errors.Is(err, upstream.ErrUnreachable) {
		h.Log.Error().Err(err).Msg("upstream unreachable")
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "data service unreachable"})
	}
	if apiErr, ok := upstream.AsAPIError(err); ok {
		msg := apiErr.Message
		if msg == "" {
			msg = "upstream request failed"
		}
		return c.JSON(apiErr.Status, echo.Map{"error": msg})
	}
	h.Log.Error().Err(err).Msg("upstream call failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// conflictResponse shapes a 409 for a rejected reservation.
func conflictResponse(c echo.Context, conflict *availability.ConflictError) error {
	return c.JSON(http.StatusConflict, echo.Map{
		"error":         conflict.Error(),
		"kind":          conflict.Kind,
		"reservationId": conflict.ReservationID,
	})
}

// resync replaces the snapshot after a successful mutation.  The mutation
// already happened upstream, so a sync failure is logged but does not fail
// the request; the cron job will catch the snapshot up.
func (h *Handler) resync(ctx context.Context) {
	if err := h.Store.Sync(ctx); err != nil {
		h.Log.Error().Err(err).Msg("snapshot re-sync after mutation failed")
	}
}

// publish sends a reservation event to the broker in the background.
// Publishing is best-effort; the reservation is already committed upstream.
func (h *Handler) publish(ev queue.ReservationEvent) {
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := queue_publisher.PublishReservationEvent(ctx, ev); err != nil {
			h.Log.Warn().Err(err).Str("action", ev.Action).Msg("event publish failed")
		}
	}()
}
