package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Healthz reports liveness plus snapshot freshness.  A zero version means
// the initial sync has not completed.
func (h *Handler) Healthz(c echo.Context) error {
	snap := h.Store.Current()
	return c.JSON(http.StatusOK, echo.Map{
		"status":          "ok",
		"snapshotVersion": snap.Version,
		"syncedAt":        snap.SyncedAt,
	})
}
