package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/upstream"
)

// ListRoomTypes returns all room types from the snapshot.
func (h *Handler) ListRoomTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Current().RoomTypes)
}

// CreateRoomType registers a new rate card upstream.
func (h *Handler) CreateRoomType(c echo.Context) error {
	var in upstream.RoomTypeInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.TypeName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "typeName is required"})
	}
	if in.BaseDailyRate < 0 || in.BaseMonthlyRate < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rates must not be negative"})
	}

	ctx := c.Request().Context()
	t, err := h.API.CreateRoomType(ctx, in)
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.JSON(http.StatusCreated, t)
}

// UpdateRoomType replaces a rate card's editable fields upstream.
func (h *Handler) UpdateRoomType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var in upstream.RoomTypeInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.BaseDailyRate < 0 || in.BaseMonthlyRate < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rates must not be negative"})
	}
	if _, ok := h.Store.Current().RoomTypeByID(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room type not found"})
	}

	ctx := c.Request().Context()
	t, err := h.API.UpdateRoomType(ctx, id, in)
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.JSON(http.StatusOK, t)
}

// DeleteRoomType removes a rate card.  Types still referenced by rooms
// cannot be deleted.
func (h *Handler) DeleteRoomType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	snap := h.Store.Current()
	if _, ok := snap.RoomTypeByID(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room type not found"})
	}
	for _, r := range snap.Rooms {
		if r.TypeID == id {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room type is in use by room " + r.RoomNumber})
		}
	}

	ctx := c.Request().Context()
	if err := h.API.DeleteRoomType(ctx, id); err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.NoContent(http.StatusNoContent)
}
