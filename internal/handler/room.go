package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/model"
	"github.com/bellathena/cityhill-backoffice/internal/upstream"
)

// ListRooms returns all rooms from the snapshot.
func (h *Handler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Current().Rooms)
}

// CreateRoom registers a new room upstream.
func (h *Handler) CreateRoom(c echo.Context) error {
	var in upstream.RoomInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.RoomNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomNumber is required"})
	}
	if in.TypeID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "typeId is required"})
	}
	if _, ok := h.Store.Current().RoomTypeByID(in.TypeID); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room type not found"})
	}
	if in.CurrentStatus != "" && !model.ValidRoomStatus(in.CurrentStatus) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown room status"})
	}

	ctx := c.Request().Context()
	room, err := h.API.CreateRoom(ctx, in)
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.JSON(http.StatusCreated, room)
}

// UpdateRoom replaces a room's editable fields upstream.
func (h *Handler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var in upstream.RoomInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.CurrentStatus != "" && !model.ValidRoomStatus(in.CurrentStatus) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown room status"})
	}
	if _, ok := h.Store.Current().RoomByID(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}

	ctx := c.Request().Context()
	room, err := h.API.UpdateRoom(ctx, id, in)
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.JSON(http.StatusOK, room)
}

// DeleteRoom removes a room.  Rooms with occupying reservations cannot be
// deleted; the reservations must be cancelled or closed first.
func (h *Handler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	snap := h.Store.Current()
	if _, ok := snap.RoomByID(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	for _, b := range snap.DailyBookings {
		if b.RoomID == id && b.Occupies() {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room has an active booking"})
		}
	}
	for _, mc := range snap.MonthlyContracts {
		if mc.RoomID == id && mc.Occupies() {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room has an active contract"})
		}
	}

	ctx := c.Request().Context()
	if err := h.API.DeleteRoom(ctx, id); err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.NoContent(http.StatusNoContent)
}
