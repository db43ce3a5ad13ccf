package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// Dashboard summarises the property for the landing page: rooms by stored
// status, today's occupancy as the resolver sees it, and reservation counts.
// Everything is derived from the snapshot; no upstream calls.
func (h *Handler) Dashboard(c echo.Context) error {
	snap := h.Store.Current()
	res := resolver(snap)
	today := model.Today()

	roomsByStatus := map[model.RoomStatus]int{}
	occupiedDaily, occupiedMonthly := 0, 0
	for _, room := range snap.Rooms {
		roomsByStatus[room.CurrentStatus]++
		if occ, ok := res.Resolve(room.ID, today); ok {
			if occ.Kind == model.OccupancyDaily {
				occupiedDaily++
			} else {
				occupiedMonthly++
			}
		}
	}

	pendingBookings, activeContracts, pendingContracts := 0, 0, 0
	for _, b := range snap.DailyBookings {
		if b.BookingStatus == model.BookingConfirmed {
			pendingBookings++
		}
	}
	for _, mc := range snap.MonthlyContracts {
		switch mc.ContractStatus {
		case model.ContractActive:
			activeContracts++
		case model.ContractPending:
			pendingContracts++
		}
	}

	free := len(snap.Rooms) - occupiedDaily - occupiedMonthly

	return c.JSON(http.StatusOK, echo.Map{
		"date":             today,
		"totalRooms":       len(snap.Rooms),
		"roomsByStatus":    roomsByStatus,
		"occupiedDaily":    occupiedDaily,
		"occupiedMonthly":  occupiedMonthly,
		"freeToday":        free,
		"pendingBookings":  pendingBookings,
		"activeContracts":  activeContracts,
		"pendingContracts": pendingContracts,
		"snapshotVersion":  snap.Version,
	})
}
