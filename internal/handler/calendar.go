package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// calendarCell is one room × day entry on the monthly grid.
type calendarCell struct {
	Day           int        `json:"day"`
	Date          model.Date `json:"date"`
	Status        string     `json:"status"` // "free", "daily" or "monthly"
	ReservationID int64      `json:"reservationId,omitempty"`
	CustomerName  string     `json:"customerName,omitempty"`
}

// calendarRow is one room's month of cells.
type calendarRow struct {
	Room     model.Room     `json:"room"`
	TypeName string         `json:"typeName,omitempty"`
	Cells    []calendarCell `json:"cells"`
}

// Calendar renders the room-availability grid for one month.  Rooms can be
// filtered by room-number substring (?search=) and status (?status=); rows
// are ordered floor descending, then room number ascending, matching how the
// building is walked.
func (h *Handler) Calendar(c echo.Context) error {
	year, month, err := yearMonthParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	search := strings.TrimSpace(c.QueryParam("search"))
	statusFilter := model.RoomStatus(strings.TrimSpace(c.QueryParam("status")))
	if statusFilter != "" && !model.ValidRoomStatus(statusFilter) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown room status"})
	}

	snap := h.Store.Current()
	res := resolver(snap)

	rooms := make([]model.Room, 0, len(snap.Rooms))
	for _, r := range snap.Rooms {
		if search != "" && !strings.Contains(r.RoomNumber, search) {
			continue
		}
		if statusFilter != "" && r.CurrentStatus != statusFilter {
			continue
		}
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Floor != rooms[j].Floor {
			return rooms[i].Floor > rooms[j].Floor
		}
		return rooms[i].RoomNumber < rooms[j].RoomNumber
	})

	days := model.DaysInMonth(year, month)
	rows := make([]calendarRow, 0, len(rooms))
	for _, room := range rooms {
		row := calendarRow{Room: room, Cells: make([]calendarCell, 0, days)}
		if t, ok := snap.RoomTypeByID(room.TypeID); ok {
			row.TypeName = t.TypeName
		}
		for day := 1; day <= days; day++ {
			date := model.NewDate(year, month, day)
			cell := calendarCell{Day: day, Date: date, Status: "free"}
			if occ, ok := res.Resolve(room.ID, date); ok {
				cell.Status = string(occ.Kind)
				cell.ReservationID = occ.ReservationID()
				if cust, ok := snap.CustomerByID(occupantCustomerID(occ)); ok {
					cell.CustomerName = cust.FullName
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"year":            year,
		"month":           int(month),
		"daysInMonth":     days,
		"rooms":           rows,
		"snapshotVersion": snap.Version,
	})
}

// CalendarCell answers a single cell click: an occupied cell returns the
// occupancy details, a free cell returns a booking-form seed.
func (h *Handler) CalendarCell(c echo.Context) error {
	roomID, err := strconv.ParseInt(c.QueryParam("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room_id"})
	}
	year, month, err := yearMonthParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	day, err := strconv.Atoi(c.QueryParam("day"))
	if err != nil || day < 1 || day > model.DaysInMonth(year, month) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid day"})
	}

	snap := h.Store.Current()
	room, ok := snap.RoomByID(roomID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}

	date := model.NewDate(year, month, day)
	if occ, found := resolver(snap).Resolve(roomID, date); found {
		resp := echo.Map{
			"occupied":  true,
			"room":      room,
			"date":      date,
			"occupancy": occ,
		}
		if cust, ok := snap.CustomerByID(occupantCustomerID(occ)); ok {
			resp["customer"] = cust
		}
		return c.JSON(http.StatusOK, resp)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"occupied":  false,
		"room":      room,
		"date":      date,
		"startDate": date,
	})
}

func occupantCustomerID(occ model.Occupancy) int64 {
	if occ.Kind == model.OccupancyDaily && occ.Daily != nil {
		return occ.Daily.CustomerID
	}
	if occ.Monthly != nil {
		return occ.Monthly.CustomerID
	}
	return 0
}

// yearMonthParams reads ?year= and ?month=, defaulting to the current month.
func yearMonthParams(c echo.Context) (int, time.Month, error) {
	now := model.Today()
	year, month := now.Year(), now.Month()
	if v := c.QueryParam("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2100 {
			return 0, 0, errInvalidYear
		}
		year = n
	}
	if v := c.QueryParam("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			return 0, 0, errInvalidMonth
		}
		month = time.Month(n)
	}
	return year, month, nil
}

var (
	errInvalidYear  = errors.New("invalid year")
	errInvalidMonth = errors.New("invalid month")
)
