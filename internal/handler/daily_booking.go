package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/availability"
	"github.com/bellathena/cityhill-backoffice/internal/model"
	"github.com/bellathena/cityhill-backoffice/internal/queue"
	"github.com/bellathena/cityhill-backoffice/internal/upstream"
)

// newCustomerPayload registers a walk-in guest inline with a booking.  Phone
// is the only required field; a missing name defaults to the phone number,
// matching how the front desk works.
type newCustomerPayload struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone" validate:"required"`
	CitizenID  string `json:"citizenId"`
	Address    string `json:"address"`
	CarLicense string `json:"carLicense"`
}

type createBookingRequest struct {
	RoomID        int64               `json:"roomId" validate:"required,gt=0"`
	CustomerID    int64               `json:"customerId"`
	Customer      *newCustomerPayload `json:"customer"`
	CheckInDate   model.Date          `json:"checkInDate"`
	CheckOutDate  model.Date          `json:"checkOutDate"`
	NumGuests     int                 `json:"numGuests" validate:"gte=0"`
	ExtraBedCount int                 `json:"extraBedCount" validate:"gte=0"`
	TotalAmount   *float64            `json:"totalAmount"` // overrides the computed amount
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
}

// bookingView is a booking with its room and customer expanded from the
// snapshot.  Dangling references come back as zero-valued placeholders.
type bookingView struct {
	model.DailyBooking
	Room     model.Room     `json:"room"`
	Customer model.Customer `json:"customer"`
}

// ListDailyBookings returns all daily bookings from the snapshot with their
// room and customer expanded.
func (h *Handler) ListDailyBookings(c echo.Context) error {
	snap := h.Store.Current()
	views := make([]bookingView, 0, len(snap.DailyBookings))
	for _, b := range snap.DailyBookings {
		v := bookingView{DailyBooking: b}
		v.Room, _ = snap.RoomByID(b.RoomID)
		v.Customer, _ = snap.CustomerByID(b.CustomerID)
		views = append(views, v)
	}
	return c.JSON(http.StatusOK, views)
}

// CreateDailyBooking validates a booking request, gates it against existing
// reservations, optionally registers a new customer, then creates the
// booking upstream and re-syncs.  Conflicts are rejected locally; no
// upstream call is made for a range the snapshot already shows occupied.
func (h *Handler) CreateDailyBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "checkInDate and checkOutDate are required"})
	}
	if req.CheckOutDate.Before(req.CheckInDate) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "checkOutDate precedes checkInDate"})
	}
	if req.CustomerID <= 0 && req.Customer == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customerId or customer is required"})
	}

	snap := h.Store.Current()
	room, ok := snap.RoomByID(req.RoomID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	if room.AllowedType == model.RentMonthly {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "room does not accept daily rentals"})
	}
	if req.CustomerID > 0 {
		if _, ok := snap.CustomerByID(req.CustomerID); !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
	}

	if err := resolver(snap).CheckConflict(req.RoomID, req.CheckInDate, req.CheckOutDate, "", 0); err != nil {
		var conflict *availability.ConflictError
		if errors.As(err, &conflict) {
			return conflictResponse(c, conflict)
		}
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	customerID := req.CustomerID
	if customerID <= 0 {
		name := req.Customer.FullName
		if name == "" {
			name = req.Customer.Phone
		}
		created, err := h.API.CreateCustomer(ctx, upstream.CustomerInput{
			FullName:   name,
			Phone:      req.Customer.Phone,
			CitizenID:  req.Customer.CitizenID,
			Address:    req.Customer.Address,
			CarLicense: req.Customer.CarLicense,
		})
		if err != nil {
			return h.upstreamError(c, err)
		}
		customerID = created.ID
	}

	amount := availability.StayAmount(req.CheckInDate, req.CheckOutDate,
		availability.DailyRateFor(room, snap.RoomTypes))
	if req.TotalAmount != nil {
		amount = *req.TotalAmount
	}
	payment := req.PaymentStatus
	if payment == "" {
		payment = model.PaymentPending
	}

	booking, err := h.API.CreateDailyBooking(ctx, upstream.DailyBookingInput{
		RoomID:        req.RoomID,
		CustomerID:    customerID,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		NumGuests:     req.NumGuests,
		ExtraBedCount: req.ExtraBedCount,
		TotalAmount:   amount,
		BookingStatus: model.BookingConfirmed,
		PaymentStatus: payment,
	})
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)

	h.publish(h.bookingEvent(queue.ActionBookingCreated, booking, actorID(c)))
	return c.JSON(http.StatusCreated, booking)
}

// CheckInDailyBooking marks a confirmed booking as stayed.
func (h *Handler) CheckInDailyBooking(c echo.Context) error {
	return h.transitionBooking(c, model.BookingConfirmed, model.BookingStayed, queue.ActionBookingCheckedIn)
}

// CheckOutDailyBooking marks a stayed booking as checked out, releasing the
// room.
func (h *Handler) CheckOutDailyBooking(c echo.Context) error {
	return h.transitionBooking(c, model.BookingStayed, model.BookingCheckedOut, queue.ActionBookingCheckedOut)
}

func (h *Handler) transitionBooking(c echo.Context, from, to model.BookingStatus, action string) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	snap := h.Store.Current()
	booking, ok := snap.BookingByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	if booking.BookingStatus != from {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "booking is " + string(booking.BookingStatus) + ", expected " + string(from),
		})
	}

	ctx := c.Request().Context()
	updated, err := h.API.UpdateDailyBooking(ctx, id, upstream.DailyBookingPatch{BookingStatus: &to})
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)

	h.publish(h.bookingEvent(action, updated, actorID(c)))
	return c.JSON(http.StatusOK, updated)
}

type paymentRequest struct {
	PaymentStatus model.PaymentStatus `json:"paymentStatus" validate:"required,oneof=PENDING PAID OVERDUE"`
}

// UpdateBookingPayment changes a booking's payment status.
func (h *Handler) UpdateBookingPayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if _, ok := h.Store.Current().BookingByID(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}

	ctx := c.Request().Context()
	updated, err := h.API.UpdateDailyBooking(ctx, id, upstream.DailyBookingPatch{PaymentStatus: &req.PaymentStatus})
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.JSON(http.StatusOK, updated)
}

// CancelDailyBooking removes a booking, freeing its calendar range.
func (h *Handler) CancelDailyBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	snap := h.Store.Current()
	booking, ok := snap.BookingByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}

	ctx := c.Request().Context()
	if err := h.API.DeleteDailyBooking(ctx, id); err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)

	h.publish(h.bookingEvent(queue.ActionBookingCancelled, booking, actorID(c)))
	return c.NoContent(http.StatusNoContent)
}

// bookingEvent builds a reservation event, expanding room and customer names
// from the snapshot.
func (h *Handler) bookingEvent(action string, b model.DailyBooking, actor int64) queue.ReservationEvent {
	snap := h.Store.Current()
	ev := queue.ReservationEvent{
		Action:        action,
		Kind:          string(model.OccupancyDaily),
		ReservationID: b.ID,
		RoomID:        b.RoomID,
		CustomerID:    b.CustomerID,
		StartDate:     b.CheckInDate.String(),
		EndDate:       b.CheckOutDate.String(),
		Amount:        b.TotalAmount,
		ActorID:       actor,
	}
	if room, ok := snap.RoomByID(b.RoomID); ok {
		ev.RoomNumber = room.RoomNumber
	}
	if cust, ok := snap.CustomerByID(b.CustomerID); ok {
		ev.CustomerName = cust.FullName
	}
	return ev
}
