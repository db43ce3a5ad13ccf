package upstream

import (
	"context"
	"fmt"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// DailyBookingInput is the payload for creating a daily booking.
type DailyBookingInput struct {
	RoomID        int64               `json:"roomId"`
	CustomerID    int64               `json:"customerId"`
	CheckInDate   model.Date          `json:"checkInDate"`
	CheckOutDate  model.Date          `json:"checkOutDate"`
	NumGuests     int                 `json:"numGuests"`
	ExtraBedCount int                 `json:"extraBedCount"`
	TotalAmount   float64             `json:"totalAmount"`
	BookingStatus model.BookingStatus `json:"bookingStatus"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
}

// DailyBookingPatch carries partial updates; nil fields are left unchanged.
type DailyBookingPatch struct {
	BookingStatus *model.BookingStatus `json:"bookingStatus,omitempty"`
	PaymentStatus *model.PaymentStatus `json:"paymentStatus,omitempty"`
}

// ListDailyBookings fetches all daily bookings.
func (c *Client) ListDailyBookings(ctx context.Context) ([]model.DailyBooking, error) {
	var bookings []model.DailyBooking
	if err := c.get(ctx, "/daily-bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateDailyBooking creates a daily booking.
func (c *Client) CreateDailyBooking(ctx context.Context, in DailyBookingInput) (model.DailyBooking, error) {
	var booking model.DailyBooking
	if err := c.post(ctx, "/daily-bookings", in, &booking); err != nil {
		return model.DailyBooking{}, err
	}
	return booking, nil
}

// UpdateDailyBooking applies a partial update, used for check-in and
// check-out status transitions.
func (c *Client) UpdateDailyBooking(ctx context.Context, id int64, patch DailyBookingPatch) (model.DailyBooking, error) {
	var booking model.DailyBooking
	if err := c.put(ctx, fmt.Sprintf("/daily-bookings/%d", id), patch, &booking); err != nil {
		return model.DailyBooking{}, err
	}
	return booking, nil
}

// DeleteDailyBooking removes a daily booking (cancellation).
func (c *Client) DeleteDailyBooking(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/daily-bookings/%d", id))
}
