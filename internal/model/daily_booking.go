package model

import "time"

// BookingStatus mirrors the upstream daily-booking status enum.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "CONFIRMED"   // booked, guest not yet arrived
	BookingStayed     BookingStatus = "STAYED"      // guest checked in
	BookingCancelled  BookingStatus = "CANCELLED"   // terminal
	BookingCheckedOut BookingStatus = "CHECKED_OUT" // terminal
)

// PaymentStatus mirrors the upstream payment status enum.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentOverdue PaymentStatus = "OVERDUE"
)

// DailyBooking is a short-stay reservation.  CheckInDate and CheckOutDate
// form an inclusive range: a booking with equal dates occupies exactly one
// day.
type DailyBooking struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customerId"`
	RoomID        int64         `json:"roomId"`
	CheckInDate   Date          `json:"checkInDate"`
	CheckOutDate  Date          `json:"checkOutDate"`
	NumGuests     int           `json:"numGuests,omitempty"`
	ExtraBedCount int           `json:"extraBedCount,omitempty"`
	TotalAmount   float64       `json:"totalAmount"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     time.Time     `json:"updatedAt,omitempty"`
}

// Occupies reports whether the booking should block its room on the calendar.
// Cancelled and checked-out bookings are terminal and release the room.
func (b DailyBooking) Occupies() bool {
	return b.BookingStatus == BookingConfirmed || b.BookingStatus == BookingStayed
}
