// Package queue defines message payloads exchanged over the message broker.
package queue

// Event action names published to the reservation.events queue.
const (
	ActionBookingCreated    = "booking.created"
	ActionBookingCheckedIn  = "booking.checked_in"
	ActionBookingCheckedOut = "booking.checked_out"
	ActionBookingCancelled  = "booking.cancelled"
	ActionContractCreated   = "contract.created"
	ActionContractApproved  = "contract.approved"
	ActionContractClosed    = "contract.closed"
	ActionContractCancelled = "contract.cancelled"
)

// ReservationEvent is published after a booking or contract mutation has been
// accepted upstream.  It carries enough information for downstream consumers
// to log or notify without calling the data API themselves.
type ReservationEvent struct {
	Action        string  `json:"action"`
	Kind          string  `json:"kind"` // "daily" or "monthly"
	ReservationID int64   `json:"reservationId"`
	RoomID        int64   `json:"roomId"`
	RoomNumber    string  `json:"roomNumber"`
	CustomerID    int64   `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate,omitempty"` // empty for open-ended contracts
	Amount        float64 `json:"amount,omitempty"`
	ActorID       int64   `json:"actorId"`
	OccurredAt    string  `json:"occurredAt"`
}
