package model

// OccupancyKind discriminates what kind of reservation holds a calendar cell.
type OccupancyKind string

const (
	OccupancyDaily   OccupancyKind = "daily"
	OccupancyMonthly OccupancyKind = "monthly"
)

// Occupancy is the tagged result of resolving one room × day cell.  Exactly
// one of Daily or Monthly is set, matching Kind.  A free cell is represented
// by the absence of an Occupancy, not by a zero value.
type Occupancy struct {
	Kind    OccupancyKind    `json:"kind"`
	Daily   *DailyBooking    `json:"daily,omitempty"`
	Monthly *MonthlyContract `json:"monthly,omitempty"`
}

// RoomID returns the room held by the occupying reservation.
func (o Occupancy) RoomID() int64 {
	if o.Kind == OccupancyDaily && o.Daily != nil {
		return o.Daily.RoomID
	}
	if o.Monthly != nil {
		return o.Monthly.RoomID
	}
	return 0
}

// ReservationID returns the identifier of the occupying reservation.
func (o Occupancy) ReservationID() int64 {
	if o.Kind == OccupancyDaily && o.Daily != nil {
		return o.Daily.ID
	}
	if o.Monthly != nil {
		return o.Monthly.ID
	}
	return 0
}
