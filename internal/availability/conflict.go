package availability

import (
	"fmt"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// ConflictError describes a rejected reservation request: the requested range
// collides with an existing occupying reservation for the same room.  It is
// raised locally, before any upstream call is made.
type ConflictError struct {
	Kind          model.OccupancyKind // kind of the existing reservation
	ReservationID int64               // id of the existing reservation
	RoomID        int64
	Start         model.Date // range of the existing reservation
	End           model.Date
}

func (e *ConflictError) Error() string {
	kind := "daily booking"
	if e.Kind == model.OccupancyMonthly {
		kind = "monthly contract"
	}
	return fmt.Sprintf("room %d is already held by %s #%d (%s to %s)",
		e.RoomID, kind, e.ReservationID, e.Start, e.End)
}

// CheckConflict verifies that the inclusive [start, end] range is free for
// the room.  Daily bookings in a non-terminal status and active monthly
// contracts both count.  A reservation may be excluded by kind and id, which
// lets an update or approval skip the record being changed.
func (r Resolver) CheckConflict(roomID int64, start, end model.Date, excludeKind model.OccupancyKind, excludeID int64) error {
	for i := range r.Bookings {
		b := &r.Bookings[i]
		if b.RoomID != roomID || !b.Occupies() {
			continue
		}
		if excludeKind == model.OccupancyDaily && b.ID == excludeID {
			continue
		}
		if Overlaps(start, end, b.CheckInDate, b.CheckOutDate) {
			return &ConflictError{
				Kind:          model.OccupancyDaily,
				ReservationID: b.ID,
				RoomID:        roomID,
				Start:         b.CheckInDate,
				End:           b.CheckOutDate,
			}
		}
	}
	for i := range r.Contracts {
		c := &r.Contracts[i]
		if c.RoomID != roomID || !c.Occupies() {
			continue
		}
		if excludeKind == model.OccupancyMonthly && c.ID == excludeID {
			continue
		}
		if Overlaps(start, end, c.StartDate, c.EffectiveEnd()) {
			return &ConflictError{
				Kind:          model.OccupancyMonthly,
				ReservationID: c.ID,
				RoomID:        roomID,
				Start:         c.StartDate,
				End:           c.EffectiveEnd(),
			}
		}
	}
	return nil
}
