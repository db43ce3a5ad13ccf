// Package availability derives room occupancy from an in-memory snapshot of
// daily bookings and monthly contracts, and gates new reservations against
// existing ones.  All functions are pure with respect to their inputs: the
// same snapshot, room and day always produce the same answer.
package availability

import (
	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// Resolver answers occupancy questions for one immutable snapshot of
// reservations.  It holds the slices by reference and never mutates them, so
// a Resolver may be built per request from shared snapshot data.
type Resolver struct {
	Bookings  []model.DailyBooking
	Contracts []model.MonthlyContract
}

// Resolve classifies one room × day cell.  Daily bookings are checked first,
// then active monthly contracts; the first match in storage order wins (at
// most one should exist when the conflict gate is enforced on write).  The
// second return value is false when the cell is free.
func (r Resolver) Resolve(roomID int64, day model.Date) (model.Occupancy, bool) {
	for i := range r.Bookings {
		b := &r.Bookings[i]
		if b.RoomID != roomID || !b.Occupies() {
			continue
		}
		if containsDay(b.CheckInDate, b.CheckOutDate, day) {
			return model.Occupancy{Kind: model.OccupancyDaily, Daily: b}, true
		}
	}
	for i := range r.Contracts {
		c := &r.Contracts[i]
		if c.RoomID != roomID || !c.Occupies() {
			continue
		}
		if containsDay(c.StartDate, c.EffectiveEnd(), day) {
			return model.Occupancy{Kind: model.OccupancyMonthly, Monthly: c}, true
		}
	}
	return model.Occupancy{}, false
}

// containsDay reports whether day falls within the inclusive [start, end]
// range.
func containsDay(start, end, day model.Date) bool {
	return !day.Before(start) && !day.After(end)
}

// Overlaps reports whether two inclusive date ranges share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd model.Date) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
