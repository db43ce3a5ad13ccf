package availability

import "github.com/bellathena/cityhill-backoffice/internal/model"

// StayNights counts the days of an inclusive stay.  A single-day booking
// (check-in equals check-out) counts as one.
func StayNights(checkIn, checkOut model.Date) int {
	return checkIn.DaysUntil(checkOut) + 1
}

// StayAmount computes the default total for a daily booking: the per-day rate
// times the inclusive day count.
func StayAmount(checkIn, checkOut model.Date, ratePerDay float64) float64 {
	return ratePerDay * float64(StayNights(checkIn, checkOut))
}

// DailyRateFor returns the per-day rate for a room: the room type's base
// daily rate when the type resolves, otherwise the room's own per-day
// override, otherwise zero.
func DailyRateFor(room model.Room, types []model.RoomType) float64 {
	for _, t := range types {
		if t.ID == room.TypeID {
			if t.BaseDailyRate > 0 {
				return t.BaseDailyRate
			}
			break
		}
	}
	return room.PricePerDay
}

// MonthlyRateFor returns the monthly rent for a room with the same
// precedence as DailyRateFor.
func MonthlyRateFor(room model.Room, types []model.RoomType) float64 {
	for _, t := range types {
		if t.ID == room.TypeID {
			if t.BaseMonthlyRate > 0 {
				return t.BaseMonthlyRate
			}
			break
		}
	}
	return room.PricePerMonth
}
