package model

import "time"

// RoomStatus mirrors the upstream room status enum.
type RoomStatus string

const (
	RoomAvailable       RoomStatus = "AVAILABLE"   // no active reservation
	RoomOccupiedMonthly RoomStatus = "OCCUPIED_M"  // held by a monthly contract
	RoomOccupiedDaily   RoomStatus = "OCCUPIED_D"  // held by a daily booking
	RoomReserved        RoomStatus = "RESERVED"    // reserved, guest not arrived
	RoomMaintenance     RoomStatus = "MAINTENANCE" // out of service
)

// ValidRoomStatus reports whether s is one of the known room statuses.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomAvailable, RoomOccupiedMonthly, RoomOccupiedDaily, RoomReserved, RoomMaintenance:
		return true
	}
	return false
}

// RentalMode mirrors the upstream allowed-type enum describing which kinds of
// reservation a room accepts.
type RentalMode string

const (
	RentMonthly  RentalMode = "MONTHLY"
	RentDaily    RentalMode = "DAILY"
	RentFlexible RentalMode = "FLEXIBLE"
)

// Room is a rentable unit as stored by the upstream API.
//
// Fields:
//
//	ID            – upstream identifier.
//	RoomNumber    – display number, e.g. "302".
//	Floor         – floor the room is on.
//	TypeID        – reference to a RoomType.
//	AllowedType   – which rental modes the room accepts.
//	CurrentStatus – coarse status as maintained upstream; the calendar derives
//	                per-day occupancy itself and does not trust this field.
//	PricePerDay   – optional per-room daily rate override.
//	PricePerMonth – optional per-room monthly rate override.
type Room struct {
	ID                  int64      `json:"id"`
	RoomNumber          string     `json:"roomNumber"`
	Floor               int        `json:"floor"`
	TypeID              int64      `json:"typeId"`
	AllowedType         RentalMode `json:"allowedType,omitempty"`
	CurrentStatus       RoomStatus `json:"currentStatus"`
	PricePerDay         float64    `json:"pricePerDay,omitempty"`
	PricePerMonth       float64    `json:"pricePerMonth,omitempty"`
	LatestMeterElectric *float64   `json:"latestMeterElectric,omitempty"`
	LatestMeterWater    *float64   `json:"latestMeterWater,omitempty"`
	CreatedAt           time.Time  `json:"createdAt,omitempty"`
	UpdatedAt           time.Time  `json:"updatedAt,omitempty"`
}
