package model

import "time"

// RoomType is a rate card shared by rooms of the same category.  The base
// rates are the defaults used when computing booking amounts; individual
// rooms may carry their own overrides.
type RoomType struct {
	ID              int64     `json:"id"`
	TypeName        string    `json:"typeName"`
	Description     string    `json:"description,omitempty"`
	BaseDailyRate   float64   `json:"baseDailyRate"`
	BaseMonthlyRate float64   `json:"baseMonthlyRate"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}
