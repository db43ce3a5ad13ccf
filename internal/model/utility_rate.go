package model

import "time"

// UtilityRate holds the property-wide electricity and water rates used for
// monthly billing.  The upstream API keeps a single record that is edited in
// place.
type UtilityRate struct {
	ID              int64     `json:"id"`
	ElectricityRate float64   `json:"electricityRate"`
	WaterRate       float64   `json:"waterRate"`
	EffectiveDate   Date      `json:"effectiveDate,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}
