package model

import "time"

// Customer is a guest or tenant registered with the property.
//
// Fields:
//
//	ID         – upstream identifier.
//	FullName   – display name; the booking form defaults it to the phone
//	             number when a walk-in guest gives no name.
//	CitizenID  – national id card number (13 digits locally).
//	Address    – free-form address.
//	Phone      – contact phone; the only field the booking form requires.
//	CarLicense – vehicle plate, used by the parking lot staff.
type Customer struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	CitizenID     string    `json:"citizenId,omitempty"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone"`
	CarLicense    string    `json:"carLicense,omitempty"`
	CustomerImage string    `json:"customerImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}
