package model

import "time"

// Role names an operator role.  ADMIN may manage system users; STAFF may do
// everything else.
type Role string

const (
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"
)

// SystemUser is a back-office operator account, owned by the upstream API.
// Passwords are write-only: they are sent on create and never returned.
type SystemUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
