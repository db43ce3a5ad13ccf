package model

import "time"

// ContractStatus mirrors the upstream monthly-contract status enum.
type ContractStatus string

const (
	ContractPending ContractStatus = "PENDING" // created, awaiting approval
	ContractActive  ContractStatus = "ACTIVE"  // in force, occupies the room
	ContractNotice  ContractStatus = "NOTICE"  // tenant gave notice
	ContractClosed  ContractStatus = "CLOSED"  // terminal
)

// MonthlyContract is a long-stay rental agreement.  EndDate may be zero, in
// which case the contract is open-ended and occupies its room through the
// FarFuture sentinel.
type MonthlyContract struct {
	ID              int64          `json:"id"`
	CustomerID      int64          `json:"customerId"`
	RoomID          int64          `json:"roomId"`
	StartDate       Date           `json:"startDate"`
	EndDate         Date           `json:"endDate,omitempty"`
	DepositAmount   float64        `json:"depositAmount"`
	AdvancePayment  float64        `json:"advancePayment"`
	MonthlyRentRate float64        `json:"monthlyRentRate"`
	ContractStatus  ContractStatus `json:"contractStatus"`
	ContractFile    string         `json:"contractFile,omitempty"`
	CreatedAt       time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       time.Time      `json:"updatedAt,omitempty"`
}

// EffectiveEnd returns the contract end date, substituting the far-future
// sentinel for open-ended contracts.
func (c MonthlyContract) EffectiveEnd() Date {
	if c.EndDate.IsZero() {
		return FarFuture
	}
	return c.EndDate
}

// Occupies reports whether the contract blocks its room on the calendar.
// Only contracts in force count; pending and closed ones do not.
func (c MonthlyContract) Occupies() bool {
	return c.ContractStatus == ContractActive
}
