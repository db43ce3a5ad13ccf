package upstream

import (
	"context"
	"fmt"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// MonthlyContractInput is the payload for creating a monthly contract.  A
// nil EndDate means the contract is open-ended.
type MonthlyContractInput struct {
	RoomID          int64                `json:"roomId"`
	CustomerID      int64                `json:"customerId"`
	StartDate       model.Date           `json:"startDate"`
	EndDate         *model.Date          `json:"endDate"`
	DepositAmount   float64              `json:"depositAmount"`
	AdvancePayment  float64              `json:"advancePayment"`
	MonthlyRentRate float64              `json:"monthlyRentRate"`
	ContractStatus  model.ContractStatus `json:"contractStatus"`
}

// MonthlyContractPatch carries partial updates; nil fields are left
// unchanged.
type MonthlyContractPatch struct {
	ContractStatus *model.ContractStatus `json:"contractStatus,omitempty"`
	EndDate        *model.Date           `json:"endDate,omitempty"`
}

// ListMonthlyContracts fetches all monthly contracts.
func (c *Client) ListMonthlyContracts(ctx context.Context) ([]model.MonthlyContract, error) {
	var contracts []model.MonthlyContract
	if err := c.get(ctx, "/monthly-contracts", &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// CreateMonthlyContract creates a monthly contract.
func (c *Client) CreateMonthlyContract(ctx context.Context, in MonthlyContractInput) (model.MonthlyContract, error) {
	var contract model.MonthlyContract
	if err := c.post(ctx, "/monthly-contracts", in, &contract); err != nil {
		return model.MonthlyContract{}, err
	}
	return contract, nil
}

// UpdateMonthlyContract applies a partial update, used for contract approval
// and closing.
func (c *Client) UpdateMonthlyContract(ctx context.Context, id int64, patch MonthlyContractPatch) (model.MonthlyContract, error) {
	var contract model.MonthlyContract
	if err := c.put(ctx, fmt.Sprintf("/monthly-contracts/%d", id), patch, &contract); err != nil {
		return model.MonthlyContract{}, err
	}
	return contract, nil
}

// DeleteMonthlyContract removes a monthly contract (cancellation).
func (c *Client) DeleteMonthlyContract(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/monthly-contracts/%d", id))
}
