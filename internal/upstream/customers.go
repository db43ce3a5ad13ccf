package upstream

import (
	"context"
	"fmt"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// CustomerInput is the payload for creating or updating a customer.
type CustomerInput struct {
	FullName   string `json:"fullName"`
	CitizenID  string `json:"citizenId,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone"`
	CarLicense string `json:"carLicense,omitempty"`
}

// ListCustomers fetches all customers.
func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := c.get(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer registers a customer and returns the stored record with its
// upstream-assigned id.
func (c *Client) CreateCustomer(ctx context.Context, in CustomerInput) (model.Customer, error) {
	var customer model.Customer
	if err := c.post(ctx, "/customers", in, &customer); err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// UpdateCustomer replaces a customer's editable fields.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, in CustomerInput) (model.Customer, error) {
	var customer model.Customer
	if err := c.put(ctx, fmt.Sprintf("/customers/%d", id), in, &customer); err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/customers/%d", id))
}
