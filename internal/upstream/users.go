package upstream

import (
	"context"
	"fmt"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// UserCreateInput is the payload for creating an operator account.  The
// password is accepted here only; the upstream API stores and verifies it.
type UserCreateInput struct {
	Username string     `json:"username"`
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone,omitempty"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// UserUpdateInput is the payload for updating an operator account.  No
// password changes go through this path.
type UserUpdateInput struct {
	Username string     `json:"username"`
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone,omitempty"`
	Role     model.Role `json:"role"`
}

// ListUsers fetches all operator accounts.
func (c *Client) ListUsers(ctx context.Context) ([]model.SystemUser, error) {
	var users []model.SystemUser
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates an operator account.
func (c *Client) CreateUser(ctx context.Context, in UserCreateInput) (model.SystemUser, error) {
	var user model.SystemUser
	if err := c.post(ctx, "/users", in, &user); err != nil {
		return model.SystemUser{}, err
	}
	return user, nil
}

// UpdateUser replaces an operator account's editable fields.
func (c *Client) UpdateUser(ctx context.Context, id int64, in UserUpdateInput) (model.SystemUser, error) {
	var user model.SystemUser
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), in, &user); err != nil {
		return model.SystemUser{}, err
	}
	return user, nil
}

// DeleteUser removes an operator account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}
