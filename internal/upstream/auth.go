package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// ErrBadCredentials is returned by Login when the upstream rejects the
// email/password pair.
var ErrBadCredentials = errors.New("invalid credentials")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies operator credentials against the upstream API and returns
// the matching account.  Credential storage and verification live upstream;
// this service only issues its own session tokens for accounts the upstream
// vouches for.
func (c *Client) Login(ctx context.Context, email, password string) (model.SystemUser, error) {
	var resp struct {
		User model.SystemUser `json:"user"`
	}
	err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if apiErr, ok := AsAPIError(err); ok &&
			(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			return model.SystemUser{}, ErrBadCredentials
		}
		return model.SystemUser{}, err
	}
	return resp.User, nil
}
