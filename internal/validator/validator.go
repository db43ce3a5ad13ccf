// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request payloads.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Echo wraps a validator instance for registration on echo.Echo.Validator.
type Echo struct {
	v *playground.Validate
}

// New returns a validator with struct tag validation enabled.
func New() *Echo {
	return &Echo{v: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and converts failures into a 400 response.
func (e *Echo) Validate(i interface{}) error {
	if err := e.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
