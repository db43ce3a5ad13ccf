package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/model"
	"github.com/bellathena/cityhill-backoffice/internal/upstream"
)

// Operator accounts are not part of the snapshot; user administration is
// proxied straight through to the upstream API.  The router restricts every
// handler in this file to ADMIN.

type createUserRequest struct {
	Username string     `json:"username" validate:"required"`
	FullName string     `json:"fullName" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    string     `json:"phone"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     model.Role `json:"role" validate:"required,oneof=STAFF ADMIN"`
}

type updateUserRequest struct {
	Username string     `json:"username" validate:"required"`
	FullName string     `json:"fullName" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    string     `json:"phone"`
	Role     model.Role `json:"role" validate:"required,oneof=STAFF ADMIN"`
}

// ListUsers returns all operator accounts.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.API.ListUsers(c.Request().Context())
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser registers an operator account.  The password travels to the
// upstream API and is never stored here.
func (h *Handler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.API.CreateUser(c.Request().Context(), upstream.UserCreateInput{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser replaces an operator account's editable fields.  Passwords do
// not change through this path.
func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.API.UpdateUser(c.Request().Context(), id, upstream.UserUpdateInput{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes an operator account.  An admin cannot delete their own
// account; that would lock the session that issued the request.
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if id == actorID(c) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete your own account"})
	}
	if err := h.API.DeleteUser(c.Request().Context(), id); err != nil {
		return h.upstreamError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
