package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/upstream"
)

// ListCustomers returns all customers from the snapshot.
func (h *Handler) ListCustomers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Current().Customers)
}

// CreateCustomer registers a customer upstream.  FullName defaults to the
// phone number for walk-in guests who give no name.
func (h *Handler) CreateCustomer(c echo.Context) error {
	var in upstream.CustomerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone is required"})
	}
	if in.FullName == "" {
		in.FullName = in.Phone
	}

	ctx := c.Request().Context()
	customer, err := h.API.CreateCustomer(ctx, in)
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer replaces a customer's editable fields upstream.
func (h *Handler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var in upstream.CustomerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if _, ok := h.Store.Current().CustomerByID(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	ctx := c.Request().Context()
	customer, err := h.API.UpdateCustomer(ctx, id, in)
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer.  Customers with occupying reservations
// cannot be deleted.
func (h *Handler) DeleteCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	snap := h.Store.Current()
	if _, ok := snap.CustomerByID(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}
	for _, b := range snap.DailyBookings {
		if b.CustomerID == id && b.Occupies() {
			return c.JSON(http.StatusConflict, echo.Map{"error": "customer has an active booking"})
		}
	}
	for _, mc := range snap.MonthlyContracts {
		if mc.CustomerID == id && mc.Occupies() {
			return c.JSON(http.StatusConflict, echo.Map{"error": "customer has an active contract"})
		}
	}

	ctx := c.Request().Context()
	if err := h.API.DeleteCustomer(ctx, id); err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)
	return c.NoContent(http.StatusNoContent)
}
