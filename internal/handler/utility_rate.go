package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/upstream"
)

type utilityRateRequest struct {
	ElectricityRate float64 `json:"electricityRate" validate:"gte=0"`
	WaterRate       float64 `json:"waterRate" validate:"gte=0"`
}

// ListUtilityRates returns the property-wide utility rate records.  Not part
// of the snapshot; proxied directly.
func (h *Handler) ListUtilityRates(c echo.Context) error {
	rates, err := h.API.ListUtilityRates(c.Request().Context())
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, rates)
}

// UpdateUtilityRate edits the electricity and water rates in place.
func (h *Handler) UpdateUtilityRate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req utilityRateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rate, err := h.API.UpdateUtilityRate(c.Request().Context(), id, upstream.UtilityRateInput{
		ElectricityRate: req.ElectricityRate,
		WaterRate:       req.WaterRate,
	})
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, rate)
}
