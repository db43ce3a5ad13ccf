package upstream

import (
	"context"
	"fmt"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// UtilityRateInput is the payload for updating the property-wide utility
// rates.
type UtilityRateInput struct {
	ElectricityRate float64 `json:"electricityRate"`
	WaterRate       float64 `json:"waterRate"`
}

// ListUtilityRates fetches the utility rate records.  The upstream keeps a
// single record; callers use the first entry.
func (c *Client) ListUtilityRates(ctx context.Context) ([]model.UtilityRate, error) {
	var rates []model.UtilityRate
	if err := c.get(ctx, "/utility-rates", &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// UpdateUtilityRate edits the utility rate record in place.
func (c *Client) UpdateUtilityRate(ctx context.Context, id int64, in UtilityRateInput) (model.UtilityRate, error) {
	var rate model.UtilityRate
	if err := c.put(ctx, fmt.Sprintf("/utility-rates/%d", id), in, &rate); err != nil {
		return model.UtilityRate{}, err
	}
	return rate, nil
}
