package upstream

import (
	"context"
	"fmt"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// RoomTypeInput is the payload for creating or updating a room type.
type RoomTypeInput struct {
	TypeName        string  `json:"typeName"`
	Description     string  `json:"description,omitempty"`
	BaseDailyRate   float64 `json:"baseDailyRate"`
	BaseMonthlyRate float64 `json:"baseMonthlyRate"`
}

// ListRoomTypes fetches all room types.
func (c *Client) ListRoomTypes(ctx context.Context) ([]model.RoomType, error) {
	var types []model.RoomType
	if err := c.get(ctx, "/room-types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// CreateRoomType creates a room type.
func (c *Client) CreateRoomType(ctx context.Context, in RoomTypeInput) (model.RoomType, error) {
	var t model.RoomType
	if err := c.post(ctx, "/room-types", in, &t); err != nil {
		return model.RoomType{}, err
	}
	return t, nil
}

// UpdateRoomType replaces a room type's editable fields.
func (c *Client) UpdateRoomType(ctx context.Context, id int64, in RoomTypeInput) (model.RoomType, error) {
	var t model.RoomType
	if err := c.put(ctx, fmt.Sprintf("/room-types/%d", id), in, &t); err != nil {
		return model.RoomType{}, err
	}
	return t, nil
}

// DeleteRoomType removes a room type.
func (c *Client) DeleteRoomType(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/room-types/%d", id))
}
