package upstream

import (
	"context"
	"fmt"

	"github.com/bellathena/cityhill-backoffice/internal/model"
)

// RoomInput is the payload for creating or updating a room.
type RoomInput struct {
	RoomNumber    string           `json:"roomNumber"`
	Floor         int              `json:"floor"`
	TypeID        int64            `json:"typeId"`
	AllowedType   model.RentalMode `json:"allowedType,omitempty"`
	CurrentStatus model.RoomStatus `json:"currentStatus,omitempty"`
	PricePerDay   float64          `json:"pricePerDay,omitempty"`
	PricePerMonth float64          `json:"pricePerMonth,omitempty"`
}

// ListRooms fetches all rooms.
func (c *Client) ListRooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := c.get(ctx, "/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom creates a room and returns the stored record.
func (c *Client) CreateRoom(ctx context.Context, in RoomInput) (model.Room, error) {
	var room model.Room
	if err := c.post(ctx, "/rooms", in, &room); err != nil {
		return model.Room{}, err
	}
	return room, nil
}

// UpdateRoom replaces a room's editable fields.
func (c *Client) UpdateRoom(ctx context.Context, id int64, in RoomInput) (model.Room, error) {
	var room model.Room
	if err := c.put(ctx, fmt.Sprintf("/rooms/%d", id), in, &room); err != nil {
		return model.Room{}, err
	}
	return room, nil
}

// DeleteRoom removes a room.
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/rooms/%d", id))
}
