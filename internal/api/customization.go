package api

import (
	"context"
	"net/http"
)

// Inventory lists the items the user owns.
func (c *Client) Inventory(ctx context.Context) ([]InventoryItem, error) {
	var out []InventoryItem
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/customization/inventory",
		fallback: "Failed to fetch inventory",
	}, &out)
	return out, err
}

// Equipment returns what the user currently has equipped.
func (c *Client) Equipment(ctx context.Context) (*UserEquipment, error) {
	var out UserEquipment
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/customization/equipment",
		fallback: "Failed to fetch equipment",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Catalog lists every item with its ownership status.
func (c *Client) Catalog(ctx context.Context) ([]CustomizationItem, error) {
	var out []CustomizationItem
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/customization/catalog",
		fallback: "Failed to fetch catalog",
	}, &out)
	return out, err
}

// Equip puts an owned item into a slot.
func (c *Client) Equip(ctx context.Context, req EquipRequest) error {
	if err := Validate(req); err != nil {
		return err
	}
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/customization/equip",
		body:     req,
		fallback: "Failed to equip item",
	}, nil)
}

// Purchase buys an item with coins.
func (c *Client) Purchase(ctx context.Context, itemID int64) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/customization/purchase",
		body:     map[string]int64{"item_id": itemID},
		fallback: "Failed to purchase item",
	}, nil)
}
