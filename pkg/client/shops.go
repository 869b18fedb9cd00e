package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grably/adminctl/pkg/domain"
)

// CreateShopRequest is the payload for registering a shop.
type CreateShopRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`
	OwnerID  int64  `json:"ownerId,omitempty"`
}

// ListShops fetches shops.
func (c *Client) ListShops(ctx context.Context, p ListParams) ([]domain.Shop, error) {
	var resp struct {
		Shops []domain.Shop `json:"shops"`
	}
	if err := c.get(ctx, "/shops"+p.encode(), &resp); err != nil {
		return nil, fmt.Errorf("client.ListShops: %w", err)
	}
	return resp.Shops, nil
}

// GetShop fetches a single shop by ID.
func (c *Client) GetShop(ctx context.Context, id int64) (*domain.Shop, error) {
	var shop domain.Shop
	if err := c.get(ctx, "/shops/"+strconv.FormatInt(id, 10), &shop); err != nil {
		return nil, fmt.Errorf("client.GetShop: %w", err)
	}
	return &shop, nil
}

// CreateShop registers a new shop.
func (c *Client) CreateShop(ctx context.Context, req CreateShopRequest) (*domain.Shop, error) {
	var created domain.Shop
	if err := c.post(ctx, "/shops", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateShop: %w", err)
	}
	return &created, nil
}

// UpdateShop edits an existing shop.
func (c *Client) UpdateShop(ctx context.Context, id int64, req CreateShopRequest) (*domain.Shop, error) {
	var updated domain.Shop
	if err := c.put(ctx, "/shops/"+strconv.FormatInt(id, 10), req, &updated); err != nil {
		return nil, fmt.Errorf("client.UpdateShop: %w", err)
	}
	return &updated, nil
}

// DeleteShop removes a shop.
func (c *Client) DeleteShop(ctx context.Context, id int64) error {
	if err := c.del(ctx, "/shops/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("client.DeleteShop: %w", err)
	}
	return nil
}

// ApproveShop approves a pending shop.
func (c *Client) ApproveShop(ctx context.Context, id int64) error {
	if err := c.patch(ctx, "/shops/"+strconv.FormatInt(id, 10)+"/approve", nil, nil); err != nil {
		return fmt.Errorf("client.ApproveShop: %w", err)
	}
	return nil
}

// RejectShop rejects a pending shop with a reason.
func (c *Client) RejectShop(ctx context.Context, id int64, reason string) error {
	body := map[string]string{"reason": reason}
	if err := c.patch(ctx, "/shops/"+strconv.FormatInt(id, 10)+"/reject", body, nil); err != nil {
		return fmt.Errorf("client.RejectShop: %w", err)
	}
	return nil
}
