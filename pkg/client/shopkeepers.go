package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grably/adminctl/pkg/domain"
)

// CreateShopkeeperRequest is the payload for creating a shop-owner account.
type CreateShopkeeperRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	ShopName string `json:"shopName,omitempty"`
	Password string `json:"password" validate:"required"`
}

// ListShopkeepers fetches shop-owner accounts.
func (c *Client) ListShopkeepers(ctx context.Context, p ListParams) ([]domain.Shopkeeper, error) {
	var resp struct {
		Shopkeepers []domain.Shopkeeper `json:"shopkeepers"`
	}
	if err := c.get(ctx, "/shopkeepers"+p.encode(), &resp); err != nil {
		return nil, fmt.Errorf("client.ListShopkeepers: %w", err)
	}
	return resp.Shopkeepers, nil
}

// GetShopkeeper fetches a single shopkeeper by ID.
func (c *Client) GetShopkeeper(ctx context.Context, id int64) (*domain.Shopkeeper, error) {
	var sk domain.Shopkeeper
	if err := c.get(ctx, "/shopkeepers/"+strconv.FormatInt(id, 10), &sk); err != nil {
		return nil, fmt.Errorf("client.GetShopkeeper: %w", err)
	}
	return &sk, nil
}

// CreateShopkeeper creates a new shop-owner account.
func (c *Client) CreateShopkeeper(ctx context.Context, req CreateShopkeeperRequest) (*domain.Shopkeeper, error) {
	var created domain.Shopkeeper
	if err := c.post(ctx, "/shopkeepers", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateShopkeeper: %w", err)
	}
	return &created, nil
}

// UpdateShopkeeper edits an existing shop-owner account.
func (c *Client) UpdateShopkeeper(ctx context.Context, id int64, req UpdateUserRequest) (*domain.Shopkeeper, error) {
	var updated domain.Shopkeeper
	if err := c.put(ctx, "/shopkeepers/"+strconv.FormatInt(id, 10), req, &updated); err != nil {
		return nil, fmt.Errorf("client.UpdateShopkeeper: %w", err)
	}
	return &updated, nil
}

// DeleteShopkeeper removes a shop-owner account.
func (c *Client) DeleteShopkeeper(ctx context.Context, id int64) error {
	if err := c.del(ctx, "/shopkeepers/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("client.DeleteShopkeeper: %w", err)
	}
	return nil
}

// ToggleShopkeeperStatus flips a shopkeeper between active and inactive.
func (c *Client) ToggleShopkeeperStatus(ctx context.Context, id int64) error {
	if err := c.patch(ctx, "/shopkeepers/"+strconv.FormatInt(id, 10)+"/toggle-status", nil, nil); err != nil {
		return fmt.Errorf("client.ToggleShopkeeperStatus: %w", err)
	}
	return nil
}
