package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grably/adminctl/pkg/domain"
)

// CreateAdminRequest is the payload for creating an administrator account.
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password" validate:"required"`
}

// ListAdmins fetches administrator accounts.
func (c *Client) ListAdmins(ctx context.Context, p ListParams) ([]domain.Admin, error) {
	var resp struct {
		Admins []domain.Admin `json:"admins"`
	}
	if err := c.get(ctx, "/admins"+p.encode(), &resp); err != nil {
		return nil, fmt.Errorf("client.ListAdmins: %w", err)
	}
	return resp.Admins, nil
}

// GetAdmin fetches a single administrator by ID.
func (c *Client) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	var admin domain.Admin
	if err := c.get(ctx, "/admins/"+strconv.FormatInt(id, 10), &admin); err != nil {
		return nil, fmt.Errorf("client.GetAdmin: %w", err)
	}
	return &admin, nil
}

// CreateAdmin creates a new administrator account.
func (c *Client) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*domain.Admin, error) {
	var created domain.Admin
	if err := c.post(ctx, "/admins", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateAdmin: %w", err)
	}
	return &created, nil
}

// UpdateAdmin edits an existing administrator account.
func (c *Client) UpdateAdmin(ctx context.Context, id int64, req UpdateUserRequest) (*domain.Admin, error) {
	var updated domain.Admin
	if err := c.put(ctx, "/admins/"+strconv.FormatInt(id, 10), req, &updated); err != nil {
		return nil, fmt.Errorf("client.UpdateAdmin: %w", err)
	}
	return &updated, nil
}

// DeleteAdmin removes an administrator account.
func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	if err := c.del(ctx, "/admins/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("client.DeleteAdmin: %w", err)
	}
	return nil
}

// ToggleAdminStatus flips an administrator between active and inactive.
func (c *Client) ToggleAdminStatus(ctx context.Context, id int64) error {
	if err := c.patch(ctx, "/admins/"+strconv.FormatInt(id, 10)+"/toggle-status", nil, nil); err != nil {
		return fmt.Errorf("client.ToggleAdminStatus: %w", err)
	}
	return nil
}
