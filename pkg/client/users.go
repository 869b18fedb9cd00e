package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/grably/adminctl/pkg/domain"
)

// ListParams are the common query parameters of the list endpoints.
type ListParams struct {
	Limit  int
	Offset int
	Search string
}

func (p ListParams) encode() string {
	params := url.Values{}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		params.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Search != "" {
		params.Set("search", p.Search)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// CreateUserRequest is the payload for creating a user account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the payload for editing a user account.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}

// ListUsers fetches user accounts.
func (c *Client) ListUsers(ctx context.Context, p ListParams) ([]domain.User, error) {
	var resp struct {
		Users []domain.User `json:"users"`
	}
	if err := c.get(ctx, "/users"+p.encode(), &resp); err != nil {
		return nil, fmt.Errorf("client.ListUsers: %w", err)
	}
	return resp.Users, nil
}

// GetUser fetches a single user by ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/users/"+strconv.FormatInt(id, 10), &user); err != nil {
		return nil, fmt.Errorf("client.GetUser: %w", err)
	}
	return &user, nil
}

// CreateUser creates a new user account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	var created domain.User
	if err := c.post(ctx, "/users", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateUser: %w", err)
	}
	return &created, nil
}

// UpdateUser edits an existing user account.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	var updated domain.User
	if err := c.put(ctx, "/users/"+strconv.FormatInt(id, 10), req, &updated); err != nil {
		return nil, fmt.Errorf("client.UpdateUser: %w", err)
	}
	return &updated, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	if err := c.del(ctx, "/users/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("client.DeleteUser: %w", err)
	}
	return nil
}

// ToggleUserStatus flips a user between active and inactive.
func (c *Client) ToggleUserStatus(ctx context.Context, id int64) error {
	if err := c.patch(ctx, "/users/"+strconv.FormatInt(id, 10)+"/toggle-status", nil, nil); err != nil {
		return fmt.Errorf("client.ToggleUserStatus: %w", err)
	}
	return nil
}
