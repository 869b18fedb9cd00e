package client

import (
	"context"
	"fmt"

	"github.com/grably/adminctl/pkg/domain"
)

// LoginRequest is the credential payload for the login exchange.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the backend's answer to a successful login. Older
// deployments return the token under "token", newer ones under
// "accessToken"; AccessToken() resolves the precedence.
type LoginResponse struct {
	Message      string        `json:"message,omitempty"`
	User         *domain.Admin `json:"user"`
	Access       string        `json:"accessToken,omitempty"`
	Token        string        `json:"token,omitempty"`
	RefreshToken string        `json:"refreshToken,omitempty"`
}

// AccessToken returns the bearer token from whichever field carries it.
func (r *LoginResponse) AccessToken() string {
	if r.Access != "" {
		return r.Access
	}
	return r.Token
}

// Login exchanges credentials for a session. The request goes out without
// a bearer token; the caller stores the result in the session store.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &resp, nil
}

// Logout invalidates the session on the backend. The local session is the
// caller's to clear.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.post(ctx, "/admin/logout", nil, nil); err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}

// Me returns the authenticated administrator's profile.
func (c *Client) Me(ctx context.Context) (*domain.Admin, error) {
	var admin domain.Admin
	if err := c.get(ctx, "/admin/me", &admin); err != nil {
		return nil, fmt.Errorf("client.Me: %w", err)
	}
	return &admin, nil
}

// Refresh exchanges the current session for a fresh token pair. The
// unauthorized path never calls this; an expired token always falls
// through to clear-and-redirect.
func (c *Client) Refresh(ctx context.Context) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/admin/refresh", nil, &resp); err != nil {
		return nil, fmt.Errorf("client.Refresh: %w", err)
	}
	return &resp, nil
}
