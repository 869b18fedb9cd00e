package client

import (
	"context"
	"fmt"

	"github.com/grably/adminctl/pkg/domain"
)

// SendNotificationRequest is the payload for a push notification broadcast.
type SendNotificationRequest struct {
	Type      string `json:"type" validate:"required,oneof=push email"`
	Recipient string `json:"recipient" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// SendEmailRequest is the payload for an email broadcast.
type SendEmailRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// SendNotification sends a push notification to the chosen audience.
func (c *Client) SendNotification(ctx context.Context, req SendNotificationRequest) error {
	if err := c.post(ctx, "/notifications", req, nil); err != nil {
		return fmt.Errorf("client.SendNotification: %w", err)
	}
	return nil
}

// SendEmail sends an email broadcast to the chosen audience.
func (c *Client) SendEmail(ctx context.Context, req SendEmailRequest) error {
	if err := c.post(ctx, "/notifications/email", req, nil); err != nil {
		return fmt.Errorf("client.SendEmail: %w", err)
	}
	return nil
}

// NotificationHistory returns previously sent notifications.
func (c *Client) NotificationHistory(ctx context.Context, p ListParams) ([]domain.Notification, error) {
	var resp struct {
		Notifications []domain.Notification `json:"notifications"`
	}
	if err := c.get(ctx, "/notifications/history"+p.encode(), &resp); err != nil {
		return nil, fmt.Errorf("client.NotificationHistory: %w", err)
	}
	return resp.Notifications, nil
}
