package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grably/adminctl/pkg/domain"
)

// ListOrders fetches orders.
func (c *Client) ListOrders(ctx context.Context, p ListParams) ([]domain.Order, error) {
	var resp struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := c.get(ctx, "/orders"+p.encode(), &resp); err != nil {
		return nil, fmt.Errorf("client.ListOrders: %w", err)
	}
	return resp.Orders, nil
}

// GetOrder fetches a single order, including its line items.
func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, "/orders/"+strconv.FormatInt(id, 10), &order); err != nil {
		return nil, fmt.Errorf("client.GetOrder: %w", err)
	}
	return &order, nil
}

// UpdateOrderStatus moves an order to the given status. The backend owns
// the transition rules; this just reports what the admin asked for.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	if err := c.patch(ctx, "/orders/"+strconv.FormatInt(id, 10)+"/status", body, nil); err != nil {
		return fmt.Errorf("client.UpdateOrderStatus: %w", err)
	}
	return nil
}
