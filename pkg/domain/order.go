package domain

import "time"

// Order statuses, in their natural progression order.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every status the backend accepts, in cycle order
// for the status-transition action.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ValidOrderStatus reports whether s is a status the backend accepts.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// NextOrderStatus returns the status following s in cycle order,
// wrapping back to pending. Unknown statuses map to pending.
func NextOrderStatus(s string) string {
	for i, v := range OrderStatuses {
		if v == s {
			return OrderStatuses[(i+1)%len(OrderStatuses)]
		}
	}
	return OrderStatusPending
}

// Order represents a customer order as shown in the admin list view.
type Order struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	Shop          string      `json:"shop,omitempty"`
	ItemCount     int         `json:"itemCount"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items,omitempty"` // detail view only
	CreatedAt     time.Time   `json:"createdAt"`
}

// OrderItem is a single line item in an order detail.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
