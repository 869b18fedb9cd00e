package domain

import "time"

// Shop approval statuses.
const (
	ShopStatusPending  = "pending"
	ShopStatusApproved = "approved"
	ShopStatusRejected = "rejected"
)

// Shop represents a storefront registered on the platform.
// Approval moves pending -> approved|rejected on the backend; the client
// only displays the state and issues the transition calls.
type Shop struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	OwnerName    string    `json:"ownerName,omitempty"`
	OwnerEmail   string    `json:"ownerEmail,omitempty"`
	Location     string    `json:"location,omitempty"`
	Status       string    `json:"status"`
	RejectReason string    `json:"rejectReason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Pending reports whether the shop still awaits an approval decision.
func (s Shop) Pending() bool {
	return s.Status == ShopStatusPending
}
