package domain

import "time"

// User statuses as reported by the backend.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents a registered Grably customer account.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Active reports whether the account is currently enabled.
func (u User) Active() bool {
	return u.Status == UserStatusActive
}
