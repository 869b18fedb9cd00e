package domain

import "time"

// Notification delivery channels.
const (
	NotificationTypePush  = "push"
	NotificationTypeEmail = "email"
)

// Notification audiences accepted by the backend.
var NotificationRecipients = []string{"all", "users", "shops", "custom"}

// Notification is a sent notification as returned by the history endpoint.
type Notification struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	Title     string    `json:"title,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}
