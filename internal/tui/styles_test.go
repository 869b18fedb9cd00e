package tui

import (
	"strings"
	"testing"

	"github.com/grably/adminctl/pkg/domain"
)

func TestStatusBadgeCoversEveryStatus(t *testing.T) {
	// Shop and order vocabularies overlap ("pending"); the badge must
	// render every word from both without caring which type it came from.
	statuses := []string{
		domain.UserStatusActive, domain.UserStatusInactive,
		domain.ShopStatusPending, domain.ShopStatusApproved, domain.ShopStatusRejected,
		domain.OrderStatusPending, domain.OrderStatusProcessing,
		domain.OrderStatusCompleted, domain.OrderStatusCancelled,
	}
	for _, s := range statuses {
		if got := statusBadge(s); !strings.Contains(got, s) {
			t.Errorf("statusBadge(%q) = %q, want the status word rendered", s, got)
		}
	}
	if got := statusBadge("archived"); !strings.Contains(got, "archived") {
		t.Errorf("statusBadge fallback = %q, want the raw word", got)
	}
}

func TestActiveBadge(t *testing.T) {
	if !strings.Contains(activeBadge(true), "active") {
		t.Error("activeBadge(true) should render 'active'")
	}
	if !strings.Contains(activeBadge(false), "inactive") {
		t.Error("activeBadge(false) should render 'inactive'")
	}
}
