package domain

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		if !ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = false, want true", s)
		}
	}
	if ValidOrderStatus("shipped") {
		t.Error("ValidOrderStatus(\"shipped\") = true, want false")
	}
	if ValidOrderStatus("") {
		t.Error("ValidOrderStatus(\"\") = true, want false")
	}
}

func TestNextOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{OrderStatusPending, OrderStatusProcessing},
		{OrderStatusProcessing, OrderStatusCompleted},
		{OrderStatusCompleted, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPending},
		{"bogus", OrderStatusPending},
	}
	for _, tc := range tests {
		if got := NextOrderStatus(tc.in); got != tc.want {
			t.Errorf("NextOrderStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
