package domain

import "testing"

func TestUserActive(t *testing.T) {
	if !(User{Status: UserStatusActive}).Active() {
		t.Error("expected active user to report Active()")
	}
	if (User{Status: UserStatusInactive}).Active() {
		t.Error("inactive user should not report Active()")
	}
}
