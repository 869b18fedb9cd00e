package domain

import "testing"

func TestShopPending(t *testing.T) {
	if !(Shop{Status: ShopStatusPending}).Pending() {
		t.Error("expected pending shop to report Pending()")
	}
	if (Shop{Status: ShopStatusApproved}).Pending() {
		t.Error("approved shop should not report Pending()")
	}
}
