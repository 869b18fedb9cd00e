package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/grably/adminctl/pkg/domain"
)

func loadedShops() shopsModel {
	m := newShopsModel(testClient())
	m, _ = m.Update(shopsLoadedMsg{shops: []domain.Shop{
		{ID: 10, Name: "Fresh Mart", Category: "grocery", OwnerName: "Ana Cruz", OwnerEmail: "ana@example.com", Status: domain.ShopStatusPending, CreatedAt: time.Now()},
		{ID: 11, Name: "Tech Hub", Category: "electronics", OwnerName: "Ben Okafor", Status: domain.ShopStatusApproved, CreatedAt: time.Now()},
	}})
	return m
}

func TestShopsApprovePendingOnly(t *testing.T) {
	m := loadedShops()
	_, cmd := m.Update(keyMsg("a"))
	if cmd == nil {
		t.Fatal("'a' on a pending shop should issue the approve call")
	}

	m.cursor = 1 // already approved
	_, cmd = m.Update(keyMsg("a"))
	if cmd != nil {
		t.Error("'a' on a non-pending shop must be a no-op")
	}
}

func TestShopsRejectPrefillsReason(t *testing.T) {
	m := loadedShops()
	m, _ = m.Update(keyMsg("x"))
	if m.mode != shopsReject {
		t.Fatal("'x' should open the reason editor")
	}
	if m.reason == "" {
		t.Fatal("reason should come prefilled")
	}
	if !m.editing() {
		t.Error("the reason editor should count as editing")
	}

	// The admin replaces the default with their own wording.
	for range m.reason {
		m, _ = m.Update(keyMsg("backspace"))
	}
	for _, r := range "fake listings" {
		m, _ = m.Update(keyMsg(string(r)))
	}
	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter with a reason should issue the reject call")
	}
	if m.mode != shopsList {
		t.Error("submitting should return to the list")
	}
}

func TestShopsRejectRequiresReason(t *testing.T) {
	m := loadedShops()
	m, _ = m.Update(keyMsg("x"))
	for range m.reason {
		m, _ = m.Update(keyMsg("backspace"))
	}
	m, cmd := m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Fatal("an empty reason must not submit")
	}
	if m.mode != shopsReject {
		t.Error("the editor should stay open")
	}
}

func TestShopsRejectNotOfferedForDecided(t *testing.T) {
	m := loadedShops()
	m.cursor = 1
	m, _ = m.Update(keyMsg("x"))
	if m.mode != shopsList {
		t.Error("'x' on a decided shop must be a no-op")
	}
}

func TestShopsViewShowsStatuses(t *testing.T) {
	m := loadedShops()
	out := m.View()
	for _, want := range []string{"Fresh Mart", "pending", "approved"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
