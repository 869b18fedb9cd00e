package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/grably/adminctl/pkg/domain"
)

func loadedOrders() ordersModel {
	m := newOrdersModel(testClient())
	m, _ = m.Update(ordersLoadedMsg{orders: []domain.Order{
		{ID: 100, CustomerName: "Ana Cruz", Shop: "Fresh Mart", ItemCount: 2, Total: 24.50, Status: domain.OrderStatusPending, CreatedAt: time.Now()},
		{ID: 101, CustomerName: "Ben Okafor", Shop: "Tech Hub", ItemCount: 1, Total: 99.99, Status: domain.OrderStatusCompleted, CreatedAt: time.Now()},
	}})
	return m
}

func TestOrdersStatusAdvance(t *testing.T) {
	m := loadedOrders()
	m, cmd := m.Update(keyMsg("s"))
	if cmd == nil {
		t.Fatal("'s' should issue the status update")
	}
	if !strings.Contains(m.flash, domain.OrderStatusProcessing) {
		t.Errorf("flash = %q, want the next status announced", m.flash)
	}
}

func TestOrdersDetailFlow(t *testing.T) {
	m := loadedOrders()
	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should fetch the order detail")
	}

	detail := &domain.Order{
		ID: 100, CustomerName: "Ana Cruz", Total: 24.50, Status: domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{Name: "Bananas", Quantity: 3, Price: 4.50},
			{Name: "Coffee", Quantity: 1, Price: 20.00},
		},
		CreatedAt: time.Now(),
	}
	m, _ = m.Update(orderDetailMsg{order: detail})
	out := m.View()
	for _, want := range []string{"Order #100", "Bananas", "Coffee", "$24.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail view missing %q", want)
		}
	}

	m, _ = m.Update(keyMsg("esc"))
	if m.detail != nil {
		t.Error("esc should leave the detail view")
	}
}

func TestOrdersViewListsRows(t *testing.T) {
	m := loadedOrders()
	out := m.View()
	for _, want := range []string{"#100", "Ana Cruz", "$99.99", "completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
