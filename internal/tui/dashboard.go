package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grably/adminctl/pkg/client"
	"github.com/grably/adminctl/pkg/domain"
)

// dashStatsMsg carries the landing-page numbers, assembled from the list
// endpoints since the backend has no dedicated stats call.
type dashStatsMsg struct {
	users  []domain.User
	shops  []domain.Shop
	orders []domain.Order
	err    error
}

type dashboardModel struct {
	client     *client.Client
	userCount  int
	shopCount  int
	activeShop int
	orders     []domain.Order
	revenue    float64
	loading    bool
	err        string
	width      int
	height     int
}

func newDashboardModel(c *client.Client) dashboardModel {
	return dashboardModel{client: c, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx := context.Background()
		users, err := c.ListUsers(ctx, client.ListParams{Limit: pageSize})
		if err != nil {
			return dashStatsMsg{err: err}
		}
		shops, err := c.ListShops(ctx, client.ListParams{Limit: pageSize})
		if err != nil {
			return dashStatsMsg{err: err}
		}
		orders, err := c.ListOrders(ctx, client.ListParams{Limit: pageSize})
		if err != nil {
			return dashStatsMsg{err: err}
		}
		return dashStatsMsg{users: users, shops: shops, orders: orders}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case dashStatsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
			return m, nil
		}
		m.err = ""
		m.userCount = len(msg.users)
		m.shopCount = len(msg.shops)
		m.activeShop = 0
		for _, s := range msg.shops {
			if s.Status == domain.ShopStatusApproved {
				m.activeShop++
			}
		}
		m.orders = msg.orders
		m.revenue = 0
		for _, o := range msg.orders {
			if o.Status != domain.OrderStatusCancelled {
				m.revenue += o.Total
			}
		}

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.Init()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}

	b.WriteString("\n " + dimStyle.Render("welcome back — here's what's happening") + "\n\n")

	stat := func(label, value string) string {
		return " " + labelStyle.Render(padStr(label, 14)) + selectedStyle.Render(value)
	}
	b.WriteString(stat("users", fmt.Sprintf("%d", m.userCount)) + "\n")
	b.WriteString(stat("shops", fmt.Sprintf("%d (%d active)", m.shopCount, m.activeShop)) + "\n")
	b.WriteString(stat("orders", fmt.Sprintf("%d", len(m.orders))) + "\n")
	b.WriteString(stat("revenue", formatMoney(m.revenue)) + "\n")

	if len(m.orders) > 0 {
		b.WriteString("\n " + selectedStyle.Render("Recent orders") + "\n")
		n := len(m.orders)
		if n > 5 {
			n = 5
		}
		for _, o := range m.orders[:n] {
			b.WriteString(fmt.Sprintf(" %s %s  %s  %s  %s\n",
				metaStyle.Render(fmt.Sprintf("#%-5d", o.ID)),
				normalStyle.Render(padStr(o.CustomerName, 20)),
				normalStyle.Render(padStr(formatMoney(o.Total), 9)),
				statusBadge(o.Status),
				metaStyle.Render(formatTime(o.CreatedAt))))
		}
	}
	return b.String()
}
