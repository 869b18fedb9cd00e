package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grably/adminctl/pkg/client"
	"github.com/grably/adminctl/pkg/domain"
)

type ordersLoadedMsg struct {
	orders []domain.Order
	err    error
}

type orderDetailMsg struct {
	order *domain.Order
	err   error
}

type orderMutatedMsg struct {
	err error
}

type ordersModel struct {
	client *client.Client
	orders []domain.Order
	cursor int

	detail *domain.Order

	err     string
	flash   string
	loading bool
	width   int
	height  int
}

func newOrdersModel(c *client.Client) ordersModel {
	return ordersModel{client: c, loading: true}
}

func (m ordersModel) Init() tea.Cmd {
	return m.load()
}

func (m ordersModel) load() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		orders, err := c.ListOrders(context.Background(), client.ListParams{Limit: pageSize})
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (m ordersModel) selected() (domain.Order, bool) {
	if len(m.orders) == 0 || m.cursor >= len(m.orders) {
		return domain.Order{}, false
	}
	return m.orders[m.cursor], true
}

func (m ordersModel) Update(msg tea.Msg) (ordersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ordersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
		} else {
			m.orders = msg.orders
			m.err = ""
			if m.cursor >= len(m.orders) {
				m.cursor = 0
			}
		}

	case orderDetailMsg:
		m.loading = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
		} else {
			m.detail = msg.order
			m.err = ""
		}

	case orderMutatedMsg:
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
			return m, nil
		}
		// Refresh whichever view is showing.
		m.loading = true
		if m.detail != nil {
			c := m.client
			id := m.detail.ID
			return m, tea.Batch(m.load(), func() tea.Msg {
				order, err := c.GetOrder(context.Background(), id)
				return orderDetailMsg{order: order, err: err}
			})
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ordersModel) handleKey(msg tea.KeyMsg) (ordersModel, tea.Cmd) {
	if m.detail != nil {
		switch msg.String() {
		case "esc":
			m.detail = nil
		case "s":
			c := m.client
			id := m.detail.ID
			next := domain.NextOrderStatus(m.detail.Status)
			m.flash = "moving to " + next
			return m, func() tea.Msg {
				return orderMutatedMsg{err: c.UpdateOrderStatus(context.Background(), id, next)}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.orders)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "r":
		m.loading = true
		return m, m.load()
	case "enter":
		if o, ok := m.selected(); ok {
			c := m.client
			id := o.ID
			m.loading = true
			return m, func() tea.Msg {
				order, err := c.GetOrder(context.Background(), id)
				return orderDetailMsg{order: order, err: err}
			}
		}
	case "s":
		if o, ok := m.selected(); ok {
			c := m.client
			id := o.ID
			next := domain.NextOrderStatus(o.Status)
			m.flash = fmt.Sprintf("#%d → %s", o.ID, next)
			return m, func() tea.Msg {
				return orderMutatedMsg{err: c.UpdateOrderStatus(context.Background(), id, next)}
			}
		}
	}
	return m, nil
}

func (m ordersModel) View() string {
	var b strings.Builder

	if m.detail != nil {
		o := m.detail
		b.WriteString("\n " + selectedStyle.Render(fmt.Sprintf("Order #%d", o.ID)) + "  " + statusBadge(o.Status) + "\n\n")
		line := func(label, value string) {
			b.WriteString(" " + labelStyle.Render(padStr(label, 12)) + normalStyle.Render(value) + "\n")
		}
		line("customer", o.CustomerName)
		if o.CustomerEmail != "" {
			line("email", o.CustomerEmail)
		}
		if o.Shop != "" {
			line("shop", o.Shop)
		}
		line("placed", formatTime(o.CreatedAt))
		line("total", formatMoney(o.Total))
		if len(o.Items) > 0 {
			b.WriteString("\n " + selectedStyle.Render("Items") + "\n")
			for _, it := range o.Items {
				b.WriteString(fmt.Sprintf("   %s %s %s\n",
					normalStyle.Render(padStr(it.Name, 30)),
					dimStyle.Render(fmt.Sprintf("x%-3d", it.Quantity)),
					normalStyle.Render(formatMoney(it.Price))))
			}
		}
		if m.err != "" {
			b.WriteString("\n " + errStyle.Render("error: "+m.err) + "\n")
		} else if m.flash != "" {
			b.WriteString("\n " + dimStyle.Render(m.flash) + "\n")
		}
		return b.String()
	}

	if m.loading && len(m.orders) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if len(m.orders) == 0 {
		b.WriteString("\n " + dimStyle.Render("no orders found") + "\n")
		return b.String()
	}

	b.WriteString(" " + metaStyle.Render(fmt.Sprintf("  %-6s %-22s %-20s %-6s %-10s %-12s %s", "ID", "CUSTOMER", "SHOP", "ITEMS", "TOTAL", "STATUS", "PLACED")) + "\n")
	for i, o := range m.orders {
		cursor := " "
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
		}
		b.WriteString(fmt.Sprintf(" %s %s %s %s %s %s %s %s\n",
			cursor,
			metaStyle.Render(fmt.Sprintf("#%-5d", o.ID)),
			normalStyle.Render(padStr(o.CustomerName, 22)),
			dimStyle.Render(padStr(o.Shop, 20)),
			normalStyle.Render(fmt.Sprintf("%-6d", o.ItemCount)),
			normalStyle.Render(padStr(formatMoney(o.Total), 10)),
			padStr(statusBadge(o.Status), 12),
			metaStyle.Render(formatTime(o.CreatedAt))))
	}

	if m.flash != "" {
		b.WriteString("\n " + dimStyle.Render(m.flash) + "\n")
	}
	return b.String()
}

func (m ordersModel) helpKeys() string {
	if m.detail != nil {
		return helpEntry("s", "advance status") + "  " + helpEntry("esc", "back")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "detail") + "  " + helpEntry("s", "advance status") + "  " + helpEntry("r", "refresh")
}
