package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grably/adminctl/pkg/client"
	"github.com/grably/adminctl/pkg/domain"
)

type shopsLoadedMsg struct {
	shops []domain.Shop
	err   error
}

type shopMutatedMsg struct {
	err error
}

type shopsMode int

const (
	shopsList shopsMode = iota
	shopsSearch
	shopsReject
	shopsConfirm
)

type shopsModel struct {
	client *client.Client
	shops  []domain.Shop
	cursor int
	mode   shopsMode
	search string

	rejectID   int64
	reason     string
	submitting bool

	err       string
	flash     string
	loading   bool
	animFrame int
	width     int
	height    int
}

func newShopsModel(c *client.Client) shopsModel {
	return shopsModel{client: c, loading: true}
}

func (m shopsModel) editing() bool {
	return m.mode != shopsList
}

func (m shopsModel) Init() tea.Cmd {
	return m.load()
}

func (m shopsModel) load() tea.Cmd {
	c := m.client
	search := m.search
	return func() tea.Msg {
		shops, err := c.ListShops(context.Background(), client.ListParams{Limit: pageSize, Search: search})
		return shopsLoadedMsg{shops: shops, err: err}
	}
}

func (m shopsModel) selected() (domain.Shop, bool) {
	if len(m.shops) == 0 || m.cursor >= len(m.shops) {
		return domain.Shop{}, false
	}
	return m.shops[m.cursor], true
}

func (m shopsModel) Update(msg tea.Msg) (shopsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case shopsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
		} else {
			m.shops = msg.shops
			m.err = ""
			if m.cursor >= len(m.shops) {
				m.cursor = 0
			}
		}

	case shopMutatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
			return m, nil
		}
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m shopsModel) handleKey(msg tea.KeyMsg) (shopsModel, tea.Cmd) {
	switch m.mode {
	case shopsSearch:
		switch msg.String() {
		case "enter":
			m.mode = shopsList
			m.cursor = 0
			m.loading = true
			return m, m.load()
		case "esc":
			m.mode = shopsList
			m.search = ""
			m.loading = true
			return m, m.load()
		default:
			m.search = editRune(m.search, msg.String())
		}
		return m, nil

	case shopsReject:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.mode = shopsList
		case "enter", "ctrl+s":
			if strings.TrimSpace(m.reason) == "" {
				return m, nil
			}
			m.submitting = true
			c := m.client
			id := m.rejectID
			reason := m.reason
			m.mode = shopsList
			m.flash = "rejected"
			return m, func() tea.Msg {
				return shopMutatedMsg{err: c.RejectShop(context.Background(), id, reason)}
			}
		default:
			m.reason = editRune(m.reason, msg.String())
		}
		return m, nil

	case shopsConfirm:
		switch msg.String() {
		case "y":
			m.mode = shopsList
			if s, ok := m.selected(); ok {
				c := m.client
				id := s.ID
				return m, func() tea.Msg {
					return shopMutatedMsg{err: c.DeleteShop(context.Background(), id)}
				}
			}
		case "n", "esc":
			m.mode = shopsList
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.shops)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.mode = shopsSearch
		m.search = ""
	case "r":
		m.loading = true
		return m, m.load()
	case "a":
		if s, ok := m.selected(); ok && s.Pending() {
			c := m.client
			id := s.ID
			m.flash = "approved " + s.Name
			return m, func() tea.Msg {
				return shopMutatedMsg{err: c.ApproveShop(context.Background(), id)}
			}
		}
	case "x":
		if s, ok := m.selected(); ok && s.Pending() {
			m.mode = shopsReject
			m.rejectID = s.ID
			m.reason = "Does not meet requirements"
		}
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = shopsConfirm
		}
	case "c":
		if s, ok := m.selected(); ok && s.OwnerEmail != "" {
			if err := clipboard.WriteAll(s.OwnerEmail); err == nil {
				m.flash = "copied " + s.OwnerEmail
			}
		}
	}
	return m, nil
}

func (m shopsModel) View() string {
	var b strings.Builder

	if m.mode == shopsReject {
		b.WriteString("\n " + selectedStyle.Render("Reject shop") + "\n\n")
		b.WriteString(renderField("reason", m.reason, "", true, false, m.animFrame) + "\n")
		b.WriteString("\n " + dimStyle.Render("enter to send, esc to cancel") + "\n")
		return b.String()
	}

	if m.mode == shopsSearch || m.search != "" {
		b.WriteString(" " + accentStyle.Render("/") + selectedStyle.Render(m.search))
		if m.mode == shopsSearch {
			b.WriteString(accentStyle.Render("█"))
		}
		b.WriteString("\n")
	}

	if m.loading && len(m.shops) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if len(m.shops) == 0 {
		b.WriteString("\n " + dimStyle.Render("no shops found") + "\n")
		return b.String()
	}

	b.WriteString(" " + metaStyle.Render(fmt.Sprintf("  %-5s %-22s %-14s %-20s %-10s %s", "ID", "NAME", "CATEGORY", "OWNER", "STATUS", "REGISTERED")) + "\n")
	for i, s := range m.shops {
		cursor := " "
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
		}
		b.WriteString(fmt.Sprintf(" %s %s %s %s %s %s %s\n",
			cursor,
			metaStyle.Render(fmt.Sprintf("#%-4d", s.ID)),
			normalStyle.Render(padStr(s.Name, 22)),
			dimStyle.Render(padStr(s.Category, 14)),
			normalStyle.Render(padStr(s.OwnerName, 20)),
			padStr(statusBadge(s.Status), 10),
			metaStyle.Render(formatDate(s.CreatedAt))))
	}

	if s, ok := m.selected(); ok && s.Status == domain.ShopStatusRejected && s.RejectReason != "" {
		b.WriteString("\n " + dimStyle.Render("reason: "+s.RejectReason) + "\n")
	}

	if m.mode == shopsConfirm {
		if s, ok := m.selected(); ok {
			b.WriteString("\n " + warningStyle.Render(fmt.Sprintf("delete %s? (y/n)", s.Name)) + "\n")
		}
	} else if m.flash != "" {
		b.WriteString("\n " + dimStyle.Render(m.flash) + "\n")
	}
	return b.String()
}

func (m shopsModel) helpKeys() string {
	switch m.mode {
	case shopsReject:
		return helpEntry("enter", "reject") + "  " + helpEntry("esc", "cancel")
	case shopsSearch:
		return helpEntry("enter", "search") + "  " + helpEntry("esc", "clear")
	default:
		return helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("a", "approve") + "  " + helpEntry("x", "reject") + "  " + helpEntry("d", "delete") + "  " + helpEntry("c", "copy") + "  " + helpEntry("r", "refresh")
	}
}
