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

type keepersLoadedMsg struct {
	keepers []domain.Shopkeeper
	err     error
}

type keeperSavedMsg struct {
	err error
}

type keeperMutatedMsg struct {
	err error
}

type keepersMode int

const (
	keepersList keepersMode = iota
	keepersSearch
	keepersForm
	keepersConfirm
)

const keeperFieldCount = 5

var keeperFieldLabels = [keeperFieldCount]string{"name", "email", "phone", "shop name", "password"}

type shopkeepersModel struct {
	client  *client.Client
	keepers []domain.Shopkeeper
	cursor  int
	mode    keepersMode
	search  string

	editID     int64
	fields     [keeperFieldCount]string
	focus      int
	formErr    string
	submitting bool

	err     string
	flash   string
	loading bool
	width   int
	height  int
}

func newShopkeepersModel(c *client.Client) shopkeepersModel {
	return shopkeepersModel{client: c, loading: true}
}

func (m shopkeepersModel) editing() bool {
	return m.mode != keepersList
}

func (m shopkeepersModel) Init() tea.Cmd {
	return m.load()
}

func (m shopkeepersModel) load() tea.Cmd {
	c := m.client
	search := m.search
	return func() tea.Msg {
		keepers, err := c.ListShopkeepers(context.Background(), client.ListParams{Limit: pageSize, Search: search})
		return keepersLoadedMsg{keepers: keepers, err: err}
	}
}

func (m shopkeepersModel) selected() (domain.Shopkeeper, bool) {
	if len(m.keepers) == 0 || m.cursor >= len(m.keepers) {
		return domain.Shopkeeper{}, false
	}
	return m.keepers[m.cursor], true
}

// fieldCount drops the password field when editing.
func (m shopkeepersModel) fieldCount() int {
	if m.editID != 0 {
		return keeperFieldCount - 1
	}
	return keeperFieldCount
}

func (m shopkeepersModel) submitForm() (shopkeepersModel, tea.Cmd) {
	c := m.client
	if m.editID == 0 {
		req := client.CreateShopkeeperRequest{
			Name:     m.fields[0],
			Email:    m.fields[1],
			Phone:    m.fields[2],
			ShopName: m.fields[3],
			Password: m.fields[4],
		}
		if err := validate.Struct(req); err != nil {
			m.formErr = validationMessage(err)
			return m, nil
		}
		m.submitting = true
		m.formErr = ""
		return m, func() tea.Msg {
			_, err := c.CreateShopkeeper(context.Background(), req)
			return keeperSavedMsg{err: err}
		}
	}
	req := client.UpdateUserRequest{Name: m.fields[0], Email: m.fields[1], Phone: m.fields[2]}
	if err := validate.Struct(req); err != nil {
		m.formErr = validationMessage(err)
		return m, nil
	}
	m.submitting = true
	m.formErr = ""
	id := m.editID
	return m, func() tea.Msg {
		_, err := c.UpdateShopkeeper(context.Background(), id, req)
		return keeperSavedMsg{err: err}
	}
}

func (m shopkeepersModel) Update(msg tea.Msg) (shopkeepersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case keepersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
		} else {
			m.keepers = msg.keepers
			m.err = ""
			if m.cursor >= len(m.keepers) {
				m.cursor = 0
			}
		}

	case keeperSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = client.ErrorMessage(msg.err)
			return m, nil
		}
		m.mode = keepersList
		m.flash = "saved"
		m.loading = true
		return m, m.load()

	case keeperMutatedMsg:
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

func (m shopkeepersModel) handleKey(msg tea.KeyMsg) (shopkeepersModel, tea.Cmd) {
	switch m.mode {
	case keepersSearch:
		switch msg.String() {
		case "enter":
			m.mode = keepersList
			m.cursor = 0
			m.loading = true
			return m, m.load()
		case "esc":
			m.mode = keepersList
			m.search = ""
			m.loading = true
			return m, m.load()
		default:
			m.search = editRune(m.search, msg.String())
		}
		return m, nil

	case keepersForm:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.mode = keepersList
			m.formErr = ""
		case "tab", "down":
			m.focus = (m.focus + 1) % m.fieldCount()
		case "shift+tab", "up":
			m.focus = (m.focus + m.fieldCount() - 1) % m.fieldCount()
		case "ctrl+s", "enter":
			if msg.String() == "enter" && m.focus < m.fieldCount()-1 {
				m.focus++
				return m, nil
			}
			return m.submitForm()
		default:
			m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
		}
		return m, nil

	case keepersConfirm:
		switch msg.String() {
		case "y":
			m.mode = keepersList
			if k, ok := m.selected(); ok {
				c := m.client
				id := k.ID
				return m, func() tea.Msg {
					return keeperMutatedMsg{err: c.DeleteShopkeeper(context.Background(), id)}
				}
			}
		case "n", "esc":
			m.mode = keepersList
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.keepers)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.mode = keepersSearch
		m.search = ""
	case "r":
		m.loading = true
		return m, m.load()
	case "n":
		m.mode = keepersForm
		m.editID = 0
		m.fields = [keeperFieldCount]string{}
		m.focus = 0
		m.formErr = ""
	case "e":
		if k, ok := m.selected(); ok {
			m.mode = keepersForm
			m.editID = k.ID
			m.fields = [keeperFieldCount]string{k.Name, k.Email, k.Phone, k.ShopName, ""}
			m.focus = 0
			m.formErr = ""
		}
	case "t":
		if k, ok := m.selected(); ok {
			c := m.client
			id := k.ID
			return m, func() tea.Msg {
				return keeperMutatedMsg{err: c.ToggleShopkeeperStatus(context.Background(), id)}
			}
		}
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = keepersConfirm
		}
	case "c":
		if k, ok := m.selected(); ok {
			if err := clipboard.WriteAll(k.Email); err == nil {
				m.flash = "copied " + k.Email
			}
		}
	}
	return m, nil
}

func (m shopkeepersModel) View() string {
	var b strings.Builder

	if m.mode == keepersForm {
		title := "Add shopkeeper"
		if m.editID != 0 {
			title = fmt.Sprintf("Edit shopkeeper #%d", m.editID)
		}
		b.WriteString("\n " + selectedStyle.Render(title) + "\n\n")
		for i := 0; i < m.fieldCount(); i++ {
			b.WriteString(renderField(keeperFieldLabels[i], m.fields[i], "", m.focus == i, keeperFieldLabels[i] == "password", 0) + "\n")
		}
		if m.formErr != "" {
			b.WriteString("\n " + errStyle.Render(m.formErr) + "\n")
		}
		if m.submitting {
			b.WriteString("\n " + dimStyle.Render("saving...") + "\n")
		}
		return b.String()
	}

	if m.mode == keepersSearch || m.search != "" {
		b.WriteString(" " + accentStyle.Render("/") + selectedStyle.Render(m.search))
		if m.mode == keepersSearch {
			b.WriteString(accentStyle.Render("█"))
		}
		b.WriteString("\n")
	}

	if m.loading && len(m.keepers) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if len(m.keepers) == 0 {
		b.WriteString("\n " + dimStyle.Render("no shopkeepers found") + "\n")
		return b.String()
	}

	b.WriteString(" " + metaStyle.Render(fmt.Sprintf("  %-5s %-22s %-26s %-20s %-8s %s", "ID", "NAME", "EMAIL", "SHOP", "STATUS", "JOINED")) + "\n")
	for i, k := range m.keepers {
		cursor := " "
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
		}
		b.WriteString(fmt.Sprintf(" %s %s %s %s %s %s %s\n",
			cursor,
			metaStyle.Render(fmt.Sprintf("#%-4d", k.ID)),
			normalStyle.Render(padStr(k.Name, 22)),
			dimStyle.Render(padStr(k.Email, 26)),
			normalStyle.Render(padStr(k.ShopName, 20)),
			padStr(activeBadge(k.IsActive), 8),
			metaStyle.Render(formatDate(k.CreatedAt))))
	}

	if m.mode == keepersConfirm {
		if k, ok := m.selected(); ok {
			b.WriteString("\n " + warningStyle.Render(fmt.Sprintf("delete %s? (y/n)", k.Email)) + "\n")
		}
	} else if m.flash != "" {
		b.WriteString("\n " + dimStyle.Render(m.flash) + "\n")
	}
	return b.String()
}

func (m shopkeepersModel) helpKeys() string {
	switch m.mode {
	case keepersForm:
		return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	case keepersSearch:
		return helpEntry("enter", "search") + "  " + helpEntry("esc", "clear")
	default:
		return helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("t", "toggle") + "  " + helpEntry("d", "delete") + "  " + helpEntry("c", "copy") + "  " + helpEntry("r", "refresh")
	}
}
