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

type adminsLoadedMsg struct {
	admins []domain.Admin
	err    error
}

type adminSavedMsg struct {
	err error
}

type adminMutatedMsg struct {
	err error
}

type adminsMode int

const (
	adminsList adminsMode = iota
	adminsSearch
	adminsForm
	adminsConfirm
)

// Roles the backend accepts for administrator accounts.
var adminRoles = []string{"admin", "superadmin"}

type adminsModel struct {
	client *client.Client
	admins []domain.Admin
	cursor int
	mode   adminsMode
	search string

	editID     int64
	name       string
	email      string
	roleIdx    int
	password   string
	focus      int
	formErr    string
	submitting bool

	err     string
	flash   string
	loading bool
	width   int
	height  int
}

func newAdminsModel(c *client.Client) adminsModel {
	return adminsModel{client: c, loading: true}
}

func (m adminsModel) editing() bool {
	return m.mode != adminsList
}

func (m adminsModel) Init() tea.Cmd {
	return m.load()
}

func (m adminsModel) load() tea.Cmd {
	c := m.client
	search := m.search
	return func() tea.Msg {
		admins, err := c.ListAdmins(context.Background(), client.ListParams{Limit: pageSize, Search: search})
		return adminsLoadedMsg{admins: admins, err: err}
	}
}

func (m adminsModel) selected() (domain.Admin, bool) {
	if len(m.admins) == 0 || m.cursor >= len(m.admins) {
		return domain.Admin{}, false
	}
	return m.admins[m.cursor], true
}

// fieldCount is 4 when creating (name, email, role, password) and 2 when
// editing (name, email); role and password never change through this form.
func (m adminsModel) fieldCount() int {
	if m.editID != 0 {
		return 2
	}
	return 4
}

func (m adminsModel) submitForm() (adminsModel, tea.Cmd) {
	c := m.client
	if m.editID == 0 {
		req := client.CreateAdminRequest{
			Name:     m.name,
			Email:    m.email,
			Role:     adminRoles[m.roleIdx],
			Password: m.password,
		}
		if err := validate.Struct(req); err != nil {
			m.formErr = validationMessage(err)
			return m, nil
		}
		m.submitting = true
		m.formErr = ""
		return m, func() tea.Msg {
			_, err := c.CreateAdmin(context.Background(), req)
			return adminSavedMsg{err: err}
		}
	}
	req := client.UpdateUserRequest{Name: m.name, Email: m.email}
	if err := validate.Struct(req); err != nil {
		m.formErr = validationMessage(err)
		return m, nil
	}
	m.submitting = true
	m.formErr = ""
	id := m.editID
	return m, func() tea.Msg {
		_, err := c.UpdateAdmin(context.Background(), id, req)
		return adminSavedMsg{err: err}
	}
}

func (m adminsModel) Update(msg tea.Msg) (adminsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case adminsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
		} else {
			m.admins = msg.admins
			m.err = ""
			if m.cursor >= len(m.admins) {
				m.cursor = 0
			}
		}

	case adminSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = client.ErrorMessage(msg.err)
			return m, nil
		}
		m.mode = adminsList
		m.flash = "saved"
		m.loading = true
		return m, m.load()

	case adminMutatedMsg:
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

func (m adminsModel) handleKey(msg tea.KeyMsg) (adminsModel, tea.Cmd) {
	switch m.mode {
	case adminsSearch:
		switch msg.String() {
		case "enter":
			m.mode = adminsList
			m.cursor = 0
			m.loading = true
			return m, m.load()
		case "esc":
			m.mode = adminsList
			m.search = ""
			m.loading = true
			return m, m.load()
		default:
			m.search = editRune(m.search, msg.String())
		}
		return m, nil

	case adminsForm:
		if m.submitting {
			return m, nil
		}
		onRole := m.editID == 0 && m.focus == 2
		switch msg.String() {
		case "esc":
			m.mode = adminsList
			m.formErr = ""
		case "tab", "down":
			m.focus = (m.focus + 1) % m.fieldCount()
		case "shift+tab", "up":
			m.focus = (m.focus + m.fieldCount() - 1) % m.fieldCount()
		case "left":
			if onRole {
				m.roleIdx = (m.roleIdx + len(adminRoles) - 1) % len(adminRoles)
			}
		case "right":
			if onRole {
				m.roleIdx = (m.roleIdx + 1) % len(adminRoles)
			}
		case "ctrl+s", "enter":
			if msg.String() == "enter" && m.focus < m.fieldCount()-1 {
				m.focus++
				return m, nil
			}
			return m.submitForm()
		default:
			switch m.focus {
			case 0:
				m.name = editRune(m.name, msg.String())
			case 1:
				m.email = editRune(m.email, msg.String())
			case 3:
				m.password = editRune(m.password, msg.String())
			}
		}
		return m, nil

	case adminsConfirm:
		switch msg.String() {
		case "y":
			m.mode = adminsList
			if a, ok := m.selected(); ok {
				c := m.client
				id := a.ID
				return m, func() tea.Msg {
					return adminMutatedMsg{err: c.DeleteAdmin(context.Background(), id)}
				}
			}
		case "n", "esc":
			m.mode = adminsList
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.admins)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.mode = adminsSearch
		m.search = ""
	case "r":
		m.loading = true
		return m, m.load()
	case "n":
		m.mode = adminsForm
		m.editID = 0
		m.name, m.email, m.password = "", "", ""
		m.roleIdx = 0
		m.focus = 0
		m.formErr = ""
	case "e":
		if a, ok := m.selected(); ok {
			m.mode = adminsForm
			m.editID = a.ID
			m.name, m.email = a.Name, a.Email
			m.focus = 0
			m.formErr = ""
		}
	case "t":
		if a, ok := m.selected(); ok {
			c := m.client
			id := a.ID
			return m, func() tea.Msg {
				return adminMutatedMsg{err: c.ToggleAdminStatus(context.Background(), id)}
			}
		}
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = adminsConfirm
		}
	case "c":
		if a, ok := m.selected(); ok {
			if err := clipboard.WriteAll(a.Email); err == nil {
				m.flash = "copied " + a.Email
			}
		}
	}
	return m, nil
}

func (m adminsModel) View() string {
	var b strings.Builder

	if m.mode == adminsForm {
		title := "Add admin"
		if m.editID != 0 {
			title = fmt.Sprintf("Edit admin #%d", m.editID)
		}
		b.WriteString("\n " + selectedStyle.Render(title) + "\n\n")
		b.WriteString(renderField("name", m.name, "", m.focus == 0, false, 0) + "\n")
		b.WriteString(renderField("email", m.email, "", m.focus == 1, false, 0) + "\n")
		if m.editID == 0 {
			b.WriteString(renderChoice("role", adminRoles[m.roleIdx], m.focus == 2) + "\n")
			b.WriteString(renderField("password", m.password, "", m.focus == 3, true, 0) + "\n")
		}
		if m.formErr != "" {
			b.WriteString("\n " + errStyle.Render(m.formErr) + "\n")
		}
		if m.submitting {
			b.WriteString("\n " + dimStyle.Render("saving...") + "\n")
		}
		return b.String()
	}

	if m.mode == adminsSearch || m.search != "" {
		b.WriteString(" " + accentStyle.Render("/") + selectedStyle.Render(m.search))
		if m.mode == adminsSearch {
			b.WriteString(accentStyle.Render("█"))
		}
		b.WriteString("\n")
	}

	if m.loading && len(m.admins) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if len(m.admins) == 0 {
		b.WriteString("\n " + dimStyle.Render("no admins found") + "\n")
		return b.String()
	}

	b.WriteString(" " + metaStyle.Render(fmt.Sprintf("  %-5s %-22s %-26s %-12s %-8s %s", "ID", "NAME", "EMAIL", "ROLE", "STATUS", "JOINED")) + "\n")
	for i, a := range m.admins {
		cursor := " "
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
		}
		b.WriteString(fmt.Sprintf(" %s %s %s %s %s %s %s\n",
			cursor,
			metaStyle.Render(fmt.Sprintf("#%-4d", a.ID)),
			normalStyle.Render(padStr(a.Name, 22)),
			dimStyle.Render(padStr(a.Email, 26)),
			normalStyle.Render(padStr(a.Role, 12)),
			padStr(activeBadge(a.IsActive), 8),
			metaStyle.Render(formatDate(a.CreatedAt))))
	}

	if m.mode == adminsConfirm {
		if a, ok := m.selected(); ok {
			b.WriteString("\n " + warningStyle.Render(fmt.Sprintf("delete %s? (y/n)", a.Email)) + "\n")
		}
	} else if m.flash != "" {
		b.WriteString("\n " + dimStyle.Render(m.flash) + "\n")
	}
	return b.String()
}

func (m adminsModel) helpKeys() string {
	switch m.mode {
	case adminsForm:
		return helpEntry("tab", "next") + "  " + helpEntry("←/→", "role") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	case adminsSearch:
		return helpEntry("enter", "search") + "  " + helpEntry("esc", "clear")
	default:
		return helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("t", "toggle") + "  " + helpEntry("d", "delete") + "  " + helpEntry("c", "copy") + "  " + helpEntry("r", "refresh")
	}
}
