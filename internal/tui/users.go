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

// -- messages --

type usersLoadedMsg struct {
	users []domain.User
	err   error
}

// userSavedMsg is the result of a create or update.
type userSavedMsg struct {
	err error
}

// userMutatedMsg is the result of a toggle or delete; both just reload.
type userMutatedMsg struct {
	err error
}

// -- model --

type usersMode int

const (
	usersList usersMode = iota
	usersSearch
	usersForm
	usersConfirm
)

// User form fields, in tab order: name, email, phone, password.
const userFieldCount = 4

var userFieldLabels = [userFieldCount]string{"name", "email", "phone", "password"}

type usersModel struct {
	client *client.Client
	users  []domain.User
	cursor int
	mode   usersMode
	search string

	editID     int64 // 0 = creating
	fields     [userFieldCount]string
	focus      int
	formErr    string
	submitting bool

	err       string
	flash     string
	loading   bool
	animFrame int
	width     int
	height    int
}

func newUsersModel(c *client.Client) usersModel {
	return usersModel{client: c, loading: true}
}

func (m usersModel) editing() bool {
	return m.mode != usersList
}

func (m usersModel) Init() tea.Cmd {
	return m.load()
}

func (m usersModel) load() tea.Cmd {
	c := m.client
	search := m.search
	return func() tea.Msg {
		users, err := c.ListUsers(context.Background(), client.ListParams{Limit: pageSize, Search: search})
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m usersModel) selected() (domain.User, bool) {
	if len(m.users) == 0 || m.cursor >= len(m.users) {
		return domain.User{}, false
	}
	return m.users[m.cursor], true
}

func (m usersModel) submitForm() (usersModel, tea.Cmd) {
	c := m.client
	if m.editID == 0 {
		req := client.CreateUserRequest{
			Name:     m.fields[0],
			Email:    m.fields[1],
			Phone:    m.fields[2],
			Password: m.fields[3],
		}
		if err := validate.Struct(req); err != nil {
			m.formErr = validationMessage(err)
			return m, nil
		}
		m.submitting = true
		m.formErr = ""
		return m, func() tea.Msg {
			_, err := c.CreateUser(context.Background(), req)
			return userSavedMsg{err: err}
		}
	}
	req := client.UpdateUserRequest{
		Name:  m.fields[0],
		Email: m.fields[1],
		Phone: m.fields[2],
	}
	if err := validate.Struct(req); err != nil {
		m.formErr = validationMessage(err)
		return m, nil
	}
	m.submitting = true
	m.formErr = ""
	id := m.editID
	return m, func() tea.Msg {
		_, err := c.UpdateUser(context.Background(), id, req)
		return userSavedMsg{err: err}
	}
}

func (m usersModel) Update(msg tea.Msg) (usersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
		} else {
			m.users = msg.users
			m.err = ""
			if m.cursor >= len(m.users) {
				m.cursor = 0
			}
		}

	case userSavedMsg:
		m.submitting = false
		if msg.err != nil {
			// Backend validation (409, 422...) renders inside the form.
			m.formErr = client.ErrorMessage(msg.err)
			return m, nil
		}
		m.mode = usersList
		m.flash = "saved"
		m.loading = true
		return m, m.load()

	case userMutatedMsg:
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

func (m usersModel) handleKey(msg tea.KeyMsg) (usersModel, tea.Cmd) {
	switch m.mode {
	case usersSearch:
		switch msg.String() {
		case "enter":
			m.mode = usersList
			m.cursor = 0
			m.loading = true
			return m, m.load()
		case "esc":
			m.mode = usersList
			m.search = ""
			m.loading = true
			return m, m.load()
		default:
			m.search = editRune(m.search, msg.String())
		}
		return m, nil

	case usersForm:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.mode = usersList
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

	case usersConfirm:
		switch msg.String() {
		case "y":
			m.mode = usersList
			if u, ok := m.selected(); ok {
				c := m.client
				id := u.ID
				return m, func() tea.Msg {
					return userMutatedMsg{err: c.DeleteUser(context.Background(), id)}
				}
			}
		case "n", "esc":
			m.mode = usersList
		}
		return m, nil
	}

	// list mode
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.users)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.mode = usersSearch
		m.search = ""
	case "r":
		m.loading = true
		return m, m.load()
	case "n":
		m.mode = usersForm
		m.editID = 0
		m.fields = [userFieldCount]string{}
		m.focus = 0
		m.formErr = ""
	case "e":
		if u, ok := m.selected(); ok {
			m.mode = usersForm
			m.editID = u.ID
			m.fields = [userFieldCount]string{u.Name, u.Email, u.Phone, ""}
			m.focus = 0
			m.formErr = ""
		}
	case "t":
		if u, ok := m.selected(); ok {
			c := m.client
			id := u.ID
			return m, func() tea.Msg {
				return userMutatedMsg{err: c.ToggleUserStatus(context.Background(), id)}
			}
		}
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = usersConfirm
		}
	case "c":
		if u, ok := m.selected(); ok {
			if err := clipboard.WriteAll(u.Email); err == nil {
				m.flash = "copied " + u.Email
			}
		}
	}
	return m, nil
}

// fieldCount hides the password field when editing an existing user.
func (m usersModel) fieldCount() int {
	if m.editID != 0 {
		return userFieldCount - 1
	}
	return userFieldCount
}

func (m usersModel) View() string {
	var b strings.Builder

	if m.mode == usersForm {
		title := "Add user"
		if m.editID != 0 {
			title = fmt.Sprintf("Edit user #%d", m.editID)
		}
		b.WriteString("\n " + selectedStyle.Render(title) + "\n\n")
		for i := 0; i < m.fieldCount(); i++ {
			b.WriteString(renderField(userFieldLabels[i], m.fields[i], "", m.focus == i, userFieldLabels[i] == "password", m.animFrame) + "\n")
		}
		if m.formErr != "" {
			b.WriteString("\n " + errStyle.Render(m.formErr) + "\n")
		}
		if m.submitting {
			b.WriteString("\n " + dimStyle.Render("saving...") + "\n")
		}
		return b.String()
	}

	if m.mode == usersSearch || m.search != "" {
		b.WriteString(" " + accentStyle.Render("/") + selectedStyle.Render(m.search))
		if m.mode == usersSearch {
			b.WriteString(accentStyle.Render("█"))
		}
		b.WriteString("\n")
	}

	if m.loading && len(m.users) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if len(m.users) == 0 {
		b.WriteString("\n " + dimStyle.Render("no users found") + "\n")
		return b.String()
	}

	b.WriteString(" " + metaStyle.Render(fmt.Sprintf("  %-5s %-22s %-26s %-14s %-8s %-10s %s", "ID", "NAME", "EMAIL", "PHONE", "ROLE", "STATUS", "JOINED")) + "\n")
	for i, u := range m.users {
		cursor := " "
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
		}
		row := fmt.Sprintf(" %s %s %s %s %s %s %s %s",
			cursor,
			metaStyle.Render(fmt.Sprintf("#%-4d", u.ID)),
			normalStyle.Render(padStr(u.Name, 22)),
			dimStyle.Render(padStr(u.Email, 26)),
			normalStyle.Render(padStr(u.Phone, 14)),
			dimStyle.Render(padStr(u.Role, 8)),
			padStr(statusBadge(u.Status), 10),
			metaStyle.Render(formatDate(u.CreatedAt)))
		b.WriteString(row + "\n")
	}

	if m.mode == usersConfirm {
		if u, ok := m.selected(); ok {
			b.WriteString("\n " + warningStyle.Render(fmt.Sprintf("delete %s? (y/n)", u.Email)) + "\n")
		}
	} else if m.flash != "" {
		b.WriteString("\n " + dimStyle.Render(m.flash) + "\n")
	}
	return b.String()
}

func (m usersModel) helpKeys() string {
	switch m.mode {
	case usersForm:
		return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	case usersSearch:
		return helpEntry("enter", "search") + "  " + helpEntry("esc", "clear")
	default:
		return helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("t", "toggle") + "  " + helpEntry("d", "delete") + "  " + helpEntry("c", "copy") + "  " + helpEntry("r", "refresh")
	}
}
