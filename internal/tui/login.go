package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grably/adminctl/pkg/client"
)

// Login form fields, in tab order.
const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// loginModel is the sign-in form. It owns nothing but the two inputs; the
// session transition happens in the App when loginDoneMsg succeeds.
type loginModel struct {
	client     *client.Client
	email      string
	password   string
	focus      int
	submitting bool
	errMsg     string
	animFrame  int
	width      int
}

func newLoginModel(c *client.Client) loginModel {
	return loginModel{client: c}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	req := client.LoginRequest{Email: m.email, Password: m.password}
	if err := validate.Struct(req); err != nil {
		m.errMsg = validationMessage(err)
		return m, nil
	}
	m.submitting = true
	m.errMsg = ""
	c := m.client
	return m, func() tea.Msg {
		resp, err := c.Login(context.Background(), req)
		return loginDoneMsg{resp: resp, err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			// 401 means bad credentials here; anything else is surfaced as-is.
			if client.IsUnauthorized(msg.err) {
				m.errMsg = "invalid credentials"
			} else {
				m.errMsg = client.ErrorMessage(msg.err)
			}
		}

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.focus = (m.focus + 1) % loginFieldCount
		case "shift+tab", "up":
			m.focus = (m.focus + loginFieldCount - 1) % loginFieldCount
		case "enter":
			if m.focus == loginFieldEmail {
				m.focus = loginFieldPassword
				return m, nil
			}
			return m.submit()
		default:
			if m.focus == loginFieldEmail {
				m.email = editRune(m.email, msg.String())
			} else {
				m.password = editRune(m.password, msg.String())
			}
		}
	}
	return m, nil
}

func (m loginModel) View() string {
	out := " " + selectedStyle.Render("Admin Panel") + "\n"
	out += " " + dimStyle.Render("sign in to your account") + "\n\n"
	out += renderField("email", m.email, "admin@example.com", m.focus == loginFieldEmail, false, m.animFrame) + "\n"
	out += renderField("password", m.password, "••••••••", m.focus == loginFieldPassword, true, m.animFrame) + "\n"
	if m.errMsg != "" {
		out += "\n " + errStyle.Render(m.errMsg) + "\n"
	}
	if m.submitting {
		out += "\n " + dimStyle.Render("signing in...") + "\n"
	}
	return out
}
