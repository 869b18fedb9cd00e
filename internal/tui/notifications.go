package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grably/adminctl/pkg/client"
	"github.com/grably/adminctl/pkg/domain"
)

type notifHistoryMsg struct {
	notifs []domain.Notification
	err    error
}

type notifSentMsg struct {
	err error
}

type notifsMode int

const (
	notifsHistory notifsMode = iota
	notifsCompose
)

// Compose focus slots: channel, recipient, title/subject, message.
const (
	notifFocusType = iota
	notifFocusRecipient
	notifFocusTitle
	notifFocusMessage
	notifFieldCount
)

var notifTypes = []string{domain.NotificationTypePush, domain.NotificationTypeEmail}

type notificationsModel struct {
	client *client.Client
	notifs []domain.Notification
	cursor int
	mode   notifsMode

	typeIdx      int
	recipientIdx int
	title        string
	message      string
	focus        int
	formErr      string
	submitting   bool

	err       string
	flash     string
	loading   bool
	animFrame int
	width     int
	height    int
}

func newNotificationsModel(c *client.Client) notificationsModel {
	return notificationsModel{client: c, loading: true}
}

func (m notificationsModel) editing() bool {
	return m.mode == notifsCompose
}

func (m notificationsModel) Init() tea.Cmd {
	return m.load()
}

func (m notificationsModel) load() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		notifs, err := c.NotificationHistory(context.Background(), client.ListParams{Limit: pageSize})
		return notifHistoryMsg{notifs: notifs, err: err}
	}
}

func (m notificationsModel) email() bool {
	return notifTypes[m.typeIdx] == domain.NotificationTypeEmail
}

func (m notificationsModel) submit() (notificationsModel, tea.Cmd) {
	c := m.client
	recipient := domain.NotificationRecipients[m.recipientIdx]
	if m.email() {
		req := client.SendEmailRequest{Recipient: recipient, Subject: m.title, Message: m.message}
		if err := validate.Struct(req); err != nil {
			m.formErr = validationMessage(err)
			return m, nil
		}
		m.submitting = true
		m.formErr = ""
		return m, func() tea.Msg {
			return notifSentMsg{err: c.SendEmail(context.Background(), req)}
		}
	}
	req := client.SendNotificationRequest{
		Type:      domain.NotificationTypePush,
		Recipient: recipient,
		Title:     m.title,
		Message:   m.message,
	}
	if err := validate.Struct(req); err != nil {
		m.formErr = validationMessage(err)
		return m, nil
	}
	m.submitting = true
	m.formErr = ""
	return m, func() tea.Msg {
		return notifSentMsg{err: c.SendNotification(context.Background(), req)}
	}
}

func (m notificationsModel) Update(msg tea.Msg) (notificationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case notifHistoryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = client.ErrorMessage(msg.err)
		} else {
			m.notifs = msg.notifs
			m.err = ""
			if m.cursor >= len(m.notifs) {
				m.cursor = 0
			}
		}

	case notifSentMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = client.ErrorMessage(msg.err)
			return m, nil
		}
		m.mode = notifsHistory
		m.flash = "sent"
		m.title, m.message = "", ""
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m notificationsModel) handleKey(msg tea.KeyMsg) (notificationsModel, tea.Cmd) {
	if m.mode == notifsCompose {
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.mode = notifsHistory
			m.formErr = ""
		case "tab", "down":
			m.focus = (m.focus + 1) % notifFieldCount
		case "shift+tab", "up":
			m.focus = (m.focus + notifFieldCount - 1) % notifFieldCount
		case "left":
			switch m.focus {
			case notifFocusType:
				m.typeIdx = (m.typeIdx + len(notifTypes) - 1) % len(notifTypes)
			case notifFocusRecipient:
				m.recipientIdx = (m.recipientIdx + len(domain.NotificationRecipients) - 1) % len(domain.NotificationRecipients)
			}
		case "right":
			switch m.focus {
			case notifFocusType:
				m.typeIdx = (m.typeIdx + 1) % len(notifTypes)
			case notifFocusRecipient:
				m.recipientIdx = (m.recipientIdx + 1) % len(domain.NotificationRecipients)
			}
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus < notifFieldCount-1 {
				m.focus++
				return m, nil
			}
			return m.submit()
		default:
			switch m.focus {
			case notifFocusTitle:
				m.title = editRune(m.title, msg.String())
			case notifFocusMessage:
				m.message = editRune(m.message, msg.String())
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.notifs)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "r":
		m.loading = true
		return m, m.load()
	case "n":
		m.mode = notifsCompose
		m.focus = notifFocusType
		m.formErr = ""
	}
	return m, nil
}

func (m notificationsModel) View() string {
	var b strings.Builder

	if m.mode == notifsCompose {
		b.WriteString("\n " + selectedStyle.Render("Send notification") + "\n\n")
		b.WriteString(renderChoice("channel", notifTypes[m.typeIdx], m.focus == notifFocusType) + "\n")
		b.WriteString(renderChoice("recipient", domain.NotificationRecipients[m.recipientIdx], m.focus == notifFocusRecipient) + "\n")
		titleLabel := "title"
		if m.email() {
			titleLabel = "subject"
		}
		b.WriteString(renderField(titleLabel, m.title, "", m.focus == notifFocusTitle, false, m.animFrame) + "\n")
		b.WriteString(renderField("message", m.message, "", m.focus == notifFocusMessage, false, m.animFrame) + "\n")
		if m.formErr != "" {
			b.WriteString("\n " + errStyle.Render(m.formErr) + "\n")
		}
		if m.submitting {
			b.WriteString("\n " + dimStyle.Render("sending...") + "\n")
		}
		return b.String()
	}

	if m.loading && len(m.notifs) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}

	b.WriteString("\n " + dimStyle.Render("press n to compose a notification") + "\n\n")

	if len(m.notifs) == 0 {
		b.WriteString(" " + dimStyle.Render("nothing sent yet") + "\n")
		return b.String()
	}

	b.WriteString(" " + selectedStyle.Render("History") + "\n")
	for i, n := range m.notifs {
		cursor := " "
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
		}
		subject := n.Title
		if subject == "" {
			subject = n.Subject
		}
		b.WriteString(fmt.Sprintf(" %s %s %s %s %s\n",
			cursor,
			dimStyle.Render(padStr(n.Type, 6)),
			normalStyle.Render(padStr(subject, 30)),
			dimStyle.Render(padStr("to "+n.Recipient, 12)),
			metaStyle.Render(formatTime(n.SentAt))))
		if i == m.cursor {
			b.WriteString("   " + dimStyle.Render(truncStr(n.Message, 70)) + "\n")
		}
	}

	if m.flash != "" {
		b.WriteString("\n " + dimStyle.Render(m.flash) + "\n")
	}
	return b.String()
}

func (m notificationsModel) helpKeys() string {
	if m.mode == notifsCompose {
		return helpEntry("tab", "next") + "  " + helpEntry("←/→", "choose") + "  " + helpEntry("ctrl+s", "send") + "  " + helpEntry("esc", "cancel")
	}
	return helpEntry("n", "compose") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("r", "refresh")
}
