// Package tui renders the Grably admin panel in the terminal: a login
// page gated by the route guard, and one tab per backend resource.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grably/adminctl/internal/browser"
	"github.com/grably/adminctl/pkg/client"
	"github.com/grably/adminctl/pkg/domain"
)

// Session is the slice of the session store the UI needs. It is injected
// at construction; the route guard reads it on every navigation.
type Session interface {
	Authenticated() bool
	User() *domain.Admin
	SetAuth(user *domain.Admin, token string) error
	ClearAuth() error
	TokenExpiry() (time.Time, bool)
}

// SessionExpiredMsg is sent from the client's unauthorized hook when any
// request comes back 401: the session is already cleared, the app just has
// to land on the login page. Redundant deliveries are harmless.
type SessionExpiredMsg struct{}

// loginDoneMsg carries the result of the login exchange.
type loginDoneMsg struct {
	resp *client.LoginResponse
	err  error
}

// signOutMsg asks the app to end the session deliberately.
type signOutMsg struct{}

// signedOutMsg reports that the sign-out sequence finished: backend
// invalidation attempted, local session cleared.
type signedOutMsg struct{}

// App is the root Bubbletea model.
type App struct {
	client *client.Client
	sess   Session
	route  route

	login   loginModel
	dash    dashboardModel
	users   usersModel
	keepers shopkeepersModel
	admins  adminsModel
	shops   shopsModel
	orders  ordersModel
	notifs  notificationsModel

	helpOpen   bool
	helpCursor int
	flash      string
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates the admin panel rooted at start. The guard decides what
// actually renders first: unauthenticated sessions always begin at login.
func NewApp(c *client.Client, sess Session, start route) App {
	return App{
		client:  c,
		sess:    sess,
		route:   resolveRoute(start, sess.Authenticated()),
		login:   newLoginModel(c),
		dash:    newDashboardModel(c),
		users:   newUsersModel(c),
		keepers: newShopkeepersModel(c),
		admins:  newAdminsModel(c),
		shops:   newShopsModel(c),
		orders:  newOrdersModel(c),
		notifs:  newNotificationsModel(c),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(shimmerTickCmd(), a.pageInit(a.route))
}

func (a App) pageInit(r route) tea.Cmd {
	switch r {
	case routeDashboard:
		return a.dash.Init()
	case routeUsers:
		return a.users.Init()
	case routeShopkeepers:
		return a.keepers.Init()
	case routeAdmins:
		return a.admins.Init()
	case routeShops:
		return a.shops.Init()
	case routeOrders:
		return a.orders.Init()
	case routeNotifications:
		return a.notifs.Init()
	}
	return nil
}

// navigate routes to target through the guard. Re-selecting the current
// tab is a no-op.
func (a App) navigate(target route) (App, tea.Cmd) {
	resolved := resolveRoute(target, a.sess.Authenticated())
	if resolved == a.route {
		return a, nil
	}
	a.route = resolved
	if resolved == routeLogin {
		a.login = newLoginModel(a.client)
	}
	return a, a.pageInit(resolved)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.dash, _ = a.dash.Update(bodyMsg)
		a.users, _ = a.users.Update(bodyMsg)
		a.keepers, _ = a.keepers.Update(bodyMsg)
		a.admins, _ = a.admins.Update(bodyMsg)
		a.shops, _ = a.shops.Update(bodyMsg)
		a.orders, _ = a.orders.Update(bodyMsg)
		a.notifs, _ = a.notifs.Update(bodyMsg)
		a.login, _ = a.login.Update(msg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		a.login.animFrame = a.frame
		a.notifs.animFrame = a.frame
		a.users.animFrame = a.frame
		a.shops.animFrame = a.frame
		return a, shimmerTickCmd()

	case SessionExpiredMsg:
		// The unauthorized hook already cleared the store; every delivery
		// beyond the first finds the guard already pointing at login.
		a.flash = "session expired — sign in again"
		return a.navigate(routeLogin)

	case signOutMsg:
		// Backend invalidation needs the bearer token still in the store, so
		// the local clear happens after the request, not before. Best-effort:
		// the session ends locally whatever the backend says.
		c := a.client
		sess := a.sess
		return a, func() tea.Msg {
			c.Logout(context.Background()) //nolint:errcheck
			sess.ClearAuth()               //nolint:errcheck // sign-out proceeds even if the save fails
			return signedOutMsg{}
		}

	case signedOutMsg:
		a.flash = "signed out"
		return a.navigate(routeLogin)

	case loginDoneMsg:
		if msg.err == nil && msg.resp != nil && msg.resp.User != nil && msg.resp.AccessToken() != "" {
			if err := a.sess.SetAuth(msg.resp.User, msg.resp.AccessToken()); err != nil {
				a.login.errMsg = fmt.Sprintf("save session: %v", err)
				a.login.submitting = false
				return a, nil
			}
			a.flash = ""
			return a.navigate(routeDashboard)
		}
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.url != "" {
					browser.Open(item.url) //nolint:errcheck // best-effort browser open
				}
			}
			return a, nil
		}

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global keys apply only outside forms and inline editors.
		if !a.isEditing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "h":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "ctrl+x":
				if a.sess.Authenticated() {
					return a, func() tea.Msg { return signOutMsg{} }
				}
			case "1":
				return a.navigate(routeDashboard)
			case "2":
				return a.navigate(routeUsers)
			case "3":
				return a.navigate(routeShopkeepers)
			case "4":
				return a.navigate(routeAdmins)
			case "5":
				return a.navigate(routeShops)
			case "6":
				return a.navigate(routeOrders)
			case "7":
				return a.navigate(routeNotifications)
			}
		}
	}

	return a.updatePage(msg)
}

// updatePage forwards msg to the active page model.
func (a App) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.route {
	case routeLogin:
		a.login, cmd = a.login.Update(msg)
	case routeDashboard:
		a.dash, cmd = a.dash.Update(msg)
	case routeUsers:
		a.users, cmd = a.users.Update(msg)
	case routeShopkeepers:
		a.keepers, cmd = a.keepers.Update(msg)
	case routeAdmins:
		a.admins, cmd = a.admins.Update(msg)
	case routeShops:
		a.shops, cmd = a.shops.Update(msg)
	case routeOrders:
		a.orders, cmd = a.orders.Update(msg)
	case routeNotifications:
		a.notifs, cmd = a.notifs.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	switch a.route {
	case routeLogin:
		return true
	case routeUsers:
		return a.users.editing()
	case routeShopkeepers:
		return a.keepers.editing()
	case routeAdmins:
		return a.admins.editing()
	case routeShops:
		return a.shops.editing()
	case routeNotifications:
		return a.notifs.editing()
	}
	return false
}

func (a App) View() string {
	if a.route == routeLogin {
		body := a.login.View()
		if a.flash != "" {
			body = " " + flashStyle.Render(a.flash) + "\n" + body
		}
		logo := renderShimmerLogo(a.frame)
		logoPad := (a.width - lipgloss.Width(logo)) / 2
		if logoPad < 0 {
			logoPad = 0
		}
		help := " " + helpEntry("tab", "next field") + "  " + helpEntry("enter", "sign in") + "  " + helpEntry("ctrl+c", "quit")
		out := strings.Repeat(" ", logoPad) + logo + "\n\n" + body + "\n" + help
		return strings.TrimRight(truncateToHeight(out, a.height), "\n")
	}

	// Header: centered shimmer logo + signed-in identity
	logo := renderShimmerLogo(a.frame)
	logoPad := (a.width - lipgloss.Width(logo)) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	idLine := ""
	if u := a.sess.User(); u != nil {
		parts := []string{u.Name, u.Email}
		if exp, ok := a.sess.TokenExpiry(); ok {
			if left := time.Until(exp); left > 0 {
				parts = append(parts, fmt.Sprintf("session expires in %s", left.Round(time.Minute)))
			} else {
				parts = append(parts, "session expired")
			}
		}
		idLine = metaStyle.Render(strings.Join(parts, " · "))
	}
	if a.flash != "" {
		idLine = flashStyle.Render(a.flash)
	}
	if idLine != "" {
		idPad := (a.width - lipgloss.Width(idLine)) / 2
		if idPad < 0 {
			idPad = 0
		}
		header += "\n" + strings.Repeat(" ", idPad) + idLine
	} else {
		header += "\n"
	}

	// Tab bar: equal-width columns spread across the terminal
	type tabEntry struct {
		key  string
		name string
		r    route
	}
	tabs := []tabEntry{
		{"1", "Dashboard", routeDashboard},
		{"2", "Users", routeUsers},
		{"3", "Keepers", routeShopkeepers},
		{"4", "Admins", routeAdmins},
		{"5", "Shops", routeShops},
		{"6", "Orders", routeOrders},
		{"7", "Notify", routeNotifications},
	}
	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.r == a.route {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	var body, help string
	switch a.route {
	case routeDashboard:
		body = a.dash.View()
		help = " " + helpEntry("1-7", "tabs") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("ctrl+x", "sign out") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case routeUsers:
		body = a.users.View()
		help = " " + helpEntry("1-7", "tabs") + "  " + a.users.helpKeys()
	case routeShopkeepers:
		body = a.keepers.View()
		help = " " + helpEntry("1-7", "tabs") + "  " + a.keepers.helpKeys()
	case routeAdmins:
		body = a.admins.View()
		help = " " + helpEntry("1-7", "tabs") + "  " + a.admins.helpKeys()
	case routeShops:
		body = a.shops.View()
		help = " " + helpEntry("1-7", "tabs") + "  " + a.shops.helpKeys()
	case routeOrders:
		body = a.orders.View()
		help = " " + helpEntry("1-7", "tabs") + "  " + a.orders.helpKeys()
	case routeNotifications:
		body = a.notifs.View()
		help = " " + helpEntry("1-7", "tabs") + "  " + a.notifs.helpKeys()
	}

	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	// Chrome budget: header(2) + tabs(1) + help(1) = 4 lines + body
	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabBar.String(), body, help)
}
