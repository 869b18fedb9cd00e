package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grably/adminctl/pkg/domain"
)

// Shimmer animation for the GRABLY logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "G R A B L Y" as a flowing wave of blue light.
// Deep navy (#17255c) -> bright azure (#60a5fa).
func renderShimmerLogo(frame int) string {
	const text = "GRABLY"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// One smooth wave advancing through the text
		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Navy (23, 37, 92) -> azure (96, 165, 250)
		r := clampByte(23 + b*(96-23))
		g := clampByte(37 + b*(165-37))
		bl := clampByte(92 + b*(250-92))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Accent: Grably primary blue
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa")).
			Bold(true)

	// Status badges
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d399"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	// Forms
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3a4150"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	flashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))
)

// helpEntry renders a "key label" pair for the help line.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// statusBadge colors a status word the way the web panel's badges did:
// green for healthy states, amber for pending-ish ones, red for the rest.
func statusBadge(status string) string {
	switch status {
	case domain.UserStatusActive, domain.ShopStatusApproved, domain.OrderStatusCompleted:
		return successStyle.Render(status)
	case domain.ShopStatusPending, domain.OrderStatusProcessing:
		return warningStyle.Render(status)
	case domain.UserStatusInactive, domain.ShopStatusRejected, domain.OrderStatusCancelled:
		return dangerStyle.Render(status)
	default:
		return dimStyle.Render(status)
	}
}

// activeBadge renders the isActive boolean of shopkeeper/admin accounts.
func activeBadge(active bool) string {
	if active {
		return successStyle.Render("active")
	}
	return dangerStyle.Render("inactive")
}
