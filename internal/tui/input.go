package tui

import "unicode/utf8"

// pageSize is the default number of rows fetched per list call.
const pageSize = 50

// maxInputLen is the maximum number of runes allowed in form inputs.
const maxInputLen = 2000

// editRune processes a keystroke for inline text editing.
// Handles backspace (rune-aware) and single printable characters.
// Returns the text unchanged for non-printable keys (enter, esc, etc.).
// Input is clamped to maxInputLen runes.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// renderField renders one labeled form field. Secret fields mask their
// value; the focused field shows a blinking block cursor.
func renderField(label, value, placeholder string, focused, secret bool, animFrame int) string {
	shown := value
	if secret && value != "" {
		masked := make([]rune, utf8.RuneCountInString(value))
		for i := range masked {
			masked[i] = '•'
		}
		shown = string(masked)
	}

	line := " " + labelStyle.Render(padStr(label, 10)) + " "
	if !focused {
		if shown == "" {
			return line + inputPlaceholderStyle.Render(placeholder)
		}
		return line + normalStyle.Render(shown)
	}
	cursor := " "
	if (animFrame/4)%2 == 0 {
		cursor = accentStyle.Render("█")
	}
	if shown == "" {
		return line + cursor
	}
	return line + selectedStyle.Render(shown) + cursor
}

// renderChoice renders a cycling form field (notification type, audience).
func renderChoice(label, value string, focused bool) string {
	line := " " + labelStyle.Render(padStr(label, 10)) + " "
	if focused {
		return line + accentStyle.Render("< "+value+" >")
	}
	return line + normalStyle.Render(value)
}
