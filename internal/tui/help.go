package tui

import "strings"

type helpItem struct {
	keys  string
	label string
	url   string
}

// helpItems backs the help overlay. Entries with a url open in the browser.
var helpItems = []helpItem{
	{"1-7", "switch between pages", ""},
	{"j/k", "move the cursor in tables", ""},
	{"/", "filter the current table", ""},
	{"r", "reload the current page", ""},
	{"c", "copy the selected row's email", ""},
	{"ctrl+x", "sign out", ""},
	{"", "admin guide", "https://grably.io/docs/admin"},
	{"", "report an issue", "https://grably.io/support"},
}

func helpView(cursor int) string {
	var b strings.Builder
	b.WriteString("\n " + selectedStyle.Render("Keys") + "\n\n")
	for i, item := range helpItems {
		marker := "  "
		if i == cursor {
			marker = " " + accentStyle.Render("▸")
		}
		if item.url != "" {
			b.WriteString(marker + " " + normalStyle.Render(item.label) + " " + metaStyle.Render(item.url) + "\n")
			continue
		}
		b.WriteString(marker + " " + helpKeyStyle.Render(padStr(item.keys, 8)) + normalStyle.Render(item.label) + "\n")
	}
	return b.String()
}
