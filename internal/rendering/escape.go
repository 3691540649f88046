// Package rendering converts canonical resume markdown into styled
// preview and print HTML.
package rendering

import "strings"

// EscapeHTML escapes characters that would otherwise be interpreted as
// markup: & < >
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + 16)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
