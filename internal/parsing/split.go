// Package parsing provides best-effort extraction of structured resume
// data from model-generated markdown. Every function in this package is
// total: malformed input degrades to empty values, never to an error,
// because generated text is inherently variable and partial structure is
// more useful than a hard failure.
package parsing

import "strings"

// SplitTopLevel splits an item header line into its top-level fields.
// A dash-like rune (em dash, en dash or hyphen) separates fields only
// when it sits at parenthesis depth 0 with a single space on each side;
// dashes inside parentheses belong to date ranges and stay literal.
func SplitTopLevel(line string) []string {
	var parts []string
	var buf strings.Builder
	depth := 0
	runes := []rune(line)

	for i, ch := range runes {
		switch {
		case ch == '(':
			depth++
		case ch == ')' && depth > 0:
			depth--
		}
		if depth == 0 && isDashRune(ch) &&
			i > 0 && i+1 < len(runes) &&
			runes[i-1] == ' ' && runes[i+1] == ' ' {
			if s := strings.TrimSpace(buf.String()); s != "" {
				parts = append(parts, s)
			}
			buf.Reset()
			continue
		}
		buf.WriteRune(ch)
	}
	if s := strings.TrimSpace(buf.String()); s != "" {
		parts = append(parts, s)
	}
	return parts
}

func isDashRune(r rune) bool {
	return r == '—' || r == '–' || r == '-'
}
