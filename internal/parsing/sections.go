package parsing

import (
	"regexp"
	"strings"
)

// boldHeadingPattern matches a standalone bold line like "**Skills**",
// which marks the start of a named document section.
var boldHeadingPattern = regexp.MustCompile(`^\*\*(.+)\*\*\s*$`)

// FindSection returns the body lines of the section introduced by the
// given label (or any alias). Heading matching is whitespace- and
// case-insensitive, so "**Certifications (optional)**" is matched by the
// alias "Certifications (optional)" regardless of spacing. The body runs
// until the next standalone bold heading. Returns nil when no heading
// matches.
func FindSection(lines []string, label string, aliases ...string) []string {
	start := findHeadingIndex(lines, append([]string{label}, aliases...))
	if start == -1 {
		return nil
	}

	var body []string
	for i := start + 1; i < len(lines); i++ {
		if boldHeadingPattern.MatchString(strings.TrimSpace(lines[i])) {
			break
		}
		body = append(body, lines[i])
	}
	return body
}

// SectionText returns the section body joined and trimmed, or "" when
// the section is absent.
func SectionText(lines []string, label string, aliases ...string) string {
	body := FindSection(lines, label, aliases...)
	return strings.TrimSpace(strings.Join(body, "\n"))
}

func findHeadingIndex(lines []string, labels []string) int {
	normalized := make([]string, len(lines))
	for i, l := range lines {
		normalized[i] = strings.ToLower(stripWhitespace(l))
	}
	for _, lbl := range labels {
		key := "**" + strings.ToLower(stripWhitespace(lbl)) + "**"
		for i, n := range normalized {
			if n == key {
				return i
			}
		}
	}
	return -1
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}
