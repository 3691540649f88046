package composing

import (
	"regexp"
	"strings"
)

var (
	qualifierPattern = regexp.MustCompile(`(?i)\s*\((?:optional|inferred|native|fluent|proficient|basic|intermediate|advanced)[^)]*\)`)
	boldQualifier    = regexp.MustCompile(`\*\*([^*]+?)\s*\([^)]*\)\s*\*\*`)
)

// Sanitize cleans a composed document before it is displayed or
// exported: emphasis underscores are dropped, stray double hyphens
// become a pipe separator, and qualifier parentheticals such as
// "(optional)" or "(Native)" are removed from body text and from any
// bold heading.
func Sanitize(md string) string {
	out := strings.ReplaceAll(md, "_", "")
	out = strings.ReplaceAll(out, "--", " | ")
	out = qualifierPattern.ReplaceAllString(out, "")
	out = boldQualifier.ReplaceAllStringFunc(out, func(m string) string {
		sub := boldQualifier.FindStringSubmatch(m)
		return "**" + strings.TrimSpace(sub[1]) + "**"
	})
	return out
}
