// Package dates provides normalization of the heterogeneous date tokens
// found in generated resume text into a canonical "Mon YYYY" form.
package dates

import (
	"regexp"
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var (
	yearMonthPattern = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})(?:[-/](\d{1,2}))?$`)
	monthYearPattern = regexp.MustCompile(`^(\d{1,2})[-/](\d{4})$`)
	namedPattern     = regexp.MustCompile(`(?i)^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+(\d{4})$`)
	bareYearPattern  = regexp.MustCompile(`^\d{4}$`)
	bareMonthPattern = regexp.MustCompile(`^\d{1,2}$`)

	// Range separators must be flanked by whitespace so a single token
	// like "2024-06" is never split into two dates.
	rangeSeparator = regexp.MustCompile(`(?i)\s+(?:–|—|-|to)\s+`)

	parenGroupPattern = regexp.MustCompile(`\(([^)]+)\)`)
)

// ToMonthYear converts a single date token to its canonical form.
// Rules are applied in order, first match wins; anything unrecognized
// is returned unchanged so the caller never has to handle a failure.
func ToMonthYear(token string) string {
	t := strings.TrimSpace(token)
	if t == "" {
		return ""
	}
	if strings.EqualFold(t, "present") {
		return "Present"
	}
	if m := yearMonthPattern.FindStringSubmatch(t); m != nil {
		return monthName(m[2]) + " " + m[1]
	}
	if m := monthYearPattern.FindStringSubmatch(t); m != nil {
		return monthName(m[1]) + " " + m[2]
	}
	if m := namedPattern.FindStringSubmatch(t); m != nil {
		mon := m[1]
		return strings.ToUpper(mon[:1]) + strings.ToLower(mon[1:]) + " " + m[2]
	}
	if bareYearPattern.MatchString(t) {
		return t
	}
	if bareMonthPattern.MatchString(t) {
		// Month-only token: no year information available.
		return monthName(t)
	}
	return t
}

// NormalizeRange splits a range string into its from/to halves and
// canonicalizes each. A missing second half yields an empty "to".
// Segments beyond the second are ignored.
func NormalizeRange(s string) (from, to string) {
	r := strings.TrimSpace(s)
	if r == "" {
		return "", ""
	}
	parts := splitRange(r)
	fromRaw := r
	toRaw := ""
	if len(parts) > 0 {
		fromRaw = parts[0]
	}
	if len(parts) > 1 {
		toRaw = parts[1]
	}
	return ToMonthYear(fromRaw), ToMonthYear(toRaw)
}

// NormalizeRangesInMarkdown rewrites every parenthesized date range in a
// markdown document to canonical form, e.g. "(2022-06 – 2023-08)" becomes
// "(Jun 2022 - Aug 2023)". Parenthesized groups that don't look like date
// ranges are left untouched.
func NormalizeRangesInMarkdown(md string) string {
	return parenGroupPattern.ReplaceAllStringFunc(md, func(full string) string {
		inner := full[1 : len(full)-1]
		from, to := NormalizeRange(inner)
		if from == "" && to == "" {
			return full
		}
		if to == "" {
			return "(" + from + ")"
		}
		return "(" + from + " - " + to + ")"
	})
}

func splitRange(r string) []string {
	var parts []string
	for _, p := range rangeSeparator.Split(r, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// monthName maps a numeric month string to its 3-letter name, clamping
// out-of-range values into [1,12].
func monthName(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	if n < 1 {
		n = 1
	}
	if n > 12 {
		n = 12
	}
	return monthNames[n-1]
}
