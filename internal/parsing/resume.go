package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/dates"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	titleLinePattern  = regexp.MustCompile(`^_.*_\s*$`)
	contactSplit      = regexp.MustCompile(`\s*[•|·]\s*`)
	parenGroup        = regexp.MustCompile(`\([^)]*\)`)
	headerWithDates   = regexp.MustCompile(`^(.*?)\s*\(([^)]*)\)\s*$`)
	itemStartPattern  = regexp.MustCompile(`^-\s+`)
	childBulletPrefix = regexp.MustCompile(`^\s*[-*\x{2022}]\s+`)
)

// ParseResume converts generated markdown into a structured document.
// It never fails: any subsection it cannot make sense of is left at its
// zero value.
func ParseResume(markdown string) types.ResumeDocument {
	lines := splitLines(markdown)

	var doc types.ResumeDocument
	doc.Profile = parseProfile(lines)
	doc.Summary = SectionText(lines, "Summary")
	doc.Experience = parseExperienceItems(FindSection(lines, "Experience"))
	doc.Education = parseEducationItems(FindSection(lines, "Education"))
	doc.Skills = SectionText(lines, "Skills")
	doc.Certifications = SectionText(lines, "Certifications", "Certifications (optional)")
	doc.Projects = SectionText(lines, "Projects or Achievements",
		"Projects or Achievements (optional)", "Projects", "Achievements")
	doc.Languages = SectionText(lines, "Languages", "Languages (optional)")
	return doc
}

// parseProfile extracts the identity header: the "# Name" line, the
// emphasis-wrapped title line, and the first contact line containing a
// bullet/pipe separator.
func parseProfile(lines []string) types.Profile {
	var p types.Profile

	for _, l := range lines {
		t := strings.TrimSpace(l)
		if strings.HasPrefix(t, "# ") {
			p.Name = strings.TrimSpace(strings.TrimPrefix(t, "# "))
			break
		}
	}

	for _, l := range lines {
		t := strings.TrimSpace(l)
		if titleLinePattern.MatchString(t) {
			title := strings.Trim(t, "_")
			title = strings.TrimPrefix(title, "**")
			title = strings.TrimSuffix(title, "**")
			p.Title = strings.TrimSpace(title)
			break
		}
	}

	var contact string
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t != "" && (strings.Contains(t, " • ") || strings.Contains(t, "·") || strings.Contains(t, "|")) {
			contact = t
			break
		}
	}
	if contact == "" {
		return p
	}

	var socials []string
	for _, tok := range contactSplit.Split(contact, -1) {
		v := strings.TrimSpace(tok)
		switch {
		case v == "":
		case strings.Contains(v, "@"):
			if p.Email == "" {
				p.Email = v
			}
		case p.Location == "":
			p.Location = v
		default:
			socials = append(socials, v)
		}
	}
	p.Socials = strings.Join(socials, ", ")
	return p
}

// itemHeader is the common shape of an experience or education header
// line after the leading "- " marker.
type itemHeader struct {
	first    string // company or institution
	second   string // position or field of study
	from, to string
	location string
}

// parseItemHeader interprets a header like
// "Acme Corp — Engineer (Jun 2020 – Aug 2023) — Remote".
// The segment containing a parenthesized group carries the role plus the
// embedded date range; the first segment is the company/institution and
// any trailing segment past the parenthesized one is the location. With
// no parentheses anywhere, segments are read positionally.
func parseItemHeader(header string) itemHeader {
	parts := SplitTopLevel(header)
	var h itemHeader

	parenIdx := -1
	for i, p := range parts {
		if parenGroup.MatchString(p) {
			parenIdx = i
			break
		}
	}

	if parenIdx >= 0 {
		if m := headerWithDates.FindStringSubmatch(parts[parenIdx]); m != nil {
			h.second = strings.TrimSpace(m[1])
			h.from, h.to = dates.NormalizeRange(m[2])
		} else {
			h.second = strings.TrimSpace(parts[parenIdx])
		}
		if len(parts) > 0 {
			h.first = parts[0]
		}
		if len(parts) > parenIdx+1 {
			h.location = parts[len(parts)-1]
		}
		return h
	}

	// No parentheses: positional interpretation.
	if len(parts) > 0 {
		h.first = parts[0]
	}
	if len(parts) > 1 {
		h.second = parts[1]
	}
	if len(parts) > 2 {
		h.location = parts[2]
	}
	return h
}

func parseExperienceItems(body []string) []types.ExperienceItem {
	var items []types.ExperienceItem
	forEachItem(body, func(h itemHeader, description string) {
		items = append(items, types.ExperienceItem{
			Company:     h.first,
			Position:    h.second,
			From:        h.from,
			To:          h.to,
			Location:    h.location,
			Description: description,
		})
	})
	return items
}

func parseEducationItems(body []string) []types.EducationItem {
	var items []types.EducationItem
	forEachItem(body, func(h itemHeader, description string) {
		items = append(items, types.EducationItem{
			Institution:  h.first,
			FieldOfStudy: h.second,
			From:         h.from,
			To:           h.to,
			Location:     h.location,
			Description:  description,
		})
	})
	return items
}

// forEachItem walks an itemized section body. A line starting with "- "
// at column 0 begins a new item; indented bullet lines append to the
// current item's description, one bullet per line.
func forEachItem(body []string, emit func(h itemHeader, description string)) {
	var cur *itemHeader
	var desc []string

	flush := func() {
		if cur != nil {
			emit(*cur, strings.Join(desc, "\n"))
		}
		cur = nil
		desc = nil
	}

	for _, raw := range body {
		line := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if itemStartPattern.MatchString(line) {
			flush()
			h := parseItemHeader(itemStartPattern.ReplaceAllString(line, ""))
			cur = &h
			continue
		}
		if cur != nil && childBulletPrefix.MatchString(line) {
			desc = append(desc, strings.TrimSpace(childBulletPrefix.ReplaceAllString(line, "")))
		}
	}
	flush()
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
