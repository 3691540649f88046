// Package composing serializes a structured resume document back into
// canonical markdown. Composition is total: every missing field has a
// placeholder so the output is always a structurally complete document.
package composing

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Placeholders used for empty fields so the composed document always
// keeps its shape.
const (
	PlaceholderName         = "[FULL NAME]"
	PlaceholderTitle        = "[Role / Title]"
	PlaceholderLocation     = "[City, Country]"
	PlaceholderEmail        = "[Email]"
	PlaceholderSocials      = "[LinkedIn/Website]"
	PlaceholderCompany      = "[Company]"
	PlaceholderPosition     = "[Position]"
	PlaceholderInstitution  = "[Institution]"
	PlaceholderFieldOfStudy = "[Field of Study]"
	PlaceholderDate         = "Mon YYYY"
)

// ComposeMarkdown serializes the document to the canonical markdown
// shape: identity header block, then each optional section emitted as a
// bold heading plus body only when the body is non-empty.
func ComposeMarkdown(doc types.ResumeDocument) string {
	parts := []string{
		"# " + orPlaceholder(doc.Profile.Name, PlaceholderName),
		"_**" + orPlaceholder(doc.Profile.Title, PlaceholderTitle) + "**_  ",
		orPlaceholder(doc.Profile.Location, PlaceholderLocation) + " • " +
			orPlaceholder(doc.Profile.Email, PlaceholderEmail) + " • " +
			orPlaceholder(doc.Profile.Socials, PlaceholderSocials),
		optionalSection("Summary", doc.Summary),
		optionalSection("Experience", experienceBlock(doc.Experience)),
		optionalSection("Education", educationBlock(doc.Education)),
		optionalSection("Skills", skillsBlock(doc.Skills)),
		optionalSection("Certifications (optional)", doc.Certifications),
		optionalSection("Projects or Achievements (optional)", doc.Projects),
		optionalSection("Languages (optional)", doc.Languages),
	}
	return strings.Join(parts, "\n")
}

// optionalSection emits a bold heading followed by the body, or nothing
// at all when the body is empty after trimming.
func optionalSection(title, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return "\n**" + title + "**\n" + strings.TrimSpace(body) + "\n"
}

// skillsBlock renders skills one bullet per item. Text that already
// contains newlines is treated as pre-formatted; otherwise it is split
// on commas.
func skillsBlock(skills string) string {
	if skills == "" {
		return ""
	}
	if strings.Contains(skills, "\n") {
		return skills
	}
	var lines []string
	for _, s := range strings.Split(skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, "- "+s)
		}
	}
	return strings.Join(lines, "\n")
}

func experienceBlock(items []types.ExperienceItem) string {
	var blocks []string
	for _, it := range items {
		header := itemHeaderLine(
			orPlaceholder(it.Company, PlaceholderCompany),
			orPlaceholder(it.Position, PlaceholderPosition),
			it.From, it.To, it.Location,
		)
		blocks = append(blocks, strings.Join(append([]string{header}, descriptionBullets(it.Description)...), "\n"))
	}
	return strings.Join(blocks, "\n")
}

func educationBlock(items []types.EducationItem) string {
	var blocks []string
	for _, it := range items {
		header := itemHeaderLine(
			orPlaceholder(it.Institution, PlaceholderInstitution),
			orPlaceholder(it.FieldOfStudy, PlaceholderFieldOfStudy),
			it.From, it.To, it.Location,
		)
		blocks = append(blocks, strings.Join(append([]string{header}, descriptionBullets(it.Description)...), "\n"))
	}
	return strings.Join(blocks, "\n")
}

// itemHeaderLine renders "- First — Second (from - to)" with the
// location appended as a trailing segment when present.
func itemHeaderLine(first, second, from, to, location string) string {
	rangeStr := orPlaceholder(from, PlaceholderDate) + " - " + orPlaceholder(to, PlaceholderDate)
	header := "- " + first + " — " + second + " (" + rangeStr + ")"
	if location != "" {
		header += " — " + location
	}
	return header
}

// descriptionBullets renders one indented bullet per non-empty
// description line.
func descriptionBullets(description string) []string {
	var bullets []string
	for _, l := range strings.Split(description, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			bullets = append(bullets, "  - "+l)
		}
	}
	return bullets
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
