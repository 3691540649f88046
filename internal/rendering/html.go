package rendering

import (
	"regexp"
	"strings"
)

var (
	standaloneBoldPattern = regexp.MustCompile(`^\*\*[^*]+\*\*$`)
	trailingQualifier     = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	boldSpanPattern       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	listItemPattern       = regexp.MustCompile(`^[-\x{2022}]\s+`)
	trailingDashPattern   = regexp.MustCompile(`\s*[–-]\s*$`)

	// expDateRangePattern recognizes a month-name date range such as
	// "Jan 2022 – Present" inside an experience row. Year-only and
	// numeric-month ranges are left in place on the left side.
	expDateRangePattern = regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\s*(?:[–-]\s*(?:Present|(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}))?`)
)

// skillsFirstColumn is the number of skill bullets placed in the left
// column of the two-column skills layout.
const skillsFirstColumn = 4

const sectionTitleStyle = "font-weight:700;border-bottom:1px solid #000;padding-bottom:4px;margin:12px 0 8px;"

// headerStage tracks the identity header cursor, active only before the
// first section heading is seen.
type headerStage int

const (
	stageName headerStage = iota
	stageTitle
	stageContact
)

// renderer is the line-fold state machine behind RenderHTML.
type renderer struct {
	parts   []string
	inList  bool
	section string

	collectingSkills bool
	skillsBuffer     []string

	stage headerStage
}

// RenderHTML converts canonical resume markdown into preview markup in
// a single pass over its lines.
func RenderHTML(markdown string) string {
	r := &renderer{}
	for _, raw := range strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n") {
		r.line(strings.TrimRight(raw, " \t"))
	}
	r.flushList()
	return strings.Join(r.parts, "\n")
}

func (r *renderer) line(line string) {
	if strings.TrimSpace(line) == "" {
		r.flushList()
		r.parts = append(r.parts, `<div class="spacer"></div>`)
		return
	}

	// Markdown headings.
	if strings.HasPrefix(line, "# ") {
		r.flushList()
		r.parts = append(r.parts, "<h1>"+EscapeHTML(line[2:])+"</h1>")
		return
	}
	if strings.HasPrefix(line, "## ") {
		r.flushList()
		r.parts = append(r.parts, `<h2 class="section-title" style="`+sectionTitleStyle+`">`+EscapeHTML(line[3:])+"</h2>")
		return
	}
	if strings.HasPrefix(line, "### ") {
		r.flushList()
		r.parts = append(r.parts, `<h3 class="section-title" style="font-weight:700;border-bottom:1px solid #000;padding-bottom:3px;margin:10px 0 6px;">`+EscapeHTML(line[4:])+"</h3>")
		return
	}

	// Section headings written as standalone bold lines like **Skills**.
	if standaloneBoldPattern.MatchString(line) {
		r.flushList()
		title := strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**")
		title = strings.TrimSpace(trailingQualifier.ReplaceAllString(title, ""))
		r.section = title
		r.parts = append(r.parts, `<p class="section-title" style="`+sectionTitleStyle+`"><strong>`+EscapeHTML(title)+"</strong></p>")
		return
	}

	// List items.
	if listItemPattern.MatchString(line) {
		item := listItemPattern.ReplaceAllString(line, "")
		if strings.EqualFold(r.section, "skills") {
			// Buffered separately; flushed as a two-column layout.
			r.collectingSkills = true
			r.skillsBuffer = append(r.skillsBuffer, inlineBold(item))
			return
		}
		if !r.inList {
			r.parts = append(r.parts, "<ul>")
			r.inList = true
		}
		r.parts = append(r.parts, "<li>"+inlineBold(item)+"</li>")
		return
	}

	// Any other content ends a pending skills column buffer.
	if r.collectingSkills {
		r.flushSkills()
	}

	// Identity header lines before the first section heading.
	if r.section == "" {
		switch r.stage {
		case stageName:
			r.parts = append(r.parts, `<p style="text-align:center;font-weight:700;font-size:22px;">`+EscapeHTML(line)+"</p>")
			r.stage = stageTitle
		case stageTitle:
			r.parts = append(r.parts, `<p style="text-align:center;font-weight:700;font-size:16px;">`+EscapeHTML(line)+"</p>")
			r.stage = stageContact
		default:
			r.parts = append(r.parts, `<p style="text-align:center;font-weight:400;font-size:14px;">`+EscapeHTML(line)+"</p>")
		}
		return
	}

	// Experience rows: company/position left, date range right.
	// Indented description bullets are not rows and fall through to
	// paragraph rendering.
	if strings.EqualFold(r.section, "experience") {
		t := strings.TrimSpace(line)
		if !listItemPattern.MatchString(t) {
			r.experienceRow(t)
			return
		}
	}

	r.parts = append(r.parts, "<p>"+inlineBold(line)+"</p>")
}

// experienceRow renders a non-list experience line as a flex row with
// any month-name date range pulled out and right-aligned.
func (r *renderer) experienceRow(t string) {
	m := expDateRangePattern.FindString(t)

	left := t
	if m != "" {
		left = strings.Replace(t, m, "", 1)
		left = trailingDashPattern.ReplaceAllString(left, "")
		left = trailingQualifier.ReplaceAllString(left, "")
		left = strings.TrimSpace(left)
	}

	company := left
	position := ""
	if idx := strings.Index(left, ","); idx != -1 {
		company = left[:idx]
		position = left[idx+1:]
	}

	leftHTML := "<strong>" + EscapeHTML(strings.TrimSpace(company)) + "</strong>"
	if strings.TrimSpace(position) != "" {
		leftHTML += ", <em>" + EscapeHTML(strings.TrimSpace(position)) + "</em>"
	}

	r.parts = append(r.parts,
		`<div class="exp-row" style="display:flex;align-items:baseline;justify-content:space-between;"><div class="left">`+
			leftHTML+`</div><div class="right" style="white-space:nowrap;">`+EscapeHTML(m)+"</div></div>")
}

// flushSkills emits the buffered skills as two fixed columns: the first
// four items on the left, the remainder on the right.
func (r *renderer) flushSkills() {
	if !r.collectingSkills {
		return
	}
	split := skillsFirstColumn
	if split > len(r.skillsBuffer) {
		split = len(r.skillsBuffer)
	}

	r.parts = append(r.parts, `<div class="skills-columns" style="display:grid; grid-template-columns:1fr 1fr; gap:24px;">`)
	r.parts = append(r.parts, "<ul>")
	for _, it := range r.skillsBuffer[:split] {
		r.parts = append(r.parts, "<li>"+it+"</li>")
	}
	r.parts = append(r.parts, "</ul>")
	r.parts = append(r.parts, "<ul>")
	for _, it := range r.skillsBuffer[split:] {
		r.parts = append(r.parts, "<li>"+it+"</li>")
	}
	r.parts = append(r.parts, "</ul>")
	r.parts = append(r.parts, "</div>")

	r.collectingSkills = false
	r.skillsBuffer = nil
}

// flushList closes any open list; a pending skills buffer takes
// precedence and flushes as columns instead.
func (r *renderer) flushList() {
	if r.collectingSkills {
		r.flushSkills()
		return
	}
	if r.inList {
		r.parts = append(r.parts, "</ul>")
		r.inList = false
	}
}

// inlineBold escapes a text fragment and converts **spans** to <strong>.
func inlineBold(s string) string {
	return boldSpanPattern.ReplaceAllString(EscapeHTML(s), "<strong>$1</strong>")
}
