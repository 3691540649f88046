package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt;", EscapeHTML("a & b <c>"))
	assert.Equal(t, "", EscapeHTML(""))
	assert.Equal(t, "plain", EscapeHTML("plain"))
}

func TestRenderHTML_Headings(t *testing.T) {
	out := RenderHTML("# Jane Doe\n## Experience\n### Acme")

	assert.Contains(t, out, "<h1>Jane Doe</h1>")
	assert.Contains(t, out, ">Experience</h2>")
	assert.Contains(t, out, ">Acme</h3>")
}

func TestRenderHTML_BoldSectionTitleStripsQualifier(t *testing.T) {
	out := RenderHTML("# Jane\n**Certifications (optional)**\n- AWS SAA")

	assert.Contains(t, out, "<strong>Certifications</strong>")
	assert.NotContains(t, out, "optional")
}

func TestRenderHTML_SkillsTwoColumns(t *testing.T) {
	lines := []string{"**Skills**"}
	skills := []string{"Go", "SQL", "Docker", "Kubernetes", "Terraform", "AWS", "GCP"}
	for _, s := range skills {
		lines = append(lines, "- "+s)
	}
	out := RenderHTML(strings.Join(lines, "\n"))

	require.Contains(t, out, `class="skills-columns"`)
	cols := strings.Split(out, "</ul>")
	require.GreaterOrEqual(t, len(cols), 2)
	left := cols[0]
	right := cols[1]

	for _, s := range skills[:4] {
		assert.Contains(t, left, "<li>"+s+"</li>")
	}
	for _, s := range skills[4:] {
		assert.Contains(t, right, "<li>"+s+"</li>")
		assert.NotContains(t, left, "<li>"+s+"</li>")
	}
}

func TestRenderHTML_SkillsFlushedAtEndOfInput(t *testing.T) {
	out := RenderHTML("**Skills**\n- Go\n- SQL")
	assert.Contains(t, out, `class="skills-columns"`)
	assert.Contains(t, out, "<li>Go</li>")
	assert.Contains(t, out, "<li>SQL</li>")
}

func TestRenderHTML_ExperienceRowWithDates(t *testing.T) {
	out := RenderHTML("**Experience**\nAcme, Engineer Jan 2022 – Present")

	assert.Contains(t, out, `class="exp-row"`)
	assert.Contains(t, out, "<strong>Acme</strong>")
	assert.Contains(t, out, "<em>Engineer</em>")
	assert.Contains(t, out, ">Jan 2022 – Present</div>")
}

func TestRenderHTML_ExperienceRowWithoutDates(t *testing.T) {
	out := RenderHTML("**Experience**\nAcme, Engineer")

	assert.Contains(t, out, `class="exp-row"`)
	assert.Contains(t, out, "<strong>Acme</strong>")
	assert.Contains(t, out, "<em>Engineer</em>")
}

func TestRenderHTML_IndentedExperienceBulletsAreNotRows(t *testing.T) {
	out := RenderHTML("**Experience**\nAcme, Engineer Jan 2022 – Present\n  - Shipped X")

	assert.Equal(t, 1, strings.Count(out, `class="exp-row"`))
	assert.Contains(t, out, "<p>  - Shipped X</p>")
	assert.NotContains(t, out, "<strong>- Shipped X</strong>")
}

func TestRenderHTML_ComposedExperienceItemBullets(t *testing.T) {
	out := RenderHTML("**Experience**\n- Acme — Engineer (Jan 2022 - Present) — Remote\n  - Shipped X")

	assert.Contains(t, out, "<li>Acme — Engineer (Jan 2022 - Present) — Remote</li>")
	assert.Contains(t, out, "<p>  - Shipped X</p>")
	assert.NotContains(t, out, `class="exp-row"`)
}

func TestRenderHTML_ExperienceBulletsStayListItems(t *testing.T) {
	out := RenderHTML("**Experience**\nAcme, Engineer Jan 2022 – Dec 2023\n- Shipped X\n- Led Y")

	assert.Contains(t, out, "<ul>")
	assert.Contains(t, out, "<li>Shipped X</li>")
	assert.Contains(t, out, "<li>Led Y</li>")
	assert.Contains(t, out, "</ul>")
}

func TestRenderHTML_HeaderStagesBeforeFirstSection(t *testing.T) {
	out := RenderHTML("Jane Doe\nSoftware Engineer\nBerlin • jane@x.com\n**Summary**\nShips software.")
	parts := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(parts), 4)
	assert.Contains(t, parts[0], "font-size:22px")
	assert.Contains(t, parts[0], "Jane Doe")
	assert.Contains(t, parts[1], "font-size:16px")
	assert.Contains(t, parts[1], "Software Engineer")
	assert.Contains(t, parts[2], "font-weight:400")
	assert.Contains(t, parts[2], "jane@x.com")
	assert.Contains(t, out, "<p>Ships software.</p>")
}

func TestRenderHTML_BlankLineEmitsSpacer(t *testing.T) {
	out := RenderHTML("# Jane\n\n**Summary**")
	assert.Contains(t, out, `<div class="spacer"></div>`)
}

func TestRenderHTML_BlankLineClosesList(t *testing.T) {
	out := RenderHTML("**Projects**\n- One\n\nAfterword")
	idxClose := strings.Index(out, "</ul>")
	idxSpacer := strings.Index(out, `<div class="spacer"></div>`)
	require.NotEqual(t, -1, idxClose)
	require.NotEqual(t, -1, idxSpacer)
	assert.Less(t, idxClose, idxSpacer)
}

func TestRenderHTML_InlineBoldSpans(t *testing.T) {
	out := RenderHTML("**Summary**\nBuilt **many** systems.")
	assert.Contains(t, out, "Built <strong>many</strong> systems.")
}

func TestRenderHTML_EscapesMarkup(t *testing.T) {
	out := RenderHTML("**Summary**\nUsed <script> & C++")
	assert.Contains(t, out, "&lt;script&gt; &amp; C++")
	assert.NotContains(t, out, "<script>")
}

func TestPrintDocument_WrapsBody(t *testing.T) {
	doc, err := PrintDocument("# Jane Doe\n**Summary**\nShips software.", "Jane Doe Resume")
	require.NoError(t, err)

	assert.Contains(t, doc, "<!doctype html>")
	assert.Contains(t, doc, "<title>Jane Doe Resume</title>")
	assert.Contains(t, doc, "<h1>Jane Doe</h1>")
	assert.Contains(t, doc, `width: 8.5in`)
	assert.Contains(t, doc, "@page { margin: 0; size: A4; }")
	assert.Contains(t, doc, "window.print()")
}

func TestPrintDocument_DefaultTitle(t *testing.T) {
	doc, err := PrintDocument("# Jane", "")
	require.NoError(t, err)
	assert.Contains(t, doc, "<title>Resume</title>")
}
