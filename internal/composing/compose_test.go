package composing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/types"
)

func fullDocument() types.ResumeDocument {
	return types.ResumeDocument{
		Profile: types.Profile{
			Name:     "Jane Doe",
			Title:    "Software Engineer",
			Location: "San Francisco",
			Email:    "jane@x.com",
			Socials:  "linkedin.com/in/jane",
		},
		Summary: "Engineer with a track record of shipping.",
		Experience: []types.ExperienceItem{
			{
				Company:     "Acme",
				Position:    "Engineer",
				From:        "Jan 2022",
				To:          "Present",
				Location:    "Remote",
				Description: "Shipped X\nReduced latency by 40%",
			},
		},
		Education: []types.EducationItem{
			{
				Institution:  "State University",
				FieldOfStudy: "Computer Science",
				From:         "Sep 2015",
				To:           "Jun 2019",
				Location:     "Springfield",
				Description:  "GPA 3.9",
			},
		},
		Skills:         "Go, SQL, Kubernetes",
		Certifications: "- AWS Solutions Architect",
		Languages:      "English, Spanish",
	}
}

func TestComposeMarkdown_HeaderBlock(t *testing.T) {
	md := ComposeMarkdown(fullDocument())
	lines := strings.Split(md, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "# Jane Doe", lines[0])
	assert.Equal(t, "_**Software Engineer**_  ", lines[1])
	assert.Equal(t, "San Francisco • jane@x.com • linkedin.com/in/jane", lines[2])
}

func TestComposeMarkdown_ExperienceItemShape(t *testing.T) {
	md := ComposeMarkdown(fullDocument())
	assert.Contains(t, md, "- Acme — Engineer (Jan 2022 - Present) — Remote")
	assert.Contains(t, md, "  - Shipped X")
	assert.Contains(t, md, "  - Reduced latency by 40%")
}

func TestComposeMarkdown_SkillsCommaSplit(t *testing.T) {
	md := ComposeMarkdown(fullDocument())
	assert.Contains(t, md, "**Skills**\n- Go\n- SQL\n- Kubernetes")
}

func TestComposeMarkdown_SkillsPreformattedKept(t *testing.T) {
	doc := fullDocument()
	doc.Skills = "- Go\n- SQL"
	md := ComposeMarkdown(doc)
	assert.Contains(t, md, "**Skills**\n- Go\n- SQL")
}

func TestComposeMarkdown_EmptyOptionalSectionsOmitted(t *testing.T) {
	doc := fullDocument()
	doc.Projects = ""
	doc.Certifications = ""
	md := ComposeMarkdown(doc)
	assert.NotContains(t, md, "Projects or Achievements")
	assert.NotContains(t, md, "Certifications")
}

func TestComposeMarkdown_PlaceholdersForEmptyDocument(t *testing.T) {
	md := ComposeMarkdown(types.ResumeDocument{})
	assert.Contains(t, md, "# [FULL NAME]")
	assert.Contains(t, md, "**[Role / Title]**")
	assert.Contains(t, md, "[City, Country] • [Email] • [LinkedIn/Website]")
	// No optional sections at all.
	assert.NotContains(t, md, "**Summary**")
	assert.NotContains(t, md, "**Experience**")
}

func TestComposeMarkdown_ItemPlaceholders(t *testing.T) {
	doc := types.ResumeDocument{
		Experience: []types.ExperienceItem{{}},
		Education:  []types.EducationItem{{}},
	}
	md := ComposeMarkdown(doc)
	assert.Contains(t, md, "- [Company] — [Position] (Mon YYYY - Mon YYYY)")
	assert.Contains(t, md, "- [Institution] — [Field of Study] (Mon YYYY - Mon YYYY)")
}

func TestRoundTrip_ParseRecoversComposedModel(t *testing.T) {
	original := fullDocument()
	parsed := parsing.ParseResume(ComposeMarkdown(original))

	assert.Equal(t, original.Profile, parsed.Profile)
	assert.Equal(t, original.Summary, parsed.Summary)
	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, original.Experience[0], parsed.Experience[0])
	require.Len(t, parsed.Education, 1)
	assert.Equal(t, original.Education[0], parsed.Education[0])
	assert.Equal(t, original.Certifications, parsed.Certifications)
	assert.Equal(t, original.Languages, parsed.Languages)
	// Skills go through the comma-to-bullets rendering on compose.
	assert.Equal(t, "- Go\n- SQL\n- Kubernetes", parsed.Skills)
}

func TestRoundTrip_StableAfterFirstCycle(t *testing.T) {
	first := parsing.ParseResume(ComposeMarkdown(fullDocument()))
	second := parsing.ParseResume(ComposeMarkdown(first))
	assert.Equal(t, first, second)
}

func TestSanitize_RemovesUnderscores(t *testing.T) {
	assert.Equal(t, "**Software Engineer**  ", Sanitize("_**Software Engineer**_  "))
}

func TestSanitize_DoubleHyphenToPipe(t *testing.T) {
	assert.Equal(t, "A | B", Sanitize("A--B"))
}

func TestSanitize_StripsQualifierParentheticals(t *testing.T) {
	assert.Equal(t, "English", Sanitize("English (Native)"))
	assert.Equal(t, "Spanish", Sanitize("Spanish (fluent speaker)"))
}

func TestSanitize_StripsHeadingQualifiers(t *testing.T) {
	assert.Equal(t, "**Languages**", Sanitize("**Languages (optional)**"))
	assert.Equal(t, "**Certifications**", Sanitize("**Certifications (optional)**"))
}

func TestSanitize_KeepsDateRangeParentheticals(t *testing.T) {
	in := "- Acme — Engineer (Jan 2022 - Present)"
	assert.Equal(t, in, Sanitize(in))
}
