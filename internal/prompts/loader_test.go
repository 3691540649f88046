package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	for _, key := range []string{"resume-from-jd", "cover-letter-extraction", "cover-letter-generation"} {
		template, err := Get("generation.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, template)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("generation.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "resume-from-jd")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("generation.json", "nonexistent") })
}

func TestFormat(t *testing.T) {
	result := Format("Role: {{.Role}}, Level: {{.Level}}", map[string]string{
		"Role":  "Engineer",
		"Level": "Senior",
	})
	assert.Equal(t, "Role: Engineer, Level: Senior", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "", Truncate("", 10))
}

func TestResumePrompt_CarriesStructure(t *testing.T) {
	template := MustGet("generation.json", "resume-from-jd")
	prompt := Format(template, map[string]string{"JobDescription": "Build Go services."})

	assert.Contains(t, prompt, "Build Go services.")
	assert.NotContains(t, prompt, "{{.JobDescription}}")
	for _, section := range []string{"**Summary**", "**Experience**", "**Education**", "**Skills**", "**Certifications (optional)**", "**Languages (optional)**"} {
		assert.Contains(t, prompt, section, "section %s", section)
	}
	assert.True(t, strings.Contains(prompt, "# [FULL NAME]"))
}
