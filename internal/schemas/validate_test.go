package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestValidateResumeDocument_Valid(t *testing.T) {
	doc := types.ResumeDocument{
		Profile: types.Profile{Name: "Jane Doe", Email: "jane@x.com"},
		Summary: "Engineer.",
		Experience: []types.ExperienceItem{
			{Company: "Acme", Position: "Engineer", From: "Jan 2022", To: "Present"},
		},
		Education: []types.EducationItem{
			{Institution: "State University", FieldOfStudy: "CS"},
		},
		Skills: "- Go",
	}
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeDocument(string(payload)))
}

func TestValidateResumeDocument_MissingCompany(t *testing.T) {
	payload := `{"experience": [{"position": "Engineer"}]}`
	err := ValidateResumeDocument(payload)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "company")
}

func TestValidateResumeDocument_WrongType(t *testing.T) {
	payload := `{"skills": ["Go", "SQL"]}`
	err := ValidateResumeDocument(payload)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateResumeDocument_UnknownField(t *testing.T) {
	payload := `{"hobbies": "chess"}`
	err := ValidateResumeDocument(payload)
	assert.Error(t, err)
}

func TestValidateJSONString_InvalidDocumentJSON(t *testing.T) {
	err := ValidateJSONString(`{"type": "object"}`, `{not json`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{`, `{}`)
	assert.Error(t, err)
}
