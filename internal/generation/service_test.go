package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/types"
)

// fakeClient replays canned responses in call order and records which
// client method each call went through.
type fakeClient struct {
	responses []string
	errs      []error
	prompts   []string
	temps     []float32
	asJSON    []bool
}

func (f *fakeClient) record(prompt string, temperature float32) (string, error) {
	idx := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	f.temps = append(f.temps, temperature)
	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return "", errors.New("no canned response")
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, temperature float32) (string, error) {
	f.asJSON = append(f.asJSON, false)
	return f.record(prompt, temperature)
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, temperature float32) (string, error) {
	f.asJSON = append(f.asJSON, true)
	return f.record(prompt, temperature)
}

func (f *fakeClient) Close() error { return nil }

func coverLetterRequest() *types.CoverLetterRequest {
	return &types.CoverLetterRequest{
		JobDescription: "Build and operate Go services.",
		JobTitle:       "Backend Engineer",
		Skills:         "Go, SQL",
		Name:           "Jane Doe",
		Experience:     "5 years of backend work.",
	}
}

func TestGenerateResume_UsesJobDescription(t *testing.T) {
	client := &fakeClient{responses: []string{"# [FULL NAME]\n..."}}
	svc := NewService(client)

	result, err := svc.GenerateResume(context.Background(), "Build Go services.")
	require.NoError(t, err)
	assert.Equal(t, "# [FULL NAME]\n...", result)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Build Go services.")
	assert.Equal(t, ResumeTemperature, client.temps[0])
}

func TestGenerateResume_EmptyJobDescription(t *testing.T) {
	svc := NewService(&fakeClient{})
	_, err := svc.GenerateResume(context.Background(), "   ")
	assert.Error(t, err)
}

func TestGenerateCoverLetter_TwoPasses(t *testing.T) {
	extraction := `{"inferredRole": "Platform Engineer", "keyRequirements": ["Go", "Kubernetes"], "mapping": [{"requirement": "Go", "evidence": "5 years of Go"}]}`
	client := &fakeClient{responses: []string{extraction, "Dear Hiring Team, ..."}}
	svc := NewService(client)

	letter, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Team, ...", letter)

	require.Len(t, client.prompts, 2)
	assert.Equal(t, llm.ExtractionTemperature, client.temps[0])
	assert.Equal(t, llm.DefaultTemperature, client.temps[1])
	// The extraction pass requests JSON output; the letter pass is plain text.
	assert.Equal(t, []bool{true, false}, client.asJSON)

	generation := client.prompts[1]
	assert.Contains(t, generation, "Inferred Role: Platform Engineer")
	assert.Contains(t, generation, "- Go\n- Kubernetes")
	assert.Contains(t, generation, "- Go: 5 years of Go")
}

func TestGenerateCoverLetter_CreativityDrivesTemperature(t *testing.T) {
	client := &fakeClient{responses: []string{"{}", "letter"}}
	svc := NewService(client)

	req := coverLetterRequest()
	req.CreativeScore = 0.9
	_, err := svc.GenerateCoverLetter(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, float32(0.9), client.temps[1])
}

func TestGenerateCoverLetter_LenientExtractionParsing(t *testing.T) {
	raw := "Sure! Here is the analysis:\n```json\n{\"inferredRole\": \"SRE\"}\n```\nLet me know."
	client := &fakeClient{responses: []string{raw, "letter"}}
	svc := NewService(client)

	_, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	require.NoError(t, err)
	assert.Contains(t, client.prompts[1], "Inferred Role: SRE")
}

func TestGenerateCoverLetter_ExtractionFallbacks(t *testing.T) {
	client := &fakeClient{responses: []string{"not json at all", "letter"}}
	svc := NewService(client)

	_, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	require.NoError(t, err)

	generation := client.prompts[1]
	assert.Contains(t, generation, "Inferred Role: Backend Engineer")
	assert.Contains(t, generation, "- Relevant qualifications from the JD")
	assert.Contains(t, generation, "Map the candidate's skills and experience to the JD requirements explicitly.")
}

func TestGenerateCoverLetter_SenderAndRecipientBlocks(t *testing.T) {
	client := &fakeClient{responses: []string{"{}", "letter"}}
	svc := NewService(client)

	req := coverLetterRequest()
	req.Name = ""
	req.FromFirstName = "Jane"
	req.FromLastName = "Doe"
	req.Email = "jane@x.com"
	req.ToFirstName = "Alex"
	req.Company = "Acme"
	_, err := svc.GenerateCoverLetter(context.Background(), req)
	require.NoError(t, err)

	generation := client.prompts[1]
	assert.Contains(t, generation, "Sender (From):")
	assert.Contains(t, generation, "Email: jane@x.com")
	assert.Contains(t, generation, "Recipient (To):")
	assert.Contains(t, generation, "Company: Acme")
	assert.Contains(t, generation, "Name: Jane Doe")
}

func TestGenerateCoverLetter_NoPersonalizationBlocksWhenEmpty(t *testing.T) {
	client := &fakeClient{responses: []string{"{}", "letter"}}
	svc := NewService(client)

	_, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	require.NoError(t, err)
	assert.NotContains(t, client.prompts[1], "Sender (From):")
	assert.NotContains(t, client.prompts[1], "Recipient (To):")
}

func TestGenerateCoverLetter_ExtractionErrorPropagates(t *testing.T) {
	client := &fakeClient{errs: []error{&llm.GenerationError{Message: "failed to generate content", Quota: true}}}
	svc := NewService(client)

	_, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	require.Error(t, err)
	assert.True(t, llm.IsQuotaExceeded(err))
}

func TestGenerateCoverLetter_EmptyContentIsError(t *testing.T) {
	client := &fakeClient{responses: []string{"{}", "   "}}
	svc := NewService(client)

	_, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	assert.Error(t, err)
}
