// Package generation orchestrates LLM passes for resume and cover
// letter drafting.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/types"
)

// ResumeTemperature is the sampling temperature for resume drafting
const ResumeTemperature float32 = 0.4

// ErrNoContent is returned when the model produced an empty result.
var ErrNoContent = errors.New("no content generated")

// Field caps applied before prompt interpolation
const (
	maxNameLen       = 200
	maxSkillsLen     = 1000
	maxExperienceLen = 2000
)

// Service runs generation passes against an LLM client
type Service struct {
	client llm.Client
}

// NewService creates a generation service backed by the given client
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// GenerateResume drafts structured resume markdown from a job
// description. The returned markdown follows the canonical section
// layout and contains placeholders where candidate data is unknown.
func (s *Service) GenerateResume(ctx context.Context, jobDescription string) (string, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return "", fmt.Errorf("job description is required")
	}

	template := prompts.MustGet("generation.json", "resume-from-jd")
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
	})

	result, err := s.client.GenerateContent(ctx, prompt, ResumeTemperature)
	if err != nil {
		return "", fmt.Errorf("resume generation failed: %w", err)
	}
	if strings.TrimSpace(result) == "" {
		return "", ErrNoContent
	}
	return result, nil
}

// GenerateCoverLetter runs the two-pass cover letter flow: a
// deterministic extraction pass over the job description, then a
// generation pass whose temperature tracks the requested creativity.
func (s *Service) GenerateCoverLetter(ctx context.Context, req *types.CoverLetterRequest) (string, error) {
	name := safeName(req)

	extractionPrompt := prompts.Format(prompts.MustGet("generation.json", "cover-letter-extraction"), map[string]string{
		"JobDescription": req.JobDescription,
		"Name":           prompts.Truncate(name, maxNameLen),
		"JobTitle":       prompts.Truncate(req.JobTitle, maxNameLen),
		"Skills":         prompts.Truncate(req.Skills, maxSkillsLen),
		"Experience":     prompts.Truncate(req.Experience, maxExperienceLen),
	})

	extractionRaw, err := s.client.GenerateJSON(ctx, extractionPrompt, llm.ExtractionTemperature)
	if err != nil {
		return "", fmt.Errorf("requirement extraction failed: %w", err)
	}

	insights := parseInsights(extractionRaw)
	inferredRole := insights.InferredRole
	if inferredRole == "" {
		inferredRole = prompts.Truncate(req.JobTitle, maxNameLen)
	}
	if inferredRole == "" {
		inferredRole = "Candidate"
	}

	keyReqs := insights.KeyRequirements
	if len(keyReqs) == 0 {
		keyReqs = []string{"Relevant qualifications from the JD"}
	}

	mappingLines := formatMapping(insights.Mapping)
	creativity := creativityFor(req.CreativeScore)

	generationPrompt := prompts.Format(prompts.MustGet("generation.json", "cover-letter-generation"), map[string]string{
		"JobDescription":  req.JobDescription,
		"InferredRole":    inferredRole,
		"KeyRequirements": strings.Join(keyReqs, "\n- "),
		"Mapping":         mappingLines,
		"Name":            prompts.Truncate(name, maxNameLen),
		"Skills":          prompts.Truncate(req.Skills, maxSkillsLen),
		"Experience":      prompts.Truncate(req.Experience, maxExperienceLen),
		"Creativity":      strconv.FormatFloat(float64(creativity), 'g', -1, 32),
		"Sender":          senderBlock(req),
		"Recipient":       recipientBlock(req),
	})

	content, err := s.client.GenerateContent(ctx, generationPrompt, creativity)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrNoContent
	}
	return content, nil
}

// parseInsights leniently reads the extraction response. The model may
// wrap the JSON in prose or code fences; any parse failure degrades to
// empty insights rather than failing the request.
func parseInsights(raw string) types.JobInsights {
	var insights types.JobInsights
	obj, ok := llm.ExtractJSONObject(llm.CleanJSONBlock(raw))
	if !ok {
		return insights
	}
	if err := json.Unmarshal([]byte(obj), &insights); err != nil {
		return types.JobInsights{}
	}
	return insights
}

func formatMapping(mapping []types.RequirementMapping) string {
	if len(mapping) == 0 {
		return "- Map the candidate's skills and experience to the JD requirements explicitly."
	}
	lines := make([]string, 0, len(mapping))
	for _, m := range mapping {
		lines = append(lines, fmt.Sprintf("- %s: %s", m.Requirement, m.Evidence))
	}
	return strings.Join(lines, "\n")
}

// safeName resolves the applicant name: explicit name first, then the
// sender name fields, then a generic fallback.
func safeName(req *types.CoverLetterRequest) string {
	if name := strings.TrimSpace(req.Name); name != "" {
		return name
	}
	var parts []string
	for _, p := range []string{req.FromFirstName, req.FromLastName} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "Candidate"
}

// creativityFor maps the requested score to a sampling temperature.
// Zero means unset and falls back to the default.
func creativityFor(score float64) float32 {
	if score == 0 {
		return llm.DefaultTemperature
	}
	return llm.ClampTemperature(float32(score))
}

func senderBlock(req *types.CoverLetterRequest) string {
	if req.FromFirstName == "" && req.FromLastName == "" && req.Email == "" && req.Phone == "" {
		return ""
	}
	return "\nSender (From):\n" +
		"First Name: " + prompts.Truncate(req.FromFirstName, maxNameLen) + "\n" +
		"Last Name: " + prompts.Truncate(req.FromLastName, maxNameLen) + "\n" +
		"Email: " + prompts.Truncate(req.Email, maxNameLen) + "\n" +
		"Phone: " + prompts.Truncate(req.Phone, maxNameLen)
}

func recipientBlock(req *types.CoverLetterRequest) string {
	if req.ToFirstName == "" && req.ToLastName == "" && req.Company == "" && req.Department == "" {
		return ""
	}
	return "\nRecipient (To):\n" +
		"First Name: " + prompts.Truncate(req.ToFirstName, maxNameLen) + "\n" +
		"Last Name: " + prompts.Truncate(req.ToLastName, maxNameLen) + "\n" +
		"Company: " + prompts.Truncate(req.Company, maxNameLen) + "\n" +
		"Department: " + prompts.Truncate(req.Department, maxNameLen)
}
