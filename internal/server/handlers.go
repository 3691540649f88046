package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-studio/internal/fetch"
	"github.com/jonathan/resume-studio/internal/generation"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/session"
	"github.com/jonathan/resume-studio/internal/types"
)

var errIndexOutOfRange = errors.New("index out of range")

// sessionResponse is the JSON shape returned for session endpoints.
type sessionResponse struct {
	session.Session
	HasContent bool `json:"has_content"`
}

func newSessionResponse(sess session.Session) sessionResponse {
	return sessionResponse{Session: sess, HasContent: sess.Document.HasContent()}
}

// handleGenerateResume drafts resume markdown from a job description.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Required: job_description")
		return
	}

	result, err := s.generator.GenerateResume(r.Context(), req.JobDescription)
	if err != nil {
		s.generationErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"result": result})
}

// handleGenerateCoverLetter runs the two-pass cover letter flow.
func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req types.CoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields: job_description, job_title, skills.")
		return
	}

	letter, err := s.generator.GenerateCoverLetter(r.Context(), &req)
	if err != nil {
		s.generationErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"cover_letter": letter})
}

// generationErrorResponse maps generation failures to status codes:
// quota exhaustion to 429, empty output to 502, anything else to 500.
func (s *Server) generationErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case llm.IsQuotaExceeded(err):
		s.errorResponse(w, http.StatusTooManyRequests,
			"Rate limit or quota exceeded. Please wait a minute and try again.")
	case errors.Is(err, generation.ErrNoContent):
		s.errorResponse(w, http.StatusBadGateway, "No content generated from the AI model.")
	default:
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

// handleIngestJob fetches a job posting URL and returns its text.
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL        string `json:"url"`
		UseBrowser bool   `json:"use_browser"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Required: url")
		return
	}

	opts := fetch.DefaultOptions()
	opts.AllowBrowser = req.UseBrowser
	result, err := fetch.JobPosting(r.Context(), req.URL, opts)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"url":          result.URL,
		"text":         result.Text,
		"used_browser": result.UsedBrowser,
	})
}

// handleImport validates a resume document JSON payload against the
// schema and opens a session for it.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if err := schemas.ValidateResumeDocument(string(body)); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "document does not match schema",
				"fields": validationFields(validationErr),
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sess := s.sessions.Create(doc, "")
	s.jsonResponse(w, http.StatusCreated, newSessionResponse(sess))
}

func validationFields(validationErr *schemas.ValidationError) []map[string]string {
	fields := make([]map[string]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, map[string]string{"field": fe.Field, "message": fe.Message})
	}
	return fields
}

// handleCreateSession parses resume markdown into a new session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Markdown string `json:"markdown"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Markdown) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Required: markdown")
		return
	}

	doc := parsing.ParseResume(req.Markdown)
	sess := s.sessions.Create(doc, req.Markdown)
	s.jsonResponse(w, http.StatusCreated, newSessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.sessionErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		s.sessionErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleReplaceDocument swaps the structured document for a session.
// The saved markdown is recomposed before the response is written.
func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	var doc types.ResumeDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sess, err := s.sessions.Replace(r.PathValue("id"), doc)
	if err != nil {
		s.sessionErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Mutate(r.PathValue("id"), func(doc *types.ResumeDocument) error {
		doc.Experience = append(doc.Experience, types.ExperienceItem{})
		return nil
	})
	if err != nil {
		s.sessionErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid index")
		return
	}

	sess, err := s.sessions.Mutate(r.PathValue("id"), func(doc *types.ResumeDocument) error {
		if index < 0 || index >= len(doc.Experience) {
			return fmt.Errorf("experience %w: %d", errIndexOutOfRange, index)
		}
		doc.Experience = append(doc.Experience[:index], doc.Experience[index+1:]...)
		return nil
	})
	if err != nil {
		s.sessionErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Mutate(r.PathValue("id"), func(doc *types.ResumeDocument) error {
		doc.Education = append(doc.Education, types.EducationItem{})
		return nil
	})
	if err != nil {
		s.sessionErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid index")
		return
	}

	sess, err := s.sessions.Mutate(r.PathValue("id"), func(doc *types.ResumeDocument) error {
		if index < 0 || index >= len(doc.Education) {
			return fmt.Errorf("education %w: %d", errIndexOutOfRange, index)
		}
		doc.Education = append(doc.Education[:index], doc.Education[index+1:]...)
		return nil
	})
	if err != nil {
		s.sessionErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newSessionResponse(sess))
}

// handlePreview renders the saved markdown as preview HTML.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.sessionErrorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(rendering.RenderHTML(sess.SavedMarkdown)))
}

// handleExport returns the standalone print document for a session.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.sessionErrorResponse(w, err)
		return
	}

	doc, err := rendering.PrintDocument(sess.SavedMarkdown, sess.Document.Profile.Name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.html"`)
	_, _ = w.Write([]byte(doc))
}

// sessionErrorResponse maps session store failures to status codes.
func (s *Server) sessionErrorResponse(w http.ResponseWriter, err error) {
	var notFound *session.NotFoundError
	switch {
	case errors.As(err, &notFound):
		s.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errIndexOutOfRange):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
