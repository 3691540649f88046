// Package session provides an in-memory store for resume editing
// sessions keyed by UUID.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/composing"
	"github.com/jonathan/resume-studio/internal/dates"
	"github.com/jonathan/resume-studio/internal/types"
)

// NotFoundError is returned when a session ID does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// Session holds one resume editing session. RawMarkdown is the
// unmodified generation output; SavedMarkdown starts as the sanitized
// raw text and is recomposed from Document on every mutation.
type Session struct {
	ID            string               `json:"id"`
	Document      types.ResumeDocument `json:"document"`
	RawMarkdown   string               `json:"raw_markdown"`
	SavedMarkdown string               `json:"saved_markdown"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// Store is a concurrency-safe session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session for a parsed document and returns a
// snapshot of it. When raw markdown is present the initial saved
// markdown is the sanitized raw text with date ranges normalized, so
// content the parser did not recognize still survives; later mutations
// recompose from the document. Without raw markdown (document import)
// the saved markdown is composed from the document.
func (s *Store) Create(doc types.ResumeDocument, rawMarkdown string) Session {
	saved := composing.Sanitize(composing.ComposeMarkdown(doc))
	if rawMarkdown != "" {
		saved = composing.Sanitize(dates.NormalizeRangesInMarkdown(rawMarkdown))
	}

	now := time.Now().UTC()
	sess := &Session{
		ID:            uuid.NewString(),
		Document:      doc,
		RawMarkdown:   rawMarkdown,
		SavedMarkdown: saved,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return snapshot(sess)
}

// Get returns a snapshot of the session with the given ID.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, &NotFoundError{ID: id}
	}
	return snapshot(sess), nil
}

// Mutate applies fn to the session document under the store lock and
// recomposes the saved markdown before the lock is released, so a
// reader can never observe a document ahead of its markdown.
func (s *Store) Mutate(id string, fn func(doc *types.ResumeDocument) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, &NotFoundError{ID: id}
	}

	if err := fn(&sess.Document); err != nil {
		return Session{}, err
	}
	sess.SavedMarkdown = composing.Sanitize(composing.ComposeMarkdown(sess.Document))
	sess.UpdatedAt = time.Now().UTC()

	return snapshot(sess), nil
}

// Replace swaps the session document wholesale.
func (s *Store) Replace(id string, doc types.ResumeDocument) (Session, error) {
	return s.Mutate(id, func(target *types.ResumeDocument) error {
		*target = doc
		return nil
	})
}

// Delete removes a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// snapshot copies a session, deep-copying the document slices so
// callers cannot mutate stored state.
func snapshot(sess *Session) Session {
	out := *sess
	out.Document.Experience = append([]types.ExperienceItem(nil), sess.Document.Experience...)
	out.Document.Education = append([]types.EducationItem(nil), sess.Document.Education...)
	return out
}
