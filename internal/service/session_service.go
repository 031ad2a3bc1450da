package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/quiz"
)

// ErrSessionNotFound marks a session identifier that does not resolve,
// either because it never existed or because the attempt was closed.
var ErrSessionNotFound = errors.New("session not found")

// PaperGetter resolves a paper identifier to a validated paper.
// *PaperService satisfies it.
type PaperGetter interface {
	GetPaper(ctx context.Context, paperID string) (*model.Paper, error)
}

// ResultStore persists a finished-paper result.
// *repository.ResultRepository satisfies it.
type ResultStore interface {
	Create(ctx context.Context, res *model.PaperResult) error
}

// SessionService owns all live quiz sessions. Sessions are in-memory
// only: an attempt does not survive a restart. Each attempt owns an
// independent session; the per-entry lock only serializes the HTTP
// server's goroutines, there is no cross-session shared state.
type SessionService struct {
	papers  PaperGetter
	results ResultStore
	log     zerolog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *quiz.Session
}

// NewSessionService creates a new SessionService.
func NewSessionService(papers PaperGetter, results ResultStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		papers:   papers,
		results:  results,
		log:      log.With().Str("component", "session_service").Logger(),
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

// Snapshot is the client-facing view of a session. The current question
// carries no answer key; the full key only appears in the review after
// submission.
type Snapshot struct {
	SessionID       uuid.UUID                `json:"session_id"`
	PaperID         string                   `json:"paper_id"`
	PaperName       string                   `json:"paper_name"`
	ModuleID        string                   `json:"module_id"`
	ModuleName      string                   `json:"module_name"`
	TimeLimit       string                   `json:"time_limit"`
	CurrentIndex    int                      `json:"current_index"`
	TotalQuestions  int                      `json:"total_questions"`
	AnsweredCount   int                      `json:"answered_count"`
	Answers         map[int]int              `json:"answers"`
	Submitted       bool                     `json:"submitted"`
	CurrentQuestion model.QuestionForStudent `json:"current_question"`
}

// Open loads and validates the paper, then constructs a fresh session for
// it. If the caller's context is cancelled while the paper fetch is
// outstanding, the fetched paper is discarded and no session appears:
// navigating away during loading must not leave a stale attempt behind.
func (s *SessionService) Open(ctx context.Context, paperID string) (*Snapshot, error) {
	paper, err := s.papers.GetPaper(ctx, paperID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.New()
	entry := &sessionEntry{session: quiz.NewSession(paper)}

	s.mu.Lock()
	s.sessions[id] = entry
	s.mu.Unlock()

	s.log.Info().Str("paper_id", paperID).Str("session_id", id.String()).Msg("session opened")
	return snapshot(id, entry.session), nil
}

// Get returns the current snapshot of a session.
func (s *SessionService) Get(sessionID uuid.UUID) (*Snapshot, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return snapshot(sessionID, entry.session), nil
}

// SelectAnswer records an option for the session's current question.
func (s *SessionService) SelectAnswer(sessionID uuid.UUID, optionIndex int) (*Snapshot, error) {
	return s.mutate(sessionID, func(sess *quiz.Session) error {
		return sess.SelectAnswer(optionIndex)
	})
}

// GoTo jumps to a question index, clamped to the paper's bounds.
func (s *SessionService) GoTo(sessionID uuid.UUID, index int) (*Snapshot, error) {
	return s.mutate(sessionID, func(sess *quiz.Session) error {
		return sess.GoTo(index)
	})
}

// Next advances to the following question.
func (s *SessionService) Next(sessionID uuid.UUID) (*Snapshot, error) {
	return s.mutate(sessionID, func(sess *quiz.Session) error {
		return sess.Next()
	})
}

// Previous moves back one question.
func (s *SessionService) Previous(sessionID uuid.UUID) (*Snapshot, error) {
	return s.mutate(sessionID, func(sess *quiz.Session) error {
		return sess.Previous()
	})
}

// Reset returns the session to its initial state.
func (s *SessionService) Reset(sessionID uuid.UUID) (*Snapshot, error) {
	return s.mutate(sessionID, func(sess *quiz.Session) error {
		sess.Reset()
		return nil
	})
}

// Submit grades the session and persists the finished-paper result so the
// module aggregator can compute progress. The graded result is returned
// even if persisting the summary fails; the attempt itself stays
// in-memory either way.
func (s *SessionService) Submit(ctx context.Context, sessionID uuid.UUID) (*quiz.Result, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.session.Submit(); err != nil {
		return nil, err
	}
	result, err := entry.session.Result()
	if err != nil {
		return nil, err
	}

	record := &model.PaperResult{
		PaperID:        result.PaperID,
		ModuleID:       result.ModuleID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
	}
	if err := s.results.Create(ctx, record); err != nil {
		s.log.Error().Err(err).Str("paper_id", result.PaperID).Msg("persist finished-paper result failed")
	}

	return result, nil
}

// Result returns the graded result of an already-submitted session.
func (s *SessionService) Result(sessionID uuid.UUID) (*quiz.Result, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session.Result()
}

// Close destroys a session, releasing the attempt. Closing an unknown
// session is not an error: navigating away twice is harmless.
func (s *SessionService) Close(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *SessionService) entry(sessionID uuid.UUID) (*sessionEntry, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

func (s *SessionService) mutate(sessionID uuid.UUID, op func(*quiz.Session) error) (*Snapshot, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := op(entry.session); err != nil {
		return nil, err
	}
	return snapshot(sessionID, entry.session), nil
}

func snapshot(id uuid.UUID, sess *quiz.Session) *Snapshot {
	paper := sess.Paper()
	return &Snapshot{
		SessionID:       id,
		PaperID:         paper.ID,
		PaperName:       paper.Name,
		ModuleID:        paper.ModuleID,
		ModuleName:      paper.ModuleName,
		TimeLimit:       paper.TimeLimit,
		CurrentIndex:    sess.CurrentIndex(),
		TotalQuestions:  sess.TotalQuestions(),
		AnsweredCount:   sess.AnsweredCount(),
		Answers:         sess.Answers(),
		Submitted:       sess.Submitted(),
		CurrentQuestion: sess.CurrentQuestion().ForStudent(),
	}
}
