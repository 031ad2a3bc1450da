// Package quiz implements the quiz-session engine: the mutable state of a
// single paper attempt, plus the scoring and review projection computed
// from it. Sessions are plain in-memory values with no storage of their
// own; all operations are synchronous and total.
package quiz

import (
	"errors"
	"fmt"

	"github.com/studyzap/studyzap-backend/internal/model"
)

var (
	// ErrSessionSubmitted is returned by mutations attempted after Submit.
	// Writes after submission are rejected explicitly, never coerced into
	// silent no-ops.
	ErrSessionSubmitted = errors.New("session already submitted")

	// ErrNoAnswers is returned by Submit when no question has been answered.
	ErrNoAnswers = errors.New("no answers selected")

	// ErrOptionOutOfRange is returned by SelectAnswer for an option index
	// outside the current question's option list.
	ErrOptionOutOfRange = errors.New("option index out of range")

	// ErrNotSubmitted is returned by Result before Submit has succeeded.
	ErrNotSubmitted = errors.New("session not submitted")
)

// Session is the in-progress or graded state of one attempt at one paper.
// A session owns its answers map exclusively; callers interact only through
// the methods below. Invariants held after every operation:
//
//	0 <= currentIndex < len(paper.Questions)
//	every answers value is a valid option index for its question
//	submitted implies len(answers) > 0
type Session struct {
	paper        *model.Paper
	currentIndex int
	answers      map[int]int
	submitted    bool
}

// NewSession starts an attempt at the given paper. The paper must already
// have passed ValidatePaper; NewSession trusts its invariants.
func NewSession(paper *model.Paper) *Session {
	return &Session{
		paper:   paper,
		answers: make(map[int]int),
	}
}

// Paper returns the paper under attempt.
func (s *Session) Paper() *model.Paper { return s.paper }

// CurrentIndex returns the zero-based index of the question on display.
func (s *Session) CurrentIndex() int { return s.currentIndex }

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() model.Question {
	return s.paper.Questions[s.currentIndex]
}

// Submitted reports whether the session has reached the graded state.
func (s *Session) Submitted() bool { return s.submitted }

// TotalQuestions returns the number of questions in the paper.
func (s *Session) TotalQuestions() int { return len(s.paper.Questions) }

// AnsweredCount returns how many questions have a selection.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Answer returns the selected option for the question at index, if any.
func (s *Session) Answer(index int) (int, bool) {
	v, ok := s.answers[index]
	return v, ok
}

// Answers returns a copy of the answer map (question index -> option index).
func (s *Session) Answers() map[int]int {
	out := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// SelectAnswer records optionIndex for the question at the current index,
// overwriting any previous selection for that question.
func (s *Session) SelectAnswer(optionIndex int) error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	q := s.paper.Questions[s.currentIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: option %d of %d", ErrOptionOutOfRange, optionIndex, len(q.Options))
	}
	s.answers[s.currentIndex] = optionIndex
	return nil
}

// GoTo moves the current question pointer. Out-of-range targets clamp to
// the first or last question instead of failing, matching the UI contract
// of disabled previous/next buttons at the edges. GoTo is rejected once
// the session is submitted.
func (s *Session) GoTo(index int) error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	if index < 0 {
		index = 0
	}
	if max := len(s.paper.Questions) - 1; index > max {
		index = max
	}
	s.currentIndex = index
	return nil
}

// Next advances to the following question, clamped at the last.
func (s *Session) Next() error { return s.GoTo(s.currentIndex + 1) }

// Previous moves back one question, clamped at the first.
func (s *Session) Previous() error { return s.GoTo(s.currentIndex - 1) }

// Submit transitions the session to the graded state. At least one
// question must be answered; after Submit all mutations are rejected
// until Reset.
func (s *Session) Submit() error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	if len(s.answers) == 0 {
		return ErrNoAnswers
	}
	s.submitted = true
	return nil
}

// Reset returns the session to its initial state regardless of prior
// state. It always succeeds and is idempotent.
func (s *Session) Reset() {
	s.answers = make(map[int]int)
	s.currentIndex = 0
	s.submitted = false
}
