package quiz

import (
	"errors"
	"testing"

	"github.com/studyzap/studyzap-backend/internal/model"
)

func threeQuestionPaper() *model.Paper {
	return &model.Paper{
		ID:       "midterm-2023",
		Name:     "Midterm Exam 2023",
		ModuleID: "cs101",
		Questions: []model.Question{
			{ID: 1, Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
			{ID: 2, Prompt: "q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
			{ID: 3, Prompt: "q3", Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	}
}

func assertIndexInvariant(t *testing.T, s *Session) {
	t.Helper()
	if s.CurrentIndex() < 0 || s.CurrentIndex() >= s.TotalQuestions() {
		t.Fatalf("currentIndex %d outside [0,%d)", s.CurrentIndex(), s.TotalQuestions())
	}
}

func TestNewSession_InitialState(t *testing.T) {
	s := NewSession(threeQuestionPaper())

	if s.CurrentIndex() != 0 {
		t.Fatalf("currentIndex = %d, want 0", s.CurrentIndex())
	}
	if s.AnsweredCount() != 0 {
		t.Fatalf("answered = %d, want 0", s.AnsweredCount())
	}
	if s.Submitted() {
		t.Fatal("new session must not be submitted")
	}
}

func TestGoTo_Clamping(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   int
	}{
		{name: "in range", target: 1, want: 1},
		{name: "negative clamps to first", target: -5, want: 0},
		{name: "past end clamps to last", target: 99, want: 2},
		{name: "exact last", target: 2, want: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(threeQuestionPaper())
			if err := s.GoTo(tc.target); err != nil {
				t.Fatalf("GoTo(%d) error: %v", tc.target, err)
			}
			if s.CurrentIndex() != tc.want {
				t.Fatalf("currentIndex = %d, want %d", s.CurrentIndex(), tc.want)
			}
			assertIndexInvariant(t, s)
		})
	}
}

func TestNextPrevious_ClampAtEdges(t *testing.T) {
	s := NewSession(threeQuestionPaper())

	if err := s.Previous(); err != nil {
		t.Fatalf("Previous at first question: %v", err)
	}
	if s.CurrentIndex() != 0 {
		t.Fatalf("Previous at first question moved to %d", s.CurrentIndex())
	}

	for i := 0; i < 5; i++ {
		if err := s.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
		assertIndexInvariant(t, s)
	}
	if s.CurrentIndex() != 2 {
		t.Fatalf("Next past end: currentIndex = %d, want 2", s.CurrentIndex())
	}
}

func TestSelectAnswer_OverwritesPriorSelection(t *testing.T) {
	s := NewSession(threeQuestionPaper())

	if err := s.SelectAnswer(0); err != nil {
		t.Fatalf("first select: %v", err)
	}
	if err := s.SelectAnswer(2); err != nil {
		t.Fatalf("second select: %v", err)
	}

	if s.AnsweredCount() != 1 {
		t.Fatalf("answered = %d, want exactly 1 entry", s.AnsweredCount())
	}
	if v, ok := s.Answer(0); !ok || v != 2 {
		t.Fatalf("answer[0] = %d,%v, want 2,true", v, ok)
	}
}

func TestSelectAnswer_OptionOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		option int
	}{
		{name: "negative", option: -1},
		{name: "equal to len", option: 4},
		{name: "far past end", option: 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(threeQuestionPaper())
			err := s.SelectAnswer(tc.option)
			if !errors.Is(err, ErrOptionOutOfRange) {
				t.Fatalf("SelectAnswer(%d) = %v, want ErrOptionOutOfRange", tc.option, err)
			}
			if s.AnsweredCount() != 0 {
				t.Fatalf("rejected select must not record an answer")
			}
		})
	}
}

func TestSubmit_RequiresAtLeastOneAnswer(t *testing.T) {
	s := NewSession(threeQuestionPaper())

	if err := s.Submit(); !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("Submit with no answers = %v, want ErrNoAnswers", err)
	}
	if s.Submitted() {
		t.Fatal("failed Submit must leave submitted = false")
	}

	if err := s.SelectAnswer(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !s.Submitted() {
		t.Fatal("submitted = false after successful Submit")
	}
}

func TestMutationsRejectedAfterSubmit(t *testing.T) {
	s := NewSession(threeQuestionPaper())
	if err := s.SelectAnswer(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := s.SelectAnswer(0); !errors.Is(err, ErrSessionSubmitted) {
		t.Fatalf("SelectAnswer after submit = %v, want ErrSessionSubmitted", err)
	}
	if err := s.GoTo(1); !errors.Is(err, ErrSessionSubmitted) {
		t.Fatalf("GoTo after submit = %v, want ErrSessionSubmitted", err)
	}
	if err := s.Submit(); !errors.Is(err, ErrSessionSubmitted) {
		t.Fatalf("double Submit = %v, want ErrSessionSubmitted", err)
	}

	if v, _ := s.Answer(0); v != 1 {
		t.Fatalf("answers mutated after submit: answer[0] = %d", v)
	}
}

func TestReset_AlwaysReturnsToInitialState(t *testing.T) {
	s := NewSession(threeQuestionPaper())
	_ = s.SelectAnswer(1)
	_ = s.Next()
	_ = s.SelectAnswer(0)
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Repeated application stays at the initial state.
	for i := 0; i < 3; i++ {
		s.Reset()
		if s.CurrentIndex() != 0 || s.AnsweredCount() != 0 || s.Submitted() {
			t.Fatalf("reset #%d: index=%d answered=%d submitted=%v",
				i, s.CurrentIndex(), s.AnsweredCount(), s.Submitted())
		}
	}

	// The session is usable again after reset.
	if err := s.SelectAnswer(3); err != nil {
		t.Fatalf("select after reset: %v", err)
	}
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	s := NewSession(threeQuestionPaper())
	_ = s.SelectAnswer(1)

	m := s.Answers()
	m[0] = 3
	m[1] = 3

	if v, _ := s.Answer(0); v != 1 {
		t.Fatalf("mutating the Answers copy leaked into the session: %d", v)
	}
	if s.AnsweredCount() != 1 {
		t.Fatalf("answered = %d, want 1", s.AnsweredCount())
	}
}
