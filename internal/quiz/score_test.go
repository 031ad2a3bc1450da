package quiz

import (
	"reflect"
	"testing"

	"github.com/studyzap/studyzap-backend/internal/model"
)

func TestScore_PartialCredit(t *testing.T) {
	// Three questions with correct answers [1,1,0]; user answers {0:1,1:1,2:1}.
	s := NewSession(threeQuestionPaper())
	_ = s.SelectAnswer(1)
	_ = s.Next()
	_ = s.SelectAnswer(1)
	_ = s.Next()
	_ = s.SelectAnswer(1)
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got := s.Score(); got != 2 {
		t.Fatalf("score = %d, want 2", got)
	}
	if got := s.Percentage(); got != 67 {
		t.Fatalf("percentage = %d, want 67", got)
	}

	review := s.Review()
	last := review[2]
	if last.Answer == nil || *last.Answer != 1 {
		t.Fatalf("review[2].answer = %v, want 1", last.Answer)
	}
	if last.IsCorrect {
		t.Fatal("review[2] must be incorrect")
	}
}

func TestScore_Table(t *testing.T) {
	questions := threeQuestionPaper().Questions

	tests := []struct {
		name    string
		answers map[int]int
		score   int
		percent int
	}{
		{name: "no answers", answers: map[int]int{}, score: 0, percent: 0},
		{name: "all correct", answers: map[int]int{0: 1, 1: 1, 2: 0}, score: 3, percent: 100},
		{name: "all wrong", answers: map[int]int{0: 0, 1: 2, 2: 1}, score: 0, percent: 0},
		{name: "one of three", answers: map[int]int{1: 1}, score: 1, percent: 33},
		{name: "two of three rounds up", answers: map[int]int{0: 1, 1: 1}, score: 2, percent: 67},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(questions, tc.answers); got != tc.score {
				t.Fatalf("Score = %d, want %d", got, tc.score)
			}
			if got := Percentage(Score(questions, tc.answers), len(questions)); got != tc.percent {
				t.Fatalf("Percentage = %d, want %d", got, tc.percent)
			}
		})
	}
}

func TestScore_MonotonicAsCorrectAnswersAccumulate(t *testing.T) {
	s := NewSession(threeQuestionPaper())
	prev := s.Score()

	correct := []int{1, 1, 0}
	for i, opt := range correct {
		_ = s.GoTo(i)
		if err := s.SelectAnswer(opt); err != nil {
			t.Fatalf("select q%d: %v", i, err)
		}
		if got := s.Score(); got < prev {
			t.Fatalf("score decreased from %d to %d", prev, got)
		} else {
			prev = got
		}
	}
	if prev != 3 {
		t.Fatalf("final score = %d, want 3", prev)
	}
}

func TestScore_FixedAfterSubmit(t *testing.T) {
	s := NewSession(threeQuestionPaper())
	_ = s.SelectAnswer(1)
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	before := s.Score()
	_ = s.SelectAnswer(0) // rejected
	_ = s.GoTo(2)         // rejected
	if got := s.Score(); got != before {
		t.Fatalf("score changed after submit: %d -> %d", before, got)
	}
}

func TestReview_UnansweredIsAlwaysIncorrect(t *testing.T) {
	questions := threeQuestionPaper().Questions
	review := Review(questions, map[int]int{0: 1})

	if len(review) != len(questions) {
		t.Fatalf("review has %d items, want %d", len(review), len(questions))
	}
	for i := 1; i < len(review); i++ {
		if review[i].Answer != nil {
			t.Fatalf("review[%d].answer = %v, want nil", i, review[i].Answer)
		}
		if review[i].IsCorrect {
			t.Fatalf("unanswered review[%d] marked correct", i)
		}
	}
}

func TestReview_Idempotent(t *testing.T) {
	s := NewSession(threeQuestionPaper())
	_ = s.SelectAnswer(1)
	_ = s.Next()
	_ = s.SelectAnswer(0)
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	first := s.Review()
	second := s.Review()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two Review calls on an unchanged session differ")
	}
}

func TestResult_OnlyAfterSubmit(t *testing.T) {
	s := NewSession(threeQuestionPaper())
	_ = s.SelectAnswer(1)

	if _, err := s.Result(); err != ErrNotSubmitted {
		t.Fatalf("Result before submit = %v, want ErrNotSubmitted", err)
	}

	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	res, err := s.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if res.PaperID != "midterm-2023" || res.ModuleID != "cs101" {
		t.Fatalf("result identifiers = %q/%q", res.PaperID, res.ModuleID)
	}
	if res.Score != 1 || res.TotalQuestions != 3 || res.Percentage != 33 {
		t.Fatalf("result = %d/%d (%d%%), want 1/3 (33%%)", res.Score, res.TotalQuestions, res.Percentage)
	}
}

func TestPercentage_SingleQuestionPaper(t *testing.T) {
	p := &model.Paper{
		ID: "single",
		Questions: []model.Question{
			{ID: 1, Prompt: "q", Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	}
	s := NewSession(p)
	_ = s.SelectAnswer(0)
	if got := s.Percentage(); got != 100 {
		t.Fatalf("percentage = %d, want 100", got)
	}
}
