package quiz

import (
	"math"

	"github.com/studyzap/studyzap-backend/internal/model"
)

// ReviewItem is the per-question correctness breakdown shown after
// submission. Answer is nil for unanswered questions, which are always
// marked incorrect.
type ReviewItem struct {
	Question  model.Question `json:"question"`
	Answer    *int           `json:"answer,omitempty"`
	IsCorrect bool           `json:"is_correct"`
}

// Result is the graded outcome of a submitted session.
type Result struct {
	PaperID        string       `json:"paper_id"`
	ModuleID       string       `json:"module_id"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	Percentage     int          `json:"percentage"`
	Review         []ReviewItem `json:"review"`
}

// Score counts questions whose selected option matches the answer key.
// It is a pure function of the questions and answers and may be read
// before submission; it never decreases as correct answers are added.
func Score(questions []model.Question, answers map[int]int) int {
	correct := 0
	for i, q := range questions {
		if sel, ok := answers[i]; ok && sel == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}

// Percentage returns the rounded percent score. The question list is never
// empty for a valid paper; ValidatePaper guards that before any session
// exists.
func Percentage(score, total int) int {
	return int(math.Round(100 * float64(score) / float64(total)))
}

// Review produces the per-question breakdown in paper order. It is a
// deterministic, side-effect-free projection: two calls on the same
// session yield identical output.
func Review(questions []model.Question, answers map[int]int) []ReviewItem {
	items := make([]ReviewItem, len(questions))
	for i, q := range questions {
		item := ReviewItem{Question: q}
		if sel, ok := answers[i]; ok {
			v := sel
			item.Answer = &v
			item.IsCorrect = sel == q.CorrectAnswer
		}
		items[i] = item
	}
	return items
}

// Score reports the session's current score.
func (s *Session) Score() int {
	return Score(s.paper.Questions, s.answers)
}

// Percentage reports the session's current rounded percent score.
func (s *Session) Percentage() int {
	return Percentage(s.Score(), len(s.paper.Questions))
}

// Review reports the session's per-question breakdown.
func (s *Session) Review() []ReviewItem {
	return Review(s.paper.Questions, s.answers)
}

// Result returns the graded outcome. It is only available once the
// session is submitted; the returned value is read-only thereafter.
func (s *Session) Result() (*Result, error) {
	if !s.submitted {
		return nil, ErrNotSubmitted
	}
	score := s.Score()
	return &Result{
		PaperID:        s.paper.ID,
		ModuleID:       s.paper.ModuleID,
		Score:          score,
		TotalQuestions: len(s.paper.Questions),
		Percentage:     Percentage(score, len(s.paper.Questions)),
		Review:         s.Review(),
	}, nil
}
