package quiz

import (
	"errors"
	"fmt"

	"github.com/studyzap/studyzap-backend/internal/model"
)

// ErrPaperIntegrity marks a fetched paper that violates the data model
// invariants. It is a fatal load error: no session may be constructed
// from such a paper and the load is not retried.
var ErrPaperIntegrity = errors.New("paper integrity violation")

// ValidatePaper checks the invariants every paper must satisfy before a
// session is created from it: at least one question, at least two options
// per question, and every correct-answer index in range.
func ValidatePaper(p *model.Paper) error {
	if p == nil {
		return fmt.Errorf("%w: nil paper", ErrPaperIntegrity)
	}
	if len(p.Questions) == 0 {
		return fmt.Errorf("%w: paper %q has no questions", ErrPaperIntegrity, p.ID)
	}
	for i, q := range p.Questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: paper %q question %d has %d options", ErrPaperIntegrity, p.ID, i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("%w: paper %q question %d correct answer %d out of range", ErrPaperIntegrity, p.ID, i, q.CorrectAnswer)
		}
	}
	return nil
}
