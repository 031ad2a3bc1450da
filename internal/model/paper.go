package model

import "time"

// Paper is a named, ordered quiz scoped to one module. The question order
// is significant: it defines navigation order and the question number shown
// to the user. A paper is immutable once loaded.
type Paper struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ModuleID   string `json:"module_id"`
	ModuleName string `json:"module_name"`
	// TimeLimit is an informational label ("90 min"); it is not enforced.
	TimeLimit  string     `json:"time_limit"`
	Difficulty string     `json:"difficulty,omitempty"`
	Questions  []Question `json:"questions"`
	CreatedAt  time.Time  `json:"created_at"`
}

// PaperSummary is a paper row without its questions, for module listings.
type PaperSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ModuleID      string `json:"module_id"`
	TimeLimit     string `json:"time_limit"`
	Difficulty    string `json:"difficulty,omitempty"`
	QuestionCount int    `json:"question_count"`
}

// PaperPayload is the client-facing paper shape with the answer key stripped.
type PaperPayload struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	ModuleID   string               `json:"module_id"`
	ModuleName string               `json:"module_name"`
	TimeLimit  string               `json:"time_limit"`
	Difficulty string               `json:"difficulty,omitempty"`
	Questions  []QuestionForStudent `json:"questions"`
}

// Payload converts a paper to its client-facing shape.
func (p *Paper) Payload() PaperPayload {
	questions := make([]QuestionForStudent, len(p.Questions))
	for i, q := range p.Questions {
		questions[i] = q.ForStudent()
	}
	return PaperPayload{
		ID:         p.ID,
		Name:       p.Name,
		ModuleID:   p.ModuleID,
		ModuleName: p.ModuleName,
		TimeLimit:  p.TimeLimit,
		Difficulty: p.Difficulty,
		Questions:  questions,
	}
}
