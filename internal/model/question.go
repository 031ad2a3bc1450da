package model

// Question is a single multiple-choice question inside a paper.
// Questions are immutable once loaded; CorrectAnswer is a zero-based
// index into Options.
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuestionForStudent is a question without the answer key, sent to clients
// while a session is in progress.
type QuestionForStudent struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// ForStudent strips the answer key and explanation.
func (q Question) ForStudent() QuestionForStudent {
	return QuestionForStudent{
		ID:      q.ID,
		Prompt:  q.Prompt,
		Options: q.Options,
	}
}
