package model

import "time"

// Module is a subject grouping of papers.
type Module struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ModuleProgress is a module with aggregate progress computed from
// finished paper results. PaperCount is always a count; the papers
// themselves are listed by the module detail endpoint.
type ModuleProgress struct {
	Module
	PaperCount      int        `json:"paper_count"`
	QuestionCount   int        `json:"question_count"`
	PercentComplete int        `json:"percent_complete"`
	LastActivity    *time.Time `json:"last_activity,omitempty"`
}

// ModuleDetail is one module plus its paper summaries.
type ModuleDetail struct {
	ModuleProgress
	Papers []PaperSummary `json:"papers"`
}

// CreateModuleRequest is the payload for creating a module.
type CreateModuleRequest struct {
	ID          string `json:"id" binding:"required,min=2,max=64,alphanum"`
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"max=1000"`
}
