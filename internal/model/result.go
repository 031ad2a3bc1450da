package model

import (
	"time"

	"github.com/google/uuid"
)

// PaperResult is the record persisted when a session is submitted. It is
// the minimum an external aggregator needs to compute per-module progress;
// the session itself is never persisted.
type PaperResult struct {
	ID             uuid.UUID `json:"id"`
	PaperID        string    `json:"paper_id"`
	ModuleID       string    `json:"module_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     int       `json:"percentage"`
	FinishedAt     time.Time `json:"finished_at"`
}
