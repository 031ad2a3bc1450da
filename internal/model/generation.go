package model

import (
	"time"

	"github.com/google/uuid"
)

// GenerationStatus enumerates generation job states.
type GenerationStatus string

const (
	GenerationStatusQueued    GenerationStatus = "QUEUED"
	GenerationStatusRunning   GenerationStatus = "RUNNING"
	GenerationStatusCompleted GenerationStatus = "COMPLETED"
	GenerationStatusFailed    GenerationStatus = "FAILED"
)

// GenerationJob is a queued request to generate a practice paper from an
// uploaded material. Generation itself is stubbed: the worker simulates
// the model delay and produces templated questions.
type GenerationJob struct {
	ID            uuid.UUID        `json:"id"`
	MaterialID    *uuid.UUID       `json:"material_id,omitempty"`
	ModuleID      string           `json:"module_id"`
	QuestionType  string           `json:"question_type"`
	Difficulty    string           `json:"difficulty"`
	QuestionCount int              `json:"question_count"`
	Status        GenerationStatus `json:"status"`
	PaperID       *string          `json:"paper_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// CreateGenerationRequest is the payload for enqueueing a generation job.
type CreateGenerationRequest struct {
	ModuleID      string `json:"module_id" binding:"required,min=2,max=64"`
	MaterialID    string `json:"material_id" binding:"omitempty,uuid"`
	QuestionType  string `json:"question_type" binding:"required,oneof=mcq short long mixed"`
	Difficulty    string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	QuestionCount int    `json:"question_count" binding:"required,min=1,max=20"`
}
