package model

import (
	"time"

	"github.com/google/uuid"
)

// Material is an uploaded study file used as generation input.
type Material struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	StoredPath  string    `json:"stored_path"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
