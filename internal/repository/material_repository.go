package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyzap/studyzap-backend/internal/model"
)

// MaterialRepository handles uploaded-material metadata.
type MaterialRepository struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

// Create inserts material metadata after the file has been stored on disk.
func (r *MaterialRepository) Create(ctx context.Context, m *model.Material) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO materials (file_name, stored_path, content_type, size_bytes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, uploaded_at`,
		m.FileName, m.StoredPath, m.ContentType, m.SizeBytes,
	).Scan(&m.ID, &m.UploadedAt)
}

// GetByID retrieves one material. Returns pgx.ErrNoRows when absent.
func (r *MaterialRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.pool.QueryRow(ctx,
		`SELECT id, file_name, stored_path, content_type, size_bytes, uploaded_at
		 FROM materials WHERE id = $1`, id,
	).Scan(&m.ID, &m.FileName, &m.StoredPath, &m.ContentType, &m.SizeBytes, &m.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
