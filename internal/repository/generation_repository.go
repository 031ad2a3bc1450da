package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyzap/studyzap-backend/internal/model"
)

// GenerationRepository handles generation-job rows. The Redis queue only
// carries job IDs; this table is the job's source of truth.
type GenerationRepository struct {
	pool *pgxpool.Pool
}

// NewGenerationRepository creates a new GenerationRepository.
func NewGenerationRepository(pool *pgxpool.Pool) *GenerationRepository {
	return &GenerationRepository{pool: pool}
}

// Create inserts a queued job.
func (r *GenerationRepository) Create(ctx context.Context, job *model.GenerationJob) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO generation_jobs (material_id, module_id, question_type, difficulty, question_count, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		job.MaterialID, job.ModuleID, job.QuestionType, job.Difficulty, job.QuestionCount, job.Status,
	).Scan(&job.ID, &job.CreatedAt)
}

// GetByID retrieves one job. Returns pgx.ErrNoRows when absent.
func (r *GenerationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.GenerationJob, error) {
	var job model.GenerationJob
	err := r.pool.QueryRow(ctx,
		`SELECT id, material_id, module_id, question_type, difficulty, question_count, status, paper_id, created_at
		 FROM generation_jobs WHERE id = $1`, id,
	).Scan(&job.ID, &job.MaterialID, &job.ModuleID, &job.QuestionType, &job.Difficulty,
		&job.QuestionCount, &job.Status, &job.PaperID, &job.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SetStatus transitions a job, optionally attaching the produced paper ID.
func (r *GenerationRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.GenerationStatus, paperID *string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE generation_jobs SET status = $2, paper_id = $3 WHERE id = $1`,
		id, status, paperID,
	)
	return err
}
