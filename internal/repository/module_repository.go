package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyzap/studyzap-backend/internal/model"
)

// ModuleRepository handles module data access and progress aggregation.
type ModuleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository creates a new ModuleRepository.
func NewModuleRepository(pool *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{pool: pool}
}

// progressQuery aggregates per-module progress from finished paper results.
// A paper's completion is the best percentage among its results (0 with no
// result); a module's percent complete is the rounded average over its
// papers. Papers are always reported as a count here; the detail endpoint
// carries the list.
const progressQuery = `
	WITH paper_stats AS (
		SELECT p.id, p.module_id,
			(SELECT COUNT(*) FROM questions q WHERE q.paper_id = p.id) AS question_count,
			(SELECT COALESCE(MAX(r.percentage), 0) FROM paper_results r WHERE r.paper_id = p.id) AS best_percentage,
			(SELECT MAX(r.finished_at) FROM paper_results r WHERE r.paper_id = p.id) AS last_finished
		FROM papers p
	)
	SELECT m.id, m.name, m.description, m.created_at, m.updated_at,
		COUNT(ps.id)::int,
		COALESCE(SUM(ps.question_count), 0)::int,
		COALESCE(ROUND(AVG(ps.best_percentage)), 0)::int,
		MAX(ps.last_finished)
	FROM modules m
	LEFT JOIN paper_stats ps ON ps.module_id = m.id
	%s
	GROUP BY m.id
	ORDER BY m.name`

// ListProgress retrieves all modules with aggregate progress.
func (r *ModuleRepository) ListProgress(ctx context.Context) ([]model.ModuleProgress, error) {
	rows, err := r.pool.Query(ctx, withFilter(progressQuery, ""))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []model.ModuleProgress
	for rows.Next() {
		var mp model.ModuleProgress
		if err := rows.Scan(
			&mp.ID, &mp.Name, &mp.Description, &mp.CreatedAt, &mp.UpdatedAt,
			&mp.PaperCount, &mp.QuestionCount, &mp.PercentComplete, &mp.LastActivity,
		); err != nil {
			return nil, err
		}
		modules = append(modules, mp)
	}
	return modules, rows.Err()
}

// GetProgress retrieves one module with aggregate progress. Returns
// pgx.ErrNoRows for an unknown module.
func (r *ModuleRepository) GetProgress(ctx context.Context, moduleID string) (*model.ModuleProgress, error) {
	var mp model.ModuleProgress
	err := r.pool.QueryRow(ctx, withFilter(progressQuery, "WHERE m.id = $1"), moduleID).Scan(
		&mp.ID, &mp.Name, &mp.Description, &mp.CreatedAt, &mp.UpdatedAt,
		&mp.PaperCount, &mp.QuestionCount, &mp.PercentComplete, &mp.LastActivity,
	)
	if err != nil {
		return nil, err
	}
	return &mp, nil
}

// Create inserts a new module.
func (r *ModuleRepository) Create(ctx context.Context, m *model.Module) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO modules (id, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		m.ID, m.Name, m.Description,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
}

// withFilter fills progressQuery's single placeholder with an optional
// WHERE clause on the modules table.
func withFilter(query, filter string) string {
	return fmt.Sprintf(query, filter)
}
