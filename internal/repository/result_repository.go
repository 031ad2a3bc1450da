package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyzap/studyzap-backend/internal/model"
)

// ResultRepository persists finished-paper results. Only the graded
// summary is stored; in-progress sessions never touch the database.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Create inserts a finished-paper result.
func (r *ResultRepository) Create(ctx context.Context, res *model.PaperResult) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO paper_results (paper_id, module_id, score, total_questions, percentage)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, finished_at`,
		res.PaperID, res.ModuleID, res.Score, res.TotalQuestions, res.Percentage,
	).Scan(&res.ID, &res.FinishedAt)
}

// ListRecent retrieves the most recent finished-paper results across all
// modules, newest first.
func (r *ResultRepository) ListRecent(ctx context.Context, limit int) ([]model.PaperResult, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, paper_id, module_id, score, total_questions, percentage, finished_at
		 FROM paper_results
		 ORDER BY finished_at DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.PaperResult
	for rows.Next() {
		var res model.PaperResult
		if err := rows.Scan(&res.ID, &res.PaperID, &res.ModuleID, &res.Score, &res.TotalQuestions, &res.Percentage, &res.FinishedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
