package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyzap/studyzap-backend/internal/model"
)

// PaperRepository resolves paper identifiers to fully-populated papers.
// It is the only component that knows where papers live; the session
// engine receives papers as immutable values and never touches storage.
type PaperRepository struct {
	pool *pgxpool.Pool
}

// NewPaperRepository creates a new PaperRepository.
func NewPaperRepository(pool *pgxpool.Pool) *PaperRepository {
	return &PaperRepository{pool: pool}
}

// GetByID retrieves a paper with its ordered question list. Returns
// pgx.ErrNoRows when the identifier does not resolve.
func (r *PaperRepository) GetByID(ctx context.Context, paperID string) (*model.Paper, error) {
	var p model.Paper
	err := r.pool.QueryRow(ctx,
		`SELECT p.id, p.name, p.module_id, m.name, p.time_limit, p.difficulty, p.created_at
		 FROM papers p
		 JOIN modules m ON m.id = p.module_id
		 WHERE p.id = $1`, paperID,
	).Scan(&p.ID, &p.Name, &p.ModuleID, &p.ModuleName, &p.TimeLimit, &p.Difficulty, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT position, prompt, options, correct_answer, explanation
		 FROM questions WHERE paper_id = $1
		 ORDER BY position`, paperID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			q       model.Question
			options []byte
		)
		if err := rows.Scan(&q.ID, &q.Prompt, &options, &q.CorrectAnswer, &q.Explanation); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("decode options for paper %s question %d: %w", paperID, q.ID, err)
		}
		p.Questions = append(p.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}

// ListByModule retrieves paper summaries for a module, newest last.
func (r *PaperRepository) ListByModule(ctx context.Context, moduleID string) ([]model.PaperSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.module_id, p.time_limit, p.difficulty,
		        (SELECT COUNT(*) FROM questions q WHERE q.paper_id = p.id)
		 FROM papers p
		 WHERE p.module_id = $1
		 ORDER BY p.created_at`, moduleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []model.PaperSummary
	for rows.Next() {
		var s model.PaperSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.ModuleID, &s.TimeLimit, &s.Difficulty, &s.QuestionCount); err != nil {
			return nil, err
		}
		papers = append(papers, s)
	}
	return papers, rows.Err()
}

// CreateWithQuestions inserts a paper and its questions atomically. Used by
// the generation worker once a stubbed generation run completes.
func (r *PaperRepository) CreateWithQuestions(ctx context.Context, p *model.Paper) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO papers (id, module_id, name, time_limit, difficulty)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.ModuleID, p.Name, p.TimeLimit, p.Difficulty,
	); err != nil {
		return fmt.Errorf("insert paper: %w", err)
	}

	for i, q := range p.Questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("encode options: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO questions (paper_id, position, prompt, options, correct_answer, explanation)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, i, q.Prompt, options, q.CorrectAnswer, q.Explanation,
		); err != nil {
			return fmt.Errorf("insert question %d: %w", i, err)
		}
	}

	return tx.Commit(ctx)
}
