package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/studyzap/studyzap-backend/internal/config"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/repository"
)

// Sentinel errors for generation jobs.
var (
	ErrJobNotFound      = errors.New("generation job not found")
	ErrMaterialNotFound = errors.New("material not found")
)

// GenerationService enqueues question-generation jobs. The job row is the
// source of truth; the Redis list only carries job IDs for the worker to
// pick up. Generation itself is stubbed in the worker.
type GenerationService struct {
	genRepo      *repository.GenerationRepository
	moduleRepo   *repository.ModuleRepository
	materialRepo *repository.MaterialRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(
	genRepo *repository.GenerationRepository,
	moduleRepo *repository.ModuleRepository,
	materialRepo *repository.MaterialRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *GenerationService {
	return &GenerationService{
		genRepo:      genRepo,
		moduleRepo:   moduleRepo,
		materialRepo: materialRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "generation_service").Logger(),
	}
}

// Enqueue validates the request, records a queued job, and pushes its ID
// onto the worker queue.
func (s *GenerationService) Enqueue(ctx context.Context, req model.CreateGenerationRequest) (*model.GenerationJob, error) {
	if _, err := s.moduleRepo.GetProgress(ctx, req.ModuleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("check module: %w", err)
	}

	job := &model.GenerationJob{
		ModuleID:      req.ModuleID,
		QuestionType:  req.QuestionType,
		Difficulty:    req.Difficulty,
		QuestionCount: req.QuestionCount,
		Status:        model.GenerationStatusQueued,
	}

	if req.MaterialID != "" {
		materialID, err := uuid.Parse(req.MaterialID)
		if err != nil {
			return nil, ErrMaterialNotFound
		}
		if _, err := s.materialRepo.GetByID(ctx, materialID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrMaterialNotFound
			}
			return nil, fmt.Errorf("check material: %w", err)
		}
		job.MaterialID = &materialID
	}

	if err := s.genRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	if err := s.rdb.RPush(ctx, config.WorkerKey.GenerationQueue, job.ID.String()).Err(); err != nil {
		// The worker will never see the job; fail it now rather than
		// leaving it QUEUED forever.
		_ = s.genRepo.SetStatus(ctx, job.ID, model.GenerationStatusFailed, nil)
		return nil, fmt.Errorf("enqueue job: %w", err)
	}

	s.log.Info().
		Str("job_id", job.ID.String()).
		Str("module_id", job.ModuleID).
		Int("question_count", job.QuestionCount).
		Msg("generation job queued")
	return job, nil
}

// GetJob retrieves a job's current status.
func (s *GenerationService) GetJob(ctx context.Context, jobID uuid.UUID) (*model.GenerationJob, error) {
	job, err := s.genRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}
