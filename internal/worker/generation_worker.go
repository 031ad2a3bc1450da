package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/studyzap/studyzap-backend/internal/config"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/repository"
)

const generationPollTimeout = 1 * time.Second

// GenerationWorker drains the generation queue and produces papers.
// Question generation is a stub: the worker simulates the model latency
// and writes templated questions, mirroring what a real generation
// pipeline would hand back. Job status transitions QUEUED → RUNNING →
// COMPLETED/FAILED are visible to pollers throughout.
type GenerationWorker struct {
	genRepo   *repository.GenerationRepository
	paperRepo *repository.PaperRepository
	rdb       *redis.Client
	delay     time.Duration
	log       zerolog.Logger
}

// NewGenerationWorker creates a new GenerationWorker.
func NewGenerationWorker(
	genRepo *repository.GenerationRepository,
	paperRepo *repository.PaperRepository,
	rdb *redis.Client,
	delay time.Duration,
	log zerolog.Logger,
) *GenerationWorker {
	return &GenerationWorker{
		genRepo:   genRepo,
		paperRepo: paperRepo,
		rdb:       rdb,
		delay:     delay,
		log:       log.With().Str("component", "generation_worker").Logger(),
	}
}

// Start runs the worker loop until the context is cancelled. A job in
// flight at shutdown finishes against a background context so it is not
// left RUNNING forever.
func (w *GenerationWorker) Start(ctx context.Context) {
	w.log.Info().Dur("delay", w.delay).Msg("GenerationWorker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("GenerationWorker stopped")
			return
		default:
			item, err := w.rdb.BLPop(ctx, generationPollTimeout, config.WorkerKey.GenerationQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}
			if len(item) < 2 {
				continue
			}

			jobID, err := uuid.Parse(item[1])
			if err != nil {
				w.log.Error().Str("raw", item[1]).Msg("invalid job ID on queue")
				continue
			}

			w.process(ctx, jobID)
		}
	}
}

func (w *GenerationWorker) process(ctx context.Context, jobID uuid.UUID) {
	log := w.log.With().Str("job_id", jobID.String()).Logger()

	job, err := w.genRepo.GetByID(ctx, jobID)
	if err != nil {
		log.Error().Err(err).Msg("load job failed")
		return
	}

	if err := w.genRepo.SetStatus(ctx, jobID, model.GenerationStatusRunning, nil); err != nil {
		log.Error().Err(err).Msg("mark job running failed")
		return
	}

	// Simulated model latency. Shutdown mid-wait finishes the job rather
	// than abandoning it.
	finishCtx := ctx
	select {
	case <-time.After(w.delay):
	case <-ctx.Done():
		finishCtx = context.Background()
	}

	paper := buildGeneratedPaper(job)
	if err := w.paperRepo.CreateWithQuestions(finishCtx, paper); err != nil {
		log.Error().Err(err).Msg("write generated paper failed")
		_ = w.genRepo.SetStatus(finishCtx, jobID, model.GenerationStatusFailed, nil)
		return
	}

	if err := w.genRepo.SetStatus(finishCtx, jobID, model.GenerationStatusCompleted, &paper.ID); err != nil {
		log.Error().Err(err).Msg("mark job completed failed")
		return
	}

	log.Info().
		Str("paper_id", paper.ID).
		Int("questions", len(paper.Questions)).
		Msg("generation job completed")
}

// buildGeneratedPaper produces the canned paper a real generator would
// return: one templated question per requested slot, first option correct.
func buildGeneratedPaper(job *model.GenerationJob) *model.Paper {
	questions := make([]model.Question, job.QuestionCount)
	for i := range questions {
		questions[i] = model.Question{
			ID:     i,
			Prompt: fmt.Sprintf("Based on your uploaded materials, which of the following best describes the key concept discussed in section %d?", i+1),
			Options: []string{
				"The fundamental principle that governs the relationship between variables",
				"A secondary concept that supports the main theory",
				"An example used to illustrate the practical application",
				"A counterargument to the established framework",
			},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("Section %d of the material introduces this as its central idea.", i+1),
		}
	}

	suffix := job.ID.String()[:8]
	return &model.Paper{
		ID:         fmt.Sprintf("generated-%s", suffix),
		Name:       fmt.Sprintf("Practice Paper (%s, %s)", job.QuestionType, job.Difficulty),
		ModuleID:   job.ModuleID,
		TimeLimit:  fmt.Sprintf("%d min", 3*job.QuestionCount),
		Difficulty: job.Difficulty,
		Questions:  questions,
	}
}
