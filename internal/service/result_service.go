package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/repository"
)

// ResultService exposes finished paper results for export.
type ResultService struct {
	repo *repository.ResultRepository
	log  zerolog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(repo *repository.ResultRepository, log zerolog.Logger) *ResultService {
	return &ResultService{
		repo: repo,
		log:  log.With().Str("component", "result_service").Logger(),
	}
}

// ListRecent returns the most recently finished results, newest first.
func (s *ResultService) ListRecent(ctx context.Context, limit int) ([]model.PaperResult, error) {
	results, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list results")
		return nil, err
	}
	if results == nil {
		results = []model.PaperResult{}
	}
	return results, nil
}
