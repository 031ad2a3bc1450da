package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/studyzap/studyzap-backend/internal/config"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/quiz"
	"github.com/studyzap/studyzap-backend/internal/repository"
)

// ErrPaperNotFound marks a paper identifier that does not resolve. It is
// surfaced to the client as a terminal not-found view and never retried.
var ErrPaperNotFound = errors.New("paper not found")

// PaperService is the paper-lookup capability handed to the session layer.
// Retrieval goes through a Redis read-through cache over Postgres; every
// paper leaving this service has passed the integrity gate, so a session
// may be constructed from it without re-checking.
type PaperService struct {
	paperRepo *repository.PaperRepository
	rdb       *redis.Client
	cfg       *config.Config
	log       zerolog.Logger
}

// NewPaperService creates a new PaperService.
func NewPaperService(paperRepo *repository.PaperRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *PaperService {
	return &PaperService{
		paperRepo: paperRepo,
		rdb:       rdb,
		cfg:       cfg,
		log:       log.With().Str("component", "paper_service").Logger(),
	}
}

// GetPaper resolves a paper identifier to a validated paper.
// Returns ErrPaperNotFound for unknown identifiers and a
// quiz.ErrPaperIntegrity error for papers that violate the data model;
// integrity failures are fatal load errors, not recoverable session
// errors, and the broken paper is never cached.
func (s *PaperService) GetPaper(ctx context.Context, paperID string) (*model.Paper, error) {
	cacheKey := config.CacheKey.PaperPayloadKey(paperID)

	if raw, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var p model.Paper
		if err := json.Unmarshal(raw, &p); err == nil {
			return &p, nil
		}
		// Corrupt cache entry: drop it and fall through to Postgres.
		s.log.Warn().Str("paper_id", paperID).Msg("corrupt paper cache entry, invalidating")
		s.rdb.Del(ctx, cacheKey)
	} else if err != redis.Nil {
		// A broken cache must not take paper loading down with it.
		s.log.Warn().Err(err).Str("paper_id", paperID).Msg("paper cache read failed")
	}

	p, err := s.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaperNotFound
		}
		return nil, fmt.Errorf("load paper %s: %w", paperID, err)
	}

	if err := quiz.ValidatePaper(p); err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(p); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, raw, s.cfg.PaperCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("paper_id", paperID).Msg("paper cache write failed")
		}
	}

	return p, nil
}

// GetPayload resolves a paper to its client-facing shape (answer key
// stripped).
func (s *PaperService) GetPayload(ctx context.Context, paperID string) (*model.PaperPayload, error) {
	p, err := s.GetPaper(ctx, paperID)
	if err != nil {
		return nil, err
	}
	payload := p.Payload()
	return &payload, nil
}
