package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/repository"
)

// ErrModuleNotFound marks a module identifier that does not resolve.
var ErrModuleNotFound = errors.New("module not found")

// ModuleService exposes modules with aggregate progress. Progress is
// computed from finished-paper results; in-progress attempts do not
// contribute.
type ModuleService struct {
	moduleRepo *repository.ModuleRepository
	paperRepo  *repository.PaperRepository
	log        zerolog.Logger
}

// NewModuleService creates a new ModuleService.
func NewModuleService(moduleRepo *repository.ModuleRepository, paperRepo *repository.PaperRepository, log zerolog.Logger) *ModuleService {
	return &ModuleService{
		moduleRepo: moduleRepo,
		paperRepo:  paperRepo,
		log:        log.With().Str("component", "module_service").Logger(),
	}
}

// ListProgress returns all modules with aggregate progress.
func (s *ModuleService) ListProgress(ctx context.Context) ([]model.ModuleProgress, error) {
	return s.moduleRepo.ListProgress(ctx)
}

// GetDetail returns one module with its progress and paper summaries.
func (s *ModuleService) GetDetail(ctx context.Context, moduleID string) (*model.ModuleDetail, error) {
	progress, err := s.moduleRepo.GetProgress(ctx, moduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}

	papers, err := s.paperRepo.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if papers == nil {
		papers = []model.PaperSummary{}
	}

	return &model.ModuleDetail{
		ModuleProgress: *progress,
		Papers:         papers,
	}, nil
}

// Create inserts a new module.
func (s *ModuleService) Create(ctx context.Context, m *model.Module) error {
	return s.moduleRepo.Create(ctx, m)
}
