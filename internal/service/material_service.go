package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/studyzap/studyzap-backend/internal/config"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/repository"
)

// Sentinel errors for material uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Allowed study-material MIME types.
var allowedMIMETypes = map[string]string{
	"application/pdf": ".pdf",
	"text/plain":      ".txt",
	"text/markdown":   ".md",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": ".pptx",
}

// MaterialService handles study-material uploads: the file goes to local
// storage under a UUID name, the metadata row to Postgres.
type MaterialService struct {
	cfg          *config.Config
	materialRepo *repository.MaterialRepository
}

// NewMaterialService creates a new MaterialService.
func NewMaterialService(cfg *config.Config, materialRepo *repository.MaterialRepository) *MaterialService {
	return &MaterialService{cfg: cfg, materialRepo: materialRepo}
}

// SaveUpload validates, stores, and records an uploaded material.
func (s *MaterialService) SaveUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.Material, error) {
	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedMIMETypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s (allowed: %s)",
			ErrUnsupportedFileType, contentType, strings.Join(allowedTypes(), ", "))
	}

	if header.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	destPath := filepath.Join(s.cfg.UploadDir, filename)

	dst, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	m := &model.Material{
		FileName:    header.Filename,
		StoredPath:  "/uploads/" + filename,
		ContentType: contentType,
		SizeBytes:   header.Size,
	}
	if err := s.materialRepo.Create(ctx, m); err != nil {
		// The metadata row is the source of truth; an orphaned file on
		// disk is preferable to a row pointing at nothing.
		_ = os.Remove(destPath)
		return nil, fmt.Errorf("record material: %w", err)
	}

	return m, nil
}

func allowedTypes() []string {
	types := make([]string, 0, len(allowedMIMETypes))
	for t := range allowedMIMETypes {
		types = append(types, t)
	}
	return types
}
