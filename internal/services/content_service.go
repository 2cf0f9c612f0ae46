package services

import (
	"context"
	"errors"
	"strings"

	"streaming-catalog/internal/config"
	"streaming-catalog/internal/models"
	"streaming-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ContentUpdate carries a partial update. Nil fields are left untouched;
// StreamingIDs nil leaves links alone while an empty slice clears them.
type ContentUpdate struct {
	Title        *string
	Year         *int
	Type         *string
	Genre        *string
	PosterURL    *string
	StreamingIDs *[]uint
}

type ContentService interface {
	CreateContent(ctx context.Context, content *models.Content, streamingIDs []uint) (*models.Content, error)
	UpdateContent(ctx context.Context, id uint, update ContentUpdate) (*models.Content, error)
	DeleteContent(ctx context.Context, id uint) error
	ToggleContent(ctx context.Context, id uint) (bool, error)
	GetContentByID(ctx context.Context, id uint) (*models.Content, error)
	GetContent(ctx context.Context, filter models.ContentFilter) ([]models.Content, error)
	GetStats(ctx context.Context) (*models.ContentStats, error)
}

type contentService struct {
	repo         repository.ContentRepository
	config       *config.Config
	logger       *logrus.Logger
	minioService *MinIOService
}

func NewContentService(repo repository.ContentRepository, cfg *config.Config, logger *logrus.Logger) ContentService {
	return &contentService{
		repo:   repo,
		config: cfg,
		logger: logger,
	}
}

func (s *contentService) SetMinIOService(minioSvc *MinIOService) {
	s.minioService = minioSvc
}

func validateContentFields(title, contentType string) error {
	if title == "" {
		return newValidationError("Título é obrigatório")
	}
	if !models.ValidContentType(contentType) {
		return newValidationError("Tipo deve ser movie, series ou anime")
	}
	return nil
}

func (s *contentService) CreateContent(ctx context.Context, content *models.Content, streamingIDs []uint) (*models.Content, error) {
	if err := validateContentFields(content.Title, content.Type); err != nil {
		return nil, err
	}

	// New entries always start visible; only the toggle flips the flag.
	content.IsActive = true

	if err := s.repo.Create(ctx, content, streamingIDs); err != nil {
		return nil, err
	}

	// Re-read so the response carries the freshly linked platforms.
	return s.repo.FindByID(ctx, content.ID)
}

func (s *contentService) UpdateContent(ctx context.Context, id uint, update ContentUpdate) (*models.Content, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrContentNotFound
	}

	if update.Title != nil {
		if *update.Title == "" {
			return nil, newValidationError("Título é obrigatório")
		}
		existing.Title = *update.Title
	}
	if update.Type != nil {
		if !models.ValidContentType(*update.Type) {
			return nil, newValidationError("Tipo deve ser movie, series ou anime")
		}
		existing.Type = *update.Type
	}
	if update.Year != nil {
		existing.Year = update.Year
	}
	if update.Genre != nil {
		existing.Genre = update.Genre
	}
	if update.PosterURL != nil {
		if existing.PosterURL != nil && *update.PosterURL != *existing.PosterURL {
			s.deleteHostedPoster(*existing.PosterURL)
		}
		existing.PosterURL = update.PosterURL
	}

	var streamingIDs []uint
	replaceLinks := update.StreamingIDs != nil
	if replaceLinks {
		streamingIDs = *update.StreamingIDs
	}

	if err := s.repo.Update(ctx, existing, streamingIDs, replaceLinks); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *contentService) DeleteContent(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrContentNotFound
	}

	if existing.PosterURL != nil {
		s.deleteHostedPoster(*existing.PosterURL)
	}

	return s.repo.Delete(ctx, id)
}

func (s *contentService) ToggleContent(ctx context.Context, id uint) (bool, error) {
	active, err := s.repo.Toggle(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrContentNotFound
		}
		return false, err
	}
	return active, nil
}

func (s *contentService) GetContentByID(ctx context.Context, id uint) (*models.Content, error) {
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	return content, nil
}

func (s *contentService) GetContent(ctx context.Context, filter models.ContentFilter) ([]models.Content, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *contentService) GetStats(ctx context.Context) (*models.ContentStats, error) {
	return s.repo.GetStats(ctx)
}

// deleteHostedPoster removes a poster object from MinIO when the URL points
// at our bucket. Best effort: failures are logged, never surfaced.
func (s *contentService) deleteHostedPoster(posterURL string) {
	if s.minioService == nil {
		return
	}
	if !strings.Contains(posterURL, "http") || !strings.Contains(posterURL, s.config.MinIO.BucketName) {
		return
	}

	parts := strings.Split(posterURL, "/")
	if len(parts) == 0 {
		return
	}
	filename := parts[len(parts)-1]
	if idx := strings.Index(filename, "?"); idx != -1 {
		filename = filename[:idx]
	}

	if err := s.minioService.DeleteFile(filename); err != nil {
		s.logger.WithError(err).Warn("Failed to delete old poster from MinIO")
	}
}
