package services

import (
	"context"

	"streaming-catalog/internal/models"
	"streaming-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// StreamingUpdate carries a partial platform update; nil fields are untouched.
type StreamingUpdate struct {
	Name    *string
	LogoURL *string
	Color   *string
	Active  *bool
}

type StreamingService interface {
	CreateStreaming(ctx context.Context, platform *models.StreamingPlatform) error
	UpdateStreaming(ctx context.Context, id uint, update StreamingUpdate) (*models.StreamingPlatform, error)
	DeleteStreaming(ctx context.Context, id uint) error
	GetStreamings(ctx context.Context, activeOnly bool) ([]models.StreamingPlatform, error)
}

type streamingService struct {
	repo   repository.StreamingRepository
	logger *logrus.Logger
}

func NewStreamingService(repo repository.StreamingRepository, logger *logrus.Logger) StreamingService {
	return &streamingService{
		repo:   repo,
		logger: logger,
	}
}

func (s *streamingService) CreateStreaming(ctx context.Context, platform *models.StreamingPlatform) error {
	if platform.Name == "" {
		return newValidationError("Nome é obrigatório")
	}

	// Name uniqueness is checked at write time; the unique index is only a
	// backstop against concurrent inserts.
	existing, err := s.repo.FindByName(ctx, platform.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrStreamingExists
	}

	return s.repo.Create(ctx, platform)
}

func (s *streamingService) UpdateStreaming(ctx context.Context, id uint, update StreamingUpdate) (*models.StreamingPlatform, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrStreamingNotFound
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, newValidationError("Nome é obrigatório")
		}
		existing.Name = *update.Name
	}
	if update.LogoURL != nil {
		existing.LogoURL = update.LogoURL
	}
	if update.Color != nil {
		existing.Color = update.Color
	}
	if update.Active != nil {
		existing.Active = *update.Active
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *streamingService) DeleteStreaming(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrStreamingNotFound
	}

	return s.repo.Delete(ctx, id)
}

func (s *streamingService) GetStreamings(ctx context.Context, activeOnly bool) ([]models.StreamingPlatform, error) {
	return s.repo.FindAll(ctx, activeOnly)
}
