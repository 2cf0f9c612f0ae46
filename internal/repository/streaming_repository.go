package repository

import (
	"context"
	"errors"
	"time"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/gorm"
)

type StreamingRepository interface {
	Create(ctx context.Context, platform *models.StreamingPlatform) error
	Update(ctx context.Context, platform *models.StreamingPlatform) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.StreamingPlatform, error)
	FindByName(ctx context.Context, name string) (*models.StreamingPlatform, error)
	FindAll(ctx context.Context, activeOnly bool) ([]models.StreamingPlatform, error)
}

type streamingRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewStreamingRepository(db *database.Database) StreamingRepository {
	return &streamingRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *streamingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *streamingRepository) Create(ctx context.Context, platform *models.StreamingPlatform) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(platform).Error
}

func (r *streamingRepository) Update(ctx context.Context, platform *models.StreamingPlatform) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(platform).Error
}

// Delete removes the platform's availability links and then the platform row
// inside one transaction, keeping the cascade explicit.
func (r *streamingRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("streaming_id = ?", id).Delete(&models.ContentStreaming{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.StreamingPlatform{}, id).Error
	})
}

func (r *streamingRepository) FindByID(ctx context.Context, id uint) (*models.StreamingPlatform, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var platform models.StreamingPlatform
	err := r.db.WithContext(ctx).First(&platform, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &platform, nil
}

func (r *streamingRepository) FindByName(ctx context.Context, name string) (*models.StreamingPlatform, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var platform models.StreamingPlatform
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&platform).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &platform, nil
}

func (r *streamingRepository) FindAll(ctx context.Context, activeOnly bool) ([]models.StreamingPlatform, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.StreamingPlatform{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var platforms []models.StreamingPlatform
	err := query.Order("name ASC").Find(&platforms).Error
	return platforms, err
}
