package repository

import (
	"context"
	"errors"
	"time"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepository interface {
	// CRUD operations
	Create(ctx context.Context, content *models.Content, streamingIDs []uint) error
	Update(ctx context.Context, content *models.Content, streamingIDs []uint, replaceLinks bool) error
	Delete(ctx context.Context, id uint) error
	Toggle(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Content, error)
	FindAll(ctx context.Context, filter models.ContentFilter) ([]models.Content, error)

	// Aggregation operations
	GetStats(ctx context.Context) (*models.ContentStats, error)
}

type contentRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewContentRepository(db *database.Database) ContentRepository {
	return &contentRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *contentRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content, streamingIDs []uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(content).Error; err != nil {
			return err
		}
		return insertLinks(tx, content.ID, streamingIDs)
	})
}

func (r *contentRepository) Update(ctx context.Context, content *models.Content, streamingIDs []uint, replaceLinks bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(content).Error; err != nil {
			return err
		}
		if !replaceLinks {
			return nil
		}
		if err := tx.Where("content_id = ?", content.ID).Delete(&models.ContentStreaming{}).Error; err != nil {
			return err
		}
		return insertLinks(tx, content.ID, streamingIDs)
	})
}

// insertLinks creates available links for every given platform id.
func insertLinks(tx *gorm.DB, contentID uint, streamingIDs []uint) error {
	now := time.Now().UTC()
	for _, sid := range streamingIDs {
		link := models.ContentStreaming{
			ContentID:   contentID,
			StreamingID: sid,
			Available:   true,
			LastChecked: now,
		}
		if err := tx.Omit(clause.Associations).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the content's links and then the content row itself inside
// one transaction, keeping the cascade explicit.
func (r *contentRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&models.ContentStreaming{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Content{}, id).Error
	})
}

// Toggle flips the active flag only and returns the new state.
func (r *contentRepository) Toggle(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var active bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var content models.Content
		if err := tx.First(&content, id).Error; err != nil {
			return err
		}
		active = !content.IsActive
		return tx.Model(&content).Update("is_active", active).Error
	})
	if err != nil {
		return false, err
	}
	return active, nil
}

func (r *contentRepository) FindByID(ctx context.Context, id uint) (*models.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var content models.Content
	err := r.db.WithContext(ctx).Preload("Links.Platform").First(&content, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) FindAll(ctx context.Context, filter models.ContentFilter) ([]models.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Content{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Genre != "" {
		query = query.Where("LOWER(genre) LIKE LOWER(?)", "%"+filter.Genre+"%")
	}
	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if len(filter.StreamingIDs) > 0 {
		// Union semantics: at least one available link to any listed platform.
		query = query.Where(
			"EXISTS (SELECT 1 FROM content_streaming cs WHERE cs.content_id = content.id AND cs.available = ? AND cs.streaming_id IN ?)",
			true, filter.StreamingIDs,
		)
	}
	if !filter.ShowInactive {
		query = query.Where("is_active = ?", true)
	}

	var contents []models.Content
	err := query.Preload("Links.Platform").Order("title ASC").Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) GetStats(ctx context.Context) (*models.ContentStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	stats := &models.ContentStats{}

	active := db.Model(&models.Content{}).Where("is_active = ?", true)
	if err := active.Count(&stats.TotalContent).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Content{}).Where("is_active = ?", false).Count(&stats.TotalInactive).Error; err != nil {
		return nil, err
	}

	typeCounts := map[string]*int64{
		models.TypeMovie:  &stats.ByType.Movies,
		models.TypeSeries: &stats.ByType.Series,
		models.TypeAnime:  &stats.ByType.Animes,
	}
	for contentType, dest := range typeCounts {
		err := db.Model(&models.Content{}).
			Where("is_active = ? AND type = ?", true, contentType).
			Count(dest).Error
		if err != nil {
			return nil, err
		}
	}

	var platforms []models.StreamingPlatform
	if err := db.Where("active = ?", true).Order("name ASC").Find(&platforms).Error; err != nil {
		return nil, err
	}

	stats.ByStreaming = make([]models.StreamingCount, 0, len(platforms))
	for _, platform := range platforms {
		var count int64
		err := db.Model(&models.ContentStreaming{}).
			Joins("JOIN content ON content.id = content_streaming.content_id").
			Where("content_streaming.streaming_id = ? AND content_streaming.available = ? AND content.is_active = ?",
				platform.ID, true, true).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		stats.ByStreaming = append(stats.ByStreaming, models.StreamingCount{
			Streaming: platform,
			Count:     count,
		})
	}

	return stats, nil
}
