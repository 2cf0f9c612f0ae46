package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"streaming-catalog/internal/config"
	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Content{},
		&models.StreamingPlatform{},
		&models.ContentStreaming{},
	))

	return database.New(db, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
}

func createPlatform(t *testing.T, db *database.Database, name string, active bool) *models.StreamingPlatform {
	t.Helper()

	platform := &models.StreamingPlatform{Name: name, Active: active}
	require.NoError(t, db.DB.Create(platform).Error)
	return platform
}

func createContent(t *testing.T, repo ContentRepository, title, contentType, genre string, streamingIDs []uint) *models.Content {
	t.Helper()

	content := &models.Content{Title: title, Type: contentType, IsActive: true}
	if genre != "" {
		content.Genre = &genre
	}
	require.NoError(t, repo.Create(context.Background(), content, streamingIDs))
	return content
}

func setLinkUnavailable(t *testing.T, db *database.Database, contentID, streamingID uint) {
	t.Helper()

	err := db.DB.Model(&models.ContentStreaming{}).
		Where("content_id = ? AND streaming_id = ?", contentID, streamingID).
		Update("available", false).Error
	require.NoError(t, err)
}

func TestFindAllSortsByTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	createContent(t, repo, "Zatoichi", models.TypeMovie, "", nil)
	createContent(t, repo, "Akira", models.TypeAnime, "", nil)
	createContent(t, repo, "Monk", models.TypeSeries, "", nil)

	contents, err := repo.FindAll(ctx, models.ContentFilter{})
	require.NoError(t, err)
	require.Len(t, contents, 3)
	assert.Equal(t, "Akira", contents[0].Title)
	assert.Equal(t, "Monk", contents[1].Title)
	assert.Equal(t, "Zatoichi", contents[2].Title)
}

func TestFindAllHidesInactiveByDefault(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	createContent(t, repo, "Akira", models.TypeAnime, "", nil)
	hidden := createContent(t, repo, "Monk", models.TypeSeries, "", nil)

	active, err := repo.Toggle(ctx, hidden.ID)
	require.NoError(t, err)
	require.False(t, active)

	contents, err := repo.FindAll(ctx, models.ContentFilter{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "Akira", contents[0].Title)

	// show_inactive returns active and inactive undifferentiated
	contents, err = repo.FindAll(ctx, models.ContentFilter{ShowInactive: true})
	require.NoError(t, err)
	assert.Len(t, contents, 2)
}

func TestFindAllTypeAndTextFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	createContent(t, repo, "Akira", models.TypeAnime, "Sci-Fi", nil)
	createContent(t, repo, "Breaking Bad", models.TypeSeries, "Drama", nil)
	createContent(t, repo, "Coco", models.TypeMovie, "Family", nil)

	contents, err := repo.FindAll(ctx, models.ContentFilter{Type: models.TypeSeries})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "Breaking Bad", contents[0].Title)

	// genre is a case-insensitive substring match
	contents, err = repo.FindAll(ctx, models.ContentFilter{Genre: "sci"})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "Akira", contents[0].Title)

	// search matches the title case-insensitively
	contents, err = repo.FindAll(ctx, models.ContentFilter{Search: "bReAk"})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "Breaking Bad", contents[0].Title)

	// filters combine conjunctively
	contents, err = repo.FindAll(ctx, models.ContentFilter{Type: models.TypeMovie, Search: "akira"})
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestFindAllStreamingIDsUnion(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	netflix := createPlatform(t, db, "Netflix", true)
	crunchyroll := createPlatform(t, db, "Crunchyroll", true)
	max := createPlatform(t, db, "Max", true)

	akira := createContent(t, repo, "Akira", models.TypeAnime, "", []uint{netflix.ID, crunchyroll.ID})
	createContent(t, repo, "Breaking Bad", models.TypeSeries, "", []uint{crunchyroll.ID})
	createContent(t, repo, "Coco", models.TypeMovie, "", nil)

	// union, not intersection: Akira is on Netflix only, Breaking Bad on
	// Crunchyroll only, yet both match [Netflix, Crunchyroll]
	setLinkUnavailable(t, db, akira.ID, crunchyroll.ID)

	contents, err := repo.FindAll(ctx, models.ContentFilter{StreamingIDs: []uint{netflix.ID, crunchyroll.ID}})
	require.NoError(t, err)
	require.Len(t, contents, 2)
	assert.Equal(t, "Akira", contents[0].Title)
	assert.Equal(t, "Breaking Bad", contents[1].Title)

	// an unavailable link does not count as membership
	contents, err = repo.FindAll(ctx, models.ContentFilter{StreamingIDs: []uint{crunchyroll.ID}})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "Breaking Bad", contents[0].Title)

	contents, err = repo.FindAll(ctx, models.ContentFilter{StreamingIDs: []uint{max.ID}})
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestFindByIDPreloadsAvailablePlatforms(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	netflix := createPlatform(t, db, "Netflix", true)
	crunchyroll := createPlatform(t, db, "Crunchyroll", true)
	akira := createContent(t, repo, "Akira", models.TypeAnime, "", []uint{netflix.ID, crunchyroll.ID})
	setLinkUnavailable(t, db, akira.ID, crunchyroll.ID)

	found, err := repo.FindByID(ctx, akira.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	platforms := found.AvailablePlatforms()
	require.Len(t, platforms, 1)
	assert.Equal(t, "Netflix", platforms[0].Name)

	missing, err := repo.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateReplacesAllLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	netflix := createPlatform(t, db, "Netflix", true)
	crunchyroll := createPlatform(t, db, "Crunchyroll", true)
	max := createPlatform(t, db, "Max", true)

	content := createContent(t, repo, "Akira", models.TypeAnime, "", []uint{netflix.ID, crunchyroll.ID})

	// replaceLinks=false leaves the links untouched
	content.Title = "Akira (1988)"
	require.NoError(t, repo.Update(ctx, content, nil, false))

	found, err := repo.FindByID(ctx, content.ID)
	require.NoError(t, err)
	assert.Equal(t, "Akira (1988)", found.Title)
	assert.Len(t, found.AvailablePlatforms(), 2)

	// replaceLinks=true swaps the whole set
	require.NoError(t, repo.Update(ctx, content, []uint{max.ID}, true))
	found, err = repo.FindByID(ctx, content.ID)
	require.NoError(t, err)
	require.Len(t, found.AvailablePlatforms(), 1)
	assert.Equal(t, "Max", found.AvailablePlatforms()[0].Name)

	// an explicit empty set clears every link
	require.NoError(t, repo.Update(ctx, content, nil, true))
	found, err = repo.FindByID(ctx, content.ID)
	require.NoError(t, err)
	assert.Empty(t, found.AvailablePlatforms())
}

func TestDeleteRemovesLinksAndRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	netflix := createPlatform(t, db, "Netflix", true)
	content := createContent(t, repo, "Akira", models.TypeAnime, "", []uint{netflix.ID})

	require.NoError(t, repo.Delete(ctx, content.ID))

	found, err := repo.FindByID(ctx, content.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var linkCount int64
	require.NoError(t, db.DB.Model(&models.ContentStreaming{}).Where("content_id = ?", content.ID).Count(&linkCount).Error)
	assert.Zero(t, linkCount)
}

func TestToggleTwiceRestoresState(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	content := createContent(t, repo, "Akira", models.TypeAnime, "", nil)

	active, err := repo.Toggle(ctx, content.ID)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = repo.Toggle(ctx, content.ID)
	require.NoError(t, err)
	assert.True(t, active)

	_, err = repo.Toggle(ctx, 9999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	netflix := createPlatform(t, db, "Netflix", true)
	crunchyroll := createPlatform(t, db, "Crunchyroll", true)
	createPlatform(t, db, "Defunct TV", false)

	createContent(t, repo, "Coco", models.TypeMovie, "", []uint{netflix.ID})
	createContent(t, repo, "Up", models.TypeMovie, "", []uint{netflix.ID, crunchyroll.ID})
	inactive := createContent(t, repo, "Monk", models.TypeSeries, "", []uint{netflix.ID})

	_, err := repo.Toggle(ctx, inactive.ID)
	require.NoError(t, err)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalContent)
	assert.EqualValues(t, 1, stats.TotalInactive)
	assert.EqualValues(t, 2, stats.ByType.Movies)
	assert.EqualValues(t, 0, stats.ByType.Series)
	assert.EqualValues(t, 0, stats.ByType.Animes)

	// inactive platforms are excluded; links of inactive content do not count
	require.Len(t, stats.ByStreaming, 2)
	assert.Equal(t, "Crunchyroll", stats.ByStreaming[0].Streaming.Name)
	assert.EqualValues(t, 1, stats.ByStreaming[0].Count)
	assert.Equal(t, "Netflix", stats.ByStreaming[1].Streaming.Name)
	assert.EqualValues(t, 2, stats.ByStreaming[1].Count)
}
