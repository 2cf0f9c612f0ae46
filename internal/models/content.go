package models

import (
	"time"
)

// Content types accepted by the catalog.
const (
	TypeMovie  = "movie"
	TypeSeries = "series"
	TypeAnime  = "anime"
)

// ValidContentType reports whether t is one of the enumerated content types.
func ValidContentType(t string) bool {
	return t == TypeMovie || t == TypeSeries || t == TypeAnime
}

type Content struct {
	ID        uint               `gorm:"primaryKey" json:"id" example:"1"`
	Title     string             `gorm:"size:200;not null;index" json:"title" example:"Cowboy Bebop"`
	Year      *int               `json:"year" example:"1998"`
	Type      string             `gorm:"size:20;not null;index" json:"type" example:"anime"`
	Genre     *string            `gorm:"size:100" json:"genre" example:"Sci-Fi"`
	PosterURL *string            `gorm:"size:500" json:"poster_url"`
	IsActive  bool               `gorm:"not null" json:"is_active" example:"true"`
	CreatedAt time.Time          `gorm:"index" json:"created_at"`
	Links     []ContentStreaming `gorm:"foreignKey:ContentID" json:"-"`
}

func (Content) TableName() string {
	return "content"
}

// AvailablePlatforms returns the platforms of links flagged available,
// in link insertion order. Unavailable links are hidden, not removed.
func (c *Content) AvailablePlatforms() []StreamingPlatform {
	platforms := make([]StreamingPlatform, 0, len(c.Links))
	for _, link := range c.Links {
		if link.Available {
			platforms = append(platforms, link.Platform)
		}
	}
	return platforms
}

// ContentFilter holds the optional, conjunctively combined listing filters.
// Zero values mean "no constraint".
type ContentFilter struct {
	Type         string
	Genre        string
	Search       string
	StreamingIDs []uint
	ShowInactive bool
}

type TypeCounts struct {
	Movies int64 `json:"movies" example:"12"`
	Series int64 `json:"series" example:"7"`
	Animes int64 `json:"animes" example:"5"`
}

type StreamingCount struct {
	Streaming StreamingPlatform `json:"streaming"`
	Count     int64             `json:"count" example:"9"`
}

type ContentStats struct {
	TotalContent  int64            `json:"total_content" example:"24"`
	TotalInactive int64            `json:"total_inactive" example:"3"`
	ByType        TypeCounts       `json:"by_type"`
	ByStreaming   []StreamingCount `json:"by_streaming"`
}
