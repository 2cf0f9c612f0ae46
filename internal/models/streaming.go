package models

import "time"

type StreamingPlatform struct {
	ID      uint    `gorm:"primaryKey" json:"id" example:"1"`
	Name    string  `gorm:"uniqueIndex;not null;size:100" json:"name" example:"Netflix"`
	LogoURL *string `gorm:"size:500" json:"logo_url"`
	Color   *string `gorm:"size:7" json:"color" example:"#E50914"` // hex display color
	Active  bool    `gorm:"not null" json:"active" example:"true"`
}

func (StreamingPlatform) TableName() string {
	return "streaming_platform"
}

// ContentStreaming links a Content to a StreamingPlatform. At most one link
// exists per (content, platform) pair; the available flag marks a link stale
// without deleting it.
type ContentStreaming struct {
	ContentID   uint              `gorm:"primaryKey" json:"content_id"`
	StreamingID uint              `gorm:"primaryKey" json:"streaming_id"`
	Available   bool              `gorm:"not null" json:"available"`
	LastChecked time.Time         `json:"last_checked"`
	Platform    StreamingPlatform `gorm:"foreignKey:StreamingID" json:"-"`
}

func (ContentStreaming) TableName() string {
	return "content_streaming"
}
