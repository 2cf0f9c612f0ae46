package handlers

import (
	"time"

	"streaming-catalog/internal/models"
)

type ContentCreateRequest struct {
	Title        string  `json:"title"`
	Year         *int    `json:"year"`
	Type         string  `json:"type"`
	Genre        *string `json:"genre"`
	PosterURL    *string `json:"poster_url"`
	StreamingIDs []uint  `json:"streaming_ids"`
}

// ContentUpdateRequest distinguishes absent fields (nil, untouched) from
// provided ones. A present empty streaming_ids list clears all links.
type ContentUpdateRequest struct {
	Title        *string `json:"title"`
	Year         *int    `json:"year"`
	Type         *string `json:"type"`
	Genre        *string `json:"genre"`
	PosterURL    *string `json:"poster_url"`
	StreamingIDs *[]uint `json:"streaming_ids"`
}

// ContentResponse is the wire shape of a catalog entry: the nested
// streamings array holds only platforms with an available link.
type ContentResponse struct {
	ID         uint                       `json:"id"`
	Title      string                     `json:"title"`
	Year       *int                       `json:"year"`
	Type       string                     `json:"type"`
	Genre      *string                    `json:"genre"`
	PosterURL  *string                    `json:"poster_url"`
	IsActive   bool                       `json:"is_active"`
	CreatedAt  time.Time                  `json:"created_at"`
	Streamings []models.StreamingPlatform `json:"streamings"`
}

func newContentResponse(content *models.Content) ContentResponse {
	return ContentResponse{
		ID:         content.ID,
		Title:      content.Title,
		Year:       content.Year,
		Type:       content.Type,
		Genre:      content.Genre,
		PosterURL:  content.PosterURL,
		IsActive:   content.IsActive,
		CreatedAt:  content.CreatedAt,
		Streamings: content.AvailablePlatforms(),
	}
}

func newContentResponseList(contents []models.Content) []ContentResponse {
	responses := make([]ContentResponse, 0, len(contents))
	for i := range contents {
		responses = append(responses, newContentResponse(&contents[i]))
	}
	return responses
}

type StreamingCreateRequest struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url"`
	Color   *string `json:"color"`
	Active  *bool   `json:"active"`
}

type StreamingUpdateRequest struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
	Color   *string `json:"color"`
	Active  *bool   `json:"active"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
