// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"artisan-market-api/internal/domain/entity"
)

// CreateArtworkRequest 创建作品请求
type CreateArtworkRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description,omitempty"`
	Medium      string   `json:"medium,omitempty"`
	Styles      []string `json:"styles,omitempty"`
	PriceCents  int64    `json:"price_cents,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// UpdateArtworkStatusRequest 作品状态变更请求
type UpdateArtworkStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft listed sold archived"`
}

// ArtworkResponse 作品响应
type ArtworkResponse struct {
	ID          string    `json:"id"`
	ArtistID    string    `json:"artist_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Medium      string    `json:"medium,omitempty"`
	Styles      []string  `json:"styles"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewArtworkResponse 从实体构建作品响应
func NewArtworkResponse(a *entity.Artwork) *ArtworkResponse {
	return &ArtworkResponse{
		ID:          a.ID,
		ArtistID:    a.ArtistID,
		Title:       a.Title,
		Description: a.Description,
		Medium:      a.Medium,
		Styles:      a.Styles,
		PriceCents:  a.PriceCents,
		Currency:    a.Currency,
		ImageURL:    a.ImageURL,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// NewArtworkResponses 批量构建作品响应
func NewArtworkResponses(artworks []*entity.Artwork) []*ArtworkResponse {
	out := make([]*ArtworkResponse, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, NewArtworkResponse(a))
	}
	return out
}
