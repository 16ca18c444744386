// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/lib/pq"
)

// ArtworkStatus 作品状态
type ArtworkStatus string

const (
	ArtworkStatusDraft    ArtworkStatus = "draft"
	ArtworkStatusListed   ArtworkStatus = "listed"
	ArtworkStatusSold     ArtworkStatus = "sold"
	ArtworkStatusArchived ArtworkStatus = "archived"
)

// Artwork 作品实体
type Artwork struct {
	ID          string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArtistID    string         `json:"artist_id" gorm:"type:uuid;index;not null"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Medium      string         `json:"medium,omitempty" gorm:"type:varchar(100)"`
	Styles      pq.StringArray `json:"styles" gorm:"type:text[]"`
	PriceCents  int64          `json:"price_cents" gorm:"default:0"`
	Currency    string         `json:"currency" gorm:"type:varchar(10);default:'EUR'"`
	ImageURL    string         `json:"image_url,omitempty" gorm:"type:text"`
	Status      ArtworkStatus  `json:"status" gorm:"type:varchar(50);default:'draft'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Artwork) TableName() string {
	return "artworks"
}

// NewArtwork 创建新作品
func NewArtwork(artistID, title string) *Artwork {
	now := time.Now()
	return &Artwork{
		ArtistID:  artistID,
		Title:     title,
		Styles:    pq.StringArray{},
		Status:    ArtworkStatusDraft,
		Currency:  "EUR",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsPubliclyVisible 检查作品是否对外可见
func (a *Artwork) IsPubliclyVisible() bool {
	return a.Status == ArtworkStatusListed || a.Status == ArtworkStatusSold
}
