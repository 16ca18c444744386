// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/lib/pq"
)

// ArtistProfile 艺术家画像实体
type ArtistProfile struct {
	ID              string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          string         `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Name            string         `json:"name" gorm:"type:varchar(255)"`
	Bio             string         `json:"bio" gorm:"type:text"`
	HighlightBio    string         `json:"highlight_bio" gorm:"type:text"`
	Specialty       string         `json:"specialty" gorm:"type:varchar(255)"`
	City            string         `json:"city" gorm:"type:varchar(255)"`
	Country         string         `json:"country" gorm:"type:varchar(255)"`
	Techniques      pq.StringArray `json:"techniques" gorm:"type:text[]"`
	Styles          pq.StringArray `json:"styles" gorm:"type:text[]"`
	ProfileImageURL string         `json:"profile_image_url" gorm:"type:text"`
	SocialLinks     pq.StringArray `json:"social_links" gorm:"type:text[]"`
	Published       bool           `json:"published" gorm:"default:false"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (ArtistProfile) TableName() string {
	return "artist_profiles"
}

// NewArtistProfile 创建新画像
func NewArtistProfile(userID string) *ArtistProfile {
	now := time.Now()
	return &ArtistProfile{
		UserID:      userID,
		Techniques:  pq.StringArray{},
		Styles:      pq.StringArray{},
		SocialLinks: pq.StringArray{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyDraft 将生成草稿中的非空字段合并到画像
// 草稿为部分记录，空字段不覆盖既有值
func (p *ArtistProfile) ApplyDraft(d *ProfileDraft) {
	if d == nil {
		return
	}
	if d.Name != "" {
		p.Name = d.Name
	}
	if d.Bio != "" {
		p.Bio = d.Bio
	}
	if d.HighlightBio != "" {
		p.HighlightBio = d.HighlightBio
	}
	if d.Specialty != "" {
		p.Specialty = d.Specialty
	}
	if d.City != "" {
		p.City = d.City
	}
	if d.Country != "" {
		p.Country = d.Country
	}
	if len(d.Techniques) > 0 {
		p.Techniques = pq.StringArray(d.Techniques)
	}
	if len(d.Styles) > 0 {
		p.Styles = pq.StringArray(d.Styles)
	}
	if d.ProfileImageURL != "" {
		p.ProfileImageURL = d.ProfileImageURL
	}
	if len(d.SocialLinks) > 0 {
		p.SocialLinks = pq.StringArray(d.SocialLinks)
	}
	p.UpdatedAt = time.Now()
}
