// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"artisan-market-api/internal/domain/entity"
)

// UpdateProfileRequest 画像更新请求（部分记录，空字段不覆盖）
type UpdateProfileRequest struct {
	Name            string   `json:"name,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	HighlightBio    string   `json:"highlight_bio,omitempty"`
	Specialty       string   `json:"specialty,omitempty"`
	City            string   `json:"city,omitempty"`
	Country         string   `json:"country,omitempty"`
	Techniques      []string `json:"techniques,omitempty"`
	Styles          []string `json:"styles,omitempty"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	SocialLinks     []string `json:"social_links,omitempty"`
}

// ToDraft 转换为草稿实体
func (r *UpdateProfileRequest) ToDraft() *entity.ProfileDraft {
	return &entity.ProfileDraft{
		Name:            r.Name,
		Bio:             r.Bio,
		HighlightBio:    r.HighlightBio,
		Specialty:       r.Specialty,
		City:            r.City,
		Country:         r.Country,
		Techniques:      r.Techniques,
		Styles:          r.Styles,
		ProfileImageURL: r.ProfileImageURL,
		SocialLinks:     r.SocialLinks,
	}
}

// PublishProfileRequest 发布状态变更请求
type PublishProfileRequest struct {
	Published bool `json:"published"`
}

// ProfileResponse 画像响应
type ProfileResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	HighlightBio    string    `json:"highlight_bio"`
	Specialty       string    `json:"specialty"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	Techniques      []string  `json:"techniques"`
	Styles          []string  `json:"styles"`
	ProfileImageURL string    `json:"profile_image_url"`
	SocialLinks     []string  `json:"social_links"`
	Published       bool      `json:"published"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewProfileResponse 从实体构建画像响应
func NewProfileResponse(p *entity.ArtistProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Name:            p.Name,
		Bio:             p.Bio,
		HighlightBio:    p.HighlightBio,
		Specialty:       p.Specialty,
		City:            p.City,
		Country:         p.Country,
		Techniques:      p.Techniques,
		Styles:          p.Styles,
		ProfileImageURL: p.ProfileImageURL,
		SocialLinks:     p.SocialLinks,
		Published:       p.Published,
		UpdatedAt:       p.UpdatedAt,
	}
}

// NewProfileResponses 批量构建画像响应
func NewProfileResponses(profiles []*entity.ArtistProfile) []*ProfileResponse {
	out := make([]*ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewProfileResponse(p))
	}
	return out
}
