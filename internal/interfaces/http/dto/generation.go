// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"artisan-market-api/internal/application/profilegen"
	"artisan-market-api/internal/domain/entity"
)

// GenerateFromURLsRequest 链接列表生成请求
type GenerateFromURLsRequest struct {
	URLs []string `json:"urls" binding:"required"`
}

// GenerateFromManualRequest 手动资料生成请求
type GenerateFromManualRequest struct {
	Username     string `json:"username" binding:"required"`
	DisplayName  string `json:"display_name,omitempty"`
	Bio          string `json:"bio,omitempty"`
	ImageDataURI string `json:"image_data_uri,omitempty"`
}

// ToManualData 转换为策略入参
func (r *GenerateFromManualRequest) ToManualData() profilegen.ManualAccountData {
	return profilegen.ManualAccountData{
		Username:     r.Username,
		DisplayName:  r.DisplayName,
		Bio:          r.Bio,
		ImageDataURI: r.ImageDataURI,
	}
}

// GenerationStatusResponse 生成进度响应
// Draft 为当前暂存的生成草稿，未生成时为空
type GenerationStatusResponse struct {
	IsGenerating bool                 `json:"is_generating"`
	Message      string               `json:"message"`
	CurrentStep  int                  `json:"current_step"`
	TotalSteps   int                  `json:"total_steps"`
	Draft        *entity.ProfileDraft `json:"draft,omitempty"`
}

// NewGenerationStatusResponse 从合并进度构建响应
func NewGenerationStatusResponse(p profilegen.Progress) *GenerationStatusResponse {
	return &GenerationStatusResponse{
		IsGenerating: p.IsGenerating,
		Message:      p.Message,
		CurrentStep:  p.CurrentStep,
		TotalSteps:   p.TotalSteps,
	}
}
