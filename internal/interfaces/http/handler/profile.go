// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"artisan-market-api/internal/application/profile"
	"artisan-market-api/internal/interfaces/http/dto"
	"artisan-market-api/internal/interfaces/http/middleware"
)

// ProfileHandler 画像处理器
type ProfileHandler struct {
	profileService *profile.Service
}

// NewProfileHandler 创建画像处理器
func NewProfileHandler(profileService *profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetMine 获取当前用户的画像
// @Summary 获取我的画像
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response[dto.ProfileResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/profile [get]
func (h *ProfileHandler) GetMine(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.profileService.Get(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.NewProfileResponse(p))
}

// Update 更新当前用户的画像
// @Summary 更新我的画像
// @Description 按草稿语义合并，空字段不覆盖既有内容
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateProfileRequest true "画像字段"
// @Success 200 {object} dto.Response[dto.ProfileResponse]
// @Router /v1/profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, err := h.profileService.Update(ctx, middleware.UserID(c), req.ToDraft())
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.NewProfileResponse(p))
}

// SetPublished 发布或下架画像
// @Summary 变更画像发布状态
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PublishProfileRequest true "发布状态"
// @Success 200 {object} dto.Response[dto.ProfileResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/profile/publish [put]
func (h *ProfileHandler) SetPublished(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PublishProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, err := h.profileService.SetPublished(ctx, middleware.UserID(c), req.Published)
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.NewProfileResponse(p))
}

// GetDraft 获取暂存的生成草稿
// @Summary 获取生成草稿
// @Description 无草稿时 data 为空
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response[entity.ProfileDraft]
// @Router /v1/profile/draft [get]
func (h *ProfileHandler) GetDraft(c *gin.Context) {
	ctx := c.Request.Context()

	draft, err := h.profileService.GetDraft(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, draft)
}

// SaveDraft 将暂存草稿落库为正式画像
// @Summary 保存生成草稿
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response[dto.ProfileResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/profile/draft/save [post]
func (h *ProfileHandler) SaveDraft(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.profileService.SaveDraft(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.NewProfileResponse(p))
}

// DiscardDraft 放弃暂存草稿
// @Summary 放弃生成草稿
// @Tags Profile
// @Security BearerAuth
// @Success 204
// @Router /v1/profile/draft [delete]
func (h *ProfileHandler) DiscardDraft(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.profileService.DiscardDraft(ctx, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}

	dto.NoContent(c)
}

// ListPublished 获取已发布画像列表
// @Summary 浏览已发布艺术家
// @Tags Profile
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.Response[[]dto.ProfileResponse]
// @Router /v1/artists [get]
func (h *ProfileHandler) ListPublished(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.profileService.ListPublished(ctx, parsePagination(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessWithPage(c, dto.NewProfileResponses(result.Items), pageMetaOf(result))
}
