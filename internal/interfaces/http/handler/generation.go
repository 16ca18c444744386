// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"artisan-market-api/internal/application/generation"
	"artisan-market-api/internal/interfaces/http/dto"
	"artisan-market-api/internal/interfaces/http/middleware"
	"artisan-market-api/pkg/logger"
)

// GenerationHandler 画像生成处理器
type GenerationHandler struct {
	genService *generation.Service
}

// NewGenerationHandler 创建画像生成处理器
func NewGenerationHandler(genService *generation.Service) *GenerationHandler {
	return &GenerationHandler{genService: genService}
}

// GenerateFromURLs 链接列表生成
// @Summary 从公开链接生成画像
// @Description 后台异步执行，进度经 status 或 stream 接口获取
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.GenerateFromURLsRequest true "链接列表"
// @Success 202 {object} dto.Response[dto.GenerationStatusResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/profile/generation/urls [post]
func (h *GenerationHandler) GenerateFromURLs(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateFromURLsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.UserID(c)
	h.genService.StartFromURLs(ctx, userID, req.URLs)

	dto.Accepted(c, dto.NewGenerationStatusResponse(h.genService.Status(userID)))
}

// GenerateFromConnectedAccount 已连接账号生成
// @Summary 从已连接的 Instagram 账号生成画像
// @Tags Generation
// @Produce json
// @Security BearerAuth
// @Success 202 {object} dto.Response[dto.GenerationStatusResponse]
// @Router /v1/profile/generation/connected [post]
func (h *GenerationHandler) GenerateFromConnectedAccount(c *gin.Context) {
	ctx := c.Request.Context()

	userID := middleware.UserID(c)
	h.genService.StartFromConnectedAccount(ctx, userID)

	dto.Accepted(c, dto.NewGenerationStatusResponse(h.genService.Status(userID)))
}

// GenerateFromManualData 手动资料生成
// @Summary 从手填账号资料生成画像
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.GenerateFromManualRequest true "账号资料"
// @Success 202 {object} dto.Response[dto.GenerationStatusResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/profile/generation/manual [post]
func (h *GenerationHandler) GenerateFromManualData(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateFromManualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.UserID(c)
	h.genService.StartFromManualData(ctx, userID, req.ToManualData())

	dto.Accepted(c, dto.NewGenerationStatusResponse(h.genService.Status(userID)))
}

// Status 生成进度
// @Summary 查询当前生成进度
// @Description 多策略进度合并后的单一视图，附带当前暂存草稿
// @Tags Generation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response[dto.GenerationStatusResponse]
// @Router /v1/profile/generation/status [get]
func (h *GenerationHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	resp := dto.NewGenerationStatusResponse(h.genService.Status(userID))
	draft, err := h.genService.Draft(ctx, userID)
	if err != nil {
		// 草稿读取失败不影响进度查询
		logger.Warn(ctx, "草稿读取失败", "user_id", userID, "error", err.Error())
	} else {
		resp.Draft = draft
	}

	dto.Success(c, resp)
}
