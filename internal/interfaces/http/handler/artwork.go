// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"artisan-market-api/internal/application/catalog"
	"artisan-market-api/internal/domain/entity"
	"artisan-market-api/internal/interfaces/http/dto"
	"artisan-market-api/internal/interfaces/http/middleware"
)

// ArtworkHandler 作品处理器
type ArtworkHandler struct {
	catalogService *catalog.Service
}

// NewArtworkHandler 创建作品处理器
func NewArtworkHandler(catalogService *catalog.Service) *ArtworkHandler {
	return &ArtworkHandler{catalogService: catalogService}
}

// Create 创建作品
// @Summary 创建作品
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateArtworkRequest true "作品信息"
// @Success 201 {object} dto.Response[dto.ArtworkResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/artworks [post]
func (h *ArtworkHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	artwork, err := h.catalogService.CreateArtwork(ctx, middleware.UserID(c), catalog.CreateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		Medium:      req.Medium,
		Styles:      req.Styles,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Created(c, dto.NewArtworkResponse(artwork))
}

// Get 获取作品详情
// @Summary 获取作品详情
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "作品 ID"
// @Success 200 {object} dto.Response[dto.ArtworkResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/artworks/{id} [get]
func (h *ArtworkHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	artwork, err := h.catalogService.GetArtwork(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.NewArtworkResponse(artwork))
}

// UpdateStatus 变更作品状态
// @Summary 变更作品状态
// @Description 上架、售出或归档，仅限作品归属的艺术家
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "作品 ID"
// @Param body body dto.UpdateArtworkStatusRequest true "目标状态"
// @Success 200 {object} dto.Response[dto.ArtworkResponse]
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/artworks/{id}/status [put]
func (h *ArtworkHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateArtworkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	artwork, err := h.catalogService.UpdateStatus(ctx, middleware.UserID(c), c.Param("id"), entity.ArtworkStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.NewArtworkResponse(artwork))
}

// Delete 删除作品
// @Summary 删除作品
// @Tags Catalog
// @Security BearerAuth
// @Param id path string true "作品 ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/artworks/{id} [delete]
func (h *ArtworkHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.catalogService.DeleteArtwork(ctx, middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	dto.NoContent(c)
}

// ListMine 获取当前艺术家的作品列表
// @Summary 获取我的作品
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.Response[[]dto.ArtworkResponse]
// @Router /v1/artworks/mine [get]
func (h *ArtworkHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.catalogService.ListByArtist(ctx, middleware.UserID(c), parsePagination(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessWithPage(c, dto.NewArtworkResponses(result.Items), pageMetaOf(result))
}

// ListListed 获取在售作品列表
// @Summary 浏览在售作品
// @Tags Catalog
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.Response[[]dto.ArtworkResponse]
// @Router /v1/catalog [get]
func (h *ArtworkHandler) ListListed(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.catalogService.ListListed(ctx, parsePagination(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessWithPage(c, dto.NewArtworkResponses(result.Items), pageMetaOf(result))
}
