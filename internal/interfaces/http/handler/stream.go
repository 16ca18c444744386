// Package handler 提供 HTTP 请求处理器
package handler

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"artisan-market-api/internal/application/generation"
	"artisan-market-api/internal/interfaces/http/dto"
	"artisan-market-api/internal/interfaces/http/middleware"
)

// heartbeatInterval SSE 心跳间隔
const heartbeatInterval = 15 * time.Second

// StreamHandler 生成进度流式处理器
type StreamHandler struct {
	genService *generation.Service
}

// NewStreamHandler 创建流式处理器
func NewStreamHandler(genService *generation.Service) *StreamHandler {
	return &StreamHandler{genService: genService}
}

// StreamProgress 流式获取生成进度
// @Summary 订阅生成进度
// @Description 通过 SSE 推送进度快照，客户端断开即停止
// @Tags Generation
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 "SSE stream"
// @Router /v1/profile/generation/stream [get]
func (h *StreamHandler) StreamProgress(c *gin.Context) {
	// 设置 SSE 响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	userID := middleware.UserID(c)
	progress, stop := h.genService.Watch(userID)
	defer stop()

	// 订阅建立后先推一帧当前状态
	c.SSEvent("progress", dto.NewGenerationStatusResponse(h.genService.Status(userID)))
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case p, ok := <-progress:
			if !ok {
				return false
			}
			c.SSEvent("progress", dto.NewGenerationStatusResponse(p))
			return true

		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"ts": time.Now().Unix()})
			return true

		case <-c.Request.Context().Done():
			// 客户端断开
			return false
		}
	})
}
