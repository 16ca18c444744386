// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"

	"artisan-market-api/internal/interfaces/http/handler"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	generationHandler *handler.GenerationHandler,
	streamHandler *handler.StreamHandler,
	artworkHandler *handler.ArtworkHandler,
) {
	// 认证管理
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// 用户管理
	users := v1.Group("/users")
	{
		users.GET("/me", authHandler.Me)
	}

	// 画像管理
	profile := v1.Group("/profile")
	{
		profile.GET("", profileHandler.GetMine)
		profile.PUT("", profileHandler.Update)
		profile.PUT("/publish", profileHandler.SetPublished)

		// 生成草稿
		profile.GET("/draft", profileHandler.GetDraft)
		profile.POST("/draft/save", profileHandler.SaveDraft)
		profile.DELETE("/draft", profileHandler.DiscardDraft)

		// 画像自动生成
		generation := profile.Group("/generation")
		{
			generation.POST("/urls", generationHandler.GenerateFromURLs)
			generation.POST("/connected", generationHandler.GenerateFromConnectedAccount)
			generation.POST("/manual", generationHandler.GenerateFromManualData)
			generation.GET("/status", generationHandler.Status)
			generation.GET("/stream", streamHandler.StreamProgress) // SSE
		}
	}

	// 作品管理
	artworks := v1.Group("/artworks")
	{
		artworks.POST("", artworkHandler.Create)
		artworks.GET("/mine", artworkHandler.ListMine)
		artworks.GET("/:id", artworkHandler.Get)
		artworks.PUT("/:id/status", artworkHandler.UpdateStatus)
		artworks.DELETE("/:id", artworkHandler.Delete)
	}

	// 公开浏览
	v1.GET("/artists", profileHandler.ListPublished)
	v1.GET("/catalog", artworkHandler.ListListed)
}
