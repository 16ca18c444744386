// Package wire 负责应用依赖的组装
package wire

import (
	"context"
	"fmt"

	"artisan-market-api/internal/application/auth"
	"artisan-market-api/internal/application/catalog"
	"artisan-market-api/internal/application/generation"
	"artisan-market-api/internal/application/profile"
	"artisan-market-api/internal/config"
	infragen "artisan-market-api/internal/infrastructure/generation"
	"artisan-market-api/internal/infrastructure/messaging"
	"artisan-market-api/internal/infrastructure/persistence/postgres"
	"artisan-market-api/internal/infrastructure/persistence/redis"
	"artisan-market-api/internal/interfaces/http/handler"
	"artisan-market-api/internal/interfaces/http/router"
	"artisan-market-api/pkg/logger"
	"artisan-market-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// App 已组装完成的应用
type App struct {
	router *router.Router

	pg    *postgres.Client
	redis *redis.Client
}

// Engine 返回 HTTP 引擎
func (a *App) Engine() *gin.Engine {
	return a.router.Engine()
}

// InitializeApp 组装全部依赖并返回应用与清理函数
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	// 基础设施客户端
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		_ = pgClient.Close()
		return nil, nil, fmt.Errorf("failed to init redis: %w", err)
	}

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn(ctx, "关闭 Redis 连接失败", "error", err.Error())
		}
		if err := pgClient.Close(); err != nil {
			logger.Warn(ctx, "关闭 Postgres 连接失败", "error", err.Error())
		}
	}

	// 持久化
	txManager := postgres.NewTxManager(pgClient)
	userRepo := postgres.NewUserRepository(pgClient)
	profileRepo := postgres.NewArtistProfileRepository(pgClient)
	artworkRepo := postgres.NewArtworkRepository(pgClient)

	// 缓存与消息
	cache := redis.NewCache(redisClient)
	draftStore := redis.NewDraftStore(redisClient, cfg.Generation.DraftTTL)
	rateLimiter := redis.NewRateLimiter(redisClient)
	producer := messaging.NewProducer(redisClient.Redis(), int64(cfg.Messaging.RedisStream.MaxLen))

	// 远程生成客户端
	genClient := infragen.NewClient(&cfg.Generation)

	// 应用服务
	jwtManager := utils.NewJWTManager(cfg.Security.JWT.Secret, cfg.Security.JWT.Issuer)
	authService := auth.NewService(userRepo, jwtManager, &cfg.Security.JWT)
	profileService := profile.NewService(profileRepo, draftStore, cache, producer, txManager)
	catalogService := catalog.NewService(artworkRepo, cache)
	generationService := generation.NewService(genClient, userRepo, draftStore, producer, &cfg.Generation)

	// HTTP 层
	healthHandler := handler.NewHealthHandler(pgClient, redisClient)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	generationHandler := handler.NewGenerationHandler(generationService)
	streamHandler := handler.NewStreamHandler(generationService)
	artworkHandler := handler.NewArtworkHandler(catalogService)

	r := router.New(cfg, rateLimiter, healthHandler)
	router.RegisterV1Routes(
		r.V1(),
		authHandler,
		profileHandler,
		generationHandler,
		streamHandler,
		artworkHandler,
	)

	app := &App{
		router: r,
		pg:     pgClient,
		redis:  redisClient,
	}
	return app, cleanup, nil
}

// DataLayer 仅含持久化依赖，供离线工具使用
type DataLayer struct {
	PG       *postgres.Client
	UserRepo *postgres.UserRepository
}

// InitializePostgresOnly 只组装 PostgreSQL 数据层
func InitializePostgresOnly(ctx context.Context, cfg *config.Config) (*DataLayer, func(), error) {
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	cleanup := func() {
		if err := pgClient.Close(); err != nil {
			logger.Warn(ctx, "关闭 Postgres 连接失败", "error", err.Error())
		}
	}

	return &DataLayer{
		PG:       pgClient,
		UserRepo: postgres.NewUserRepository(pgClient),
	}, cleanup, nil
}
