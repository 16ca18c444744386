// Package auth 提供认证相关能力
package auth

import (
	"context"

	"artisan-market-api/internal/config"
	"artisan-market-api/internal/domain/entity"
	"artisan-market-api/internal/domain/repository"
	apperrors "artisan-market-api/pkg/errors"
	"artisan-market-api/pkg/logger"
	"artisan-market-api/pkg/utils"
)

// Service 认证服务
type Service struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	jwtConfig  *config.JWTConfig
}

// NewService 创建认证服务
func NewService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, jwtConfig *config.JWTConfig) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		jwtConfig:  jwtConfig,
	}
}

// RegisterInput 注册入参
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.UserRole
}

// Register 注册新用户
func (s *Service) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if input.Email == "" || len(input.Password) < 8 {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "email and a password of at least 8 characters are required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to check email")
	}
	if exists {
		return nil, apperrors.New(apperrors.CodeConflict, "email already registered")
	}

	role := input.Role
	if role == "" {
		role = entity.UserRoleCollector
	}

	user := entity.NewUser(input.Email, input.Name, role)
	if err := user.SetPassword(input.Password); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "failed to hash password")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create user")
	}

	logger.Info(ctx, "用户注册成功", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login 邮箱密码登录，返回双 Token
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, *utils.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get user")
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, nil, apperrors.New(apperrors.CodeUnauthorized, "invalid email or password")
	}

	pair, err := s.jwtManager.GenerateTokenPair(user.ID, string(user.Role), s.jwtConfig.Expiration, s.jwtConfig.RefreshExpiration)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.CodeInternalError, "failed to generate tokens")
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// 登录时间更新失败不阻断登录
		logger.Warn(ctx, "更新最后登录时间失败", "user_id", user.ID, "error", err.Error())
	}

	return user, pair, nil
}

// Refresh 用刷新 Token 换发新的双 Token
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := s.jwtManager.ParseToken(refreshToken)
	if err != nil {
		if err == utils.ErrExpiredToken {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	if claims.Type != "refresh" {
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get user")
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	pair, err := s.jwtManager.GenerateTokenPair(user.ID, string(user.Role), s.jwtConfig.Expiration, s.jwtConfig.RefreshExpiration)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "failed to generate tokens")
	}
	return pair, nil
}

// Me 获取当前用户信息
func (s *Service) Me(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get user")
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
