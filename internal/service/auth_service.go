// Package service 业务服务层
package service

import (
	"context"
	"crypto/subtle"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/dto"
	"github.com/mynote/mynote-service/pkg/app"
	"github.com/mynote/mynote-service/pkg/code"

	"go.uber.org/zap"
)

// AuthService 管理员认证服务接口
type AuthService interface {
	// Login 校验管理员凭据并签发令牌
	Login(ctx context.Context, params *dto.LoginRequest) (*dto.LoginDTO, error)
	// Verify 解析令牌并返回身份，读路径上永不报错
	Verify(token string) *dto.VerifyDTO
	// ActorFromToken 从令牌解析请求方身份，无效令牌降级为匿名
	ActorFromToken(token string) domain.Actor
}

type authService struct {
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

func NewAuthService(tm app.TokenManager, logger *zap.Logger, c *ServiceConfig) AuthService {
	return &authService{
		tokenManager: tm,
		logger:       logger,
		config:       c,
	}
}

// Login 校验管理员凭据并签发令牌
// 用户名与密码都走常数时间比较，避免时序侧信道泄露
func (s *authService) Login(ctx context.Context, params *dto.LoginRequest) (*dto.LoginDTO, error) {
	userOK := subtle.ConstantTimeCompare([]byte(params.Username), []byte(s.config.Admin.Username))
	passOK := subtle.ConstantTimeCompare([]byte(params.Password), []byte(s.config.Admin.Password))
	if userOK&passOK != 1 {
		s.logger.Warn("admin login failed", zap.String("username", params.Username))
		return nil, code.ErrorInvalidCredentials
	}

	token, err := s.tokenManager.Generate(params.Username)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	return &dto.LoginDTO{
		Success: true,
		Token:   token,
		User: dto.LoginUserDTO{
			Username: params.Username,
			IsAdmin:  true,
		},
	}, nil
}

// Verify 解析令牌并返回身份
// 缺失、过期或被篡改的令牌一律当作匿名，不返回错误
func (s *authService) Verify(token string) *dto.VerifyDTO {
	return &dto.VerifyDTO{IsAdmin: s.ActorFromToken(token).IsAdmin()}
}

func (s *authService) ActorFromToken(token string) domain.Actor {
	if token == "" {
		return domain.ActorAnonymous
	}
	claims, err := s.tokenManager.Parse(token)
	if err != nil || !claims.IsAdmin {
		return domain.ActorAnonymous
	}
	return domain.ActorAdmin
}
