package api_router

import (
	"github.com/mynote/mynote-service/internal/app"
	"github.com/mynote/mynote-service/internal/dto"
	pkgapp "github.com/mynote/mynote-service/pkg/app"
	"github.com/mynote/mynote-service/pkg/code"
	apperrors "github.com/mynote/mynote-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 认证 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type AuthHandler struct {
	*Handler
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(a *app.App) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(a),
	}
}

// Login 管理员登录
// 处理登录 HTTP 请求，验证凭据并返回认证 Token
func (h *AuthHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LoginRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AuthHandler.Login.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()

	loginDTO, err := h.App.AuthService.Login(ctx, params)
	if err != nil {
		h.logError(ctx, "AuthHandler.Login", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(loginDTO))
}

// Verify 验证令牌
// 缺失或无效的令牌返回 isAdmin=false，不报错
func (h *AuthHandler) Verify(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	token := pkgapp.ExtractBearerToken(c)
	verifyDTO := h.App.AuthService.Verify(token)

	response.ToResponse(code.Success.WithData(verifyDTO))
}
