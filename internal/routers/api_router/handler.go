// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"context"

	"github.com/mynote/mynote-service/internal/app"
	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/middleware"
	pkgapp "github.com/mynote/mynote-service/pkg/app"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// actor 从请求上下文解析身份
func (h *Handler) actor(c *gin.Context) domain.Actor {
	return domain.ActorFromIsAdmin(pkgapp.IsAdmin(c))
}

// logError 记录带 Trace ID 的业务错误
func (h *Handler) logError(ctx context.Context, op string, err error) {
	h.App.Logger().Error(op,
		zap.String("traceId", middleware.GetTraceID(ctx)),
		zap.Error(err),
	)
}
