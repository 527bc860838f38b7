// Package routers 组装 gin 路由
package routers

import (
	"net/http"
	"time"

	"github.com/mynote/mynote-service/internal/app"
	"github.com/mynote/mynote-service/internal/middleware"
	"github.com/mynote/mynote-service/internal/routers/api_router"
	"github.com/mynote/mynote-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/auth",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Notes API Server Running"})
	})

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		authHandler := api_router.NewAuthHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		folderHandler := api_router.NewFolderHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		optionalAuth := middleware.OptionalAuthToken(appContainer.TokenManager)

		api.GET("/health", healthHandler.Check)

		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/verify", authHandler.Verify)

		// 笔记接口对匿名访客开放，身份只影响策略判定
		api.POST("/chat/create", optionalAuth, noteHandler.Create)
		api.GET("/chat/list", optionalAuth, noteHandler.List)
		api.GET("/chat/search", optionalAuth, noteHandler.Search)
		api.GET("/chat/:id", optionalAuth, noteHandler.Get)
		api.PUT("/chat/:id", optionalAuth, noteHandler.Update)
		api.DELETE("/chat/:id", middleware.AdminAuthToken(appContainer.TokenManager), noteHandler.Delete)

		api.POST("/folder/create", optionalAuth, folderHandler.Create)
		api.GET("/folder/list", optionalAuth, folderHandler.List)
		api.POST("/folder/:id/verify", optionalAuth, folderHandler.Verify)
		api.PUT("/folder/:id", optionalAuth, folderHandler.Update)
		api.DELETE("/folder/:id", middleware.AdminAuthToken(appContainer.TokenManager), folderHandler.Delete)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
