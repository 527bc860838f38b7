package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mynote/mynote-service/internal/dao"
	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/service"
	pkgapp "github.com/mynote/mynote-service/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	NoteRepo   domain.NoteRepository
	FolderRepo domain.FolderRepository

	// Service 层
	AuthService   service.AuthService
	NoteService   service.NoteService
	FolderService service.FolderService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	// 关闭控制
	shutdownCh chan struct{}
	closeOnce  sync.Once

	startedAt time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		DB:         db,
		shutdownCh: make(chan struct{}),
		startedAt:  time.Now(),
	}

	a.Dao = dao.New(db, context.Background())

	// 初始化 TokenManager
	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    pkgapp.DefaultTokenIssuer,
		Expiry:    cfg.GetTokenExpiry(),
	})

	// 初始化 Repository 层
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.FolderRepo = dao.NewFolderRepository(a.Dao)

	svcConfig := &service.ServiceConfig{
		Admin: service.AdminServiceConfig{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		},
	}

	// 初始化 Service 层（依赖注入）
	a.AuthService = service.NewAuthService(a.TokenManager, logger, svcConfig)
	a.NoteService = service.NewNoteService(a.NoteRepo, a.FolderRepo, logger)
	a.FolderService = service.NewFolderService(a.FolderRepo, a.NoteRepo, logger)

	logger.Info("App container initialized successfully")

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		if a.DB == nil {
			return
		}
		sqlDB, dberr := a.DB.DB()
		if dberr != nil {
			err = fmt.Errorf("failed to get sql.DB: %w", dberr)
			return
		}
		if cerr := sqlDB.Close(); cerr != nil {
			err = fmt.Errorf("failed to close database: %w", cerr)
			return
		}
		a.logger.Info("Database connection closed")
	})
	return err
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// Uptime 服务已运行时长
func (a *App) Uptime() time.Duration {
	return time.Since(a.startedAt)
}

// Shutdown 优雅关闭应用容器
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	select {
	case <-a.shutdownCh:
		return nil
	default:
		close(a.shutdownCh)
	}

	if err := a.Close(); err != nil {
		return err
	}

	a.logger.Info("App container shutdown completed")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}
