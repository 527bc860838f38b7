package api_router

import (
	"github.com/mynote/mynote-service/internal/app"
	pkgapp "github.com/mynote/mynote-service/pkg/app"
	"github.com/mynote/mynote-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string  `json:"status"`   // "healthy" 或 "unhealthy"
	Version  string  `json:"version"`  // 服务版本号
	Uptime   float64 `json:"uptime"`   // 运行时间（秒）
	Database string  `json:"database"` // "connected" 或 "error"

	Host   string  `json:"host,omitempty"`      // 主机名与系统信息
	MemPct float64 `json:"memUsedPct,omitempty"` // 内存使用率
}

// Check 健康检查接口
// 检查服务健康状态，包括数据库连接与主机概况
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  h.App.Version().Version,
		Uptime:   h.App.Uptime().Seconds(),
		Database: "connected",
	}

	if info, err := host.Info(); err == nil {
		response.Host = info.Hostname + " " + info.Platform + " " + info.PlatformVersion
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		response.MemPct = vm.UsedPercent
	}

	// 检查数据库连接
	if err := h.App.DB.Raw("SELECT 1").Error; err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.ErrorServerInternal.WithData(response))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
