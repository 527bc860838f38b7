package api_router

import (
	"errors"

	"github.com/mynote/mynote-service/internal/app"
	"github.com/mynote/mynote-service/internal/dto"
	pkgapp "github.com/mynote/mynote-service/pkg/app"
	"github.com/mynote/mynote-service/pkg/code"
	apperrors "github.com/mynote/mynote-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FolderHandler 文件夹 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type FolderHandler struct {
	*Handler
}

// NewFolderHandler 创建 FolderHandler 实例
func NewFolderHandler(a *app.App) *FolderHandler {
	return &FolderHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建文件夹
func (h *FolderHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FolderHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()

	folderDTO, err := h.App.FolderService.Create(ctx, h.actor(c), params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folderDTO))
}

// List 文件夹列表，含每个文件夹的笔记数量
func (h *FolderHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	folders, err := h.App.FolderService.List(ctx, h.actor(c))
	if err != nil {
		h.logError(ctx, "FolderHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folders))
}

// Verify 验证文件夹密码
// 密码错误返回 401 且携带 verified=false，便于客户端重新提示输入
func (h *FolderHandler) Verify(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderVerifyRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FolderHandler.Verify.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()

	verifyDTO, err := h.App.FolderService.VerifyPassword(ctx, h.actor(c), c.Param("id"), params)
	if err != nil {
		if errors.Is(err, code.ErrorFolderPassword) && verifyDTO != nil {
			response.ToResponse(code.ErrorFolderPassword.WithData(verifyDTO))
			return
		}
		h.logError(ctx, "FolderHandler.Verify", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(verifyDTO))
}

// Update 更新文件夹
func (h *FolderHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FolderHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()

	folderDTO, err := h.App.FolderService.Update(ctx, h.actor(c), c.Param("id"), params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folderDTO))
}

// Delete 删除文件夹并级联删除其笔记，仅管理员
func (h *FolderHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	deleteDTO, err := h.App.FolderService.Delete(ctx, h.actor(c), c.Param("id"))
	if err != nil {
		h.logError(ctx, "FolderHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(deleteDTO))
}
