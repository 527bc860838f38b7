package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/dto"
	"github.com/mynote/mynote-service/pkg/code"
	"github.com/mynote/mynote-service/pkg/convert"
	"github.com/mynote/mynote-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FolderService 文件夹业务服务接口
type FolderService interface {
	Create(ctx context.Context, actor domain.Actor, params *dto.FolderCreateRequest) (*dto.FolderDTO, error)
	List(ctx context.Context, actor domain.Actor) ([]*dto.FolderDTO, error)
	// VerifyPassword 密码错误时同时返回 Verified=false 的结果体和 ErrorFolderPassword，
	// 传输层据此在 401 响应中携带 verified 字段；其他错误下结果体为 nil
	VerifyPassword(ctx context.Context, actor domain.Actor, id string, params *dto.FolderVerifyRequest) (*dto.FolderVerifyDTO, error)
	Update(ctx context.Context, actor domain.Actor, id string, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error)
	Delete(ctx context.Context, actor domain.Actor, id string) (*dto.FolderDeleteDTO, error)
}

type folderService struct {
	folderRepo domain.FolderRepository
	noteRepo   domain.NoteRepository
	logger     *zap.Logger
}

func NewFolderService(folderRepo domain.FolderRepository, noteRepo domain.NoteRepository, logger *zap.Logger) FolderService {
	return &folderService{
		folderRepo: folderRepo,
		noteRepo:   noteRepo,
		logger:     logger,
	}
}

func (s *folderService) domainToDTO(f *domain.Folder, noteCount int64) *dto.FolderDTO {
	if f == nil {
		return nil
	}
	d := convert.StructAssign(f, &dto.FolderDTO{}).(*dto.FolderDTO)
	d.ChatCount = noteCount
	return d
}

// Create 创建文件夹
// 密码哈希是写路径上的显式步骤，isProtected 始终由哈希推导
func (s *folderService) Create(ctx context.Context, actor domain.Actor, params *dto.FolderCreateRequest) (*dto.FolderDTO, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorFolderNameRequired
	}

	folder := &domain.Folder{
		Name:        name,
		Description: params.Description,
		Icon:        params.Icon,
	}
	if folder.Icon == "" {
		folder.Icon = domain.DefaultFolderIcon
	}

	if params.Password != "" {
		hash, err := util.GeneratePasswordHash(params.Password)
		if err != nil {
			return nil, code.ErrorServerInternal.WithDetails(err.Error())
		}
		folder.PasswordHash = hash
		folder.IsProtected = true
	}

	created, err := s.folderRepo.Create(ctx, folder)
	if err != nil {
		return nil, code.ErrorDBWrite.WithDetails(err.Error())
	}
	return s.domainToDTO(created, 0), nil
}

// List 返回全部文件夹及其笔记数量，按创建时间倒序
func (s *folderService) List(ctx context.Context, actor domain.Actor) ([]*dto.FolderDTO, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	res := make([]*dto.FolderDTO, 0, len(folders))
	for _, f := range folders {
		count, err := s.noteRepo.CountByFolder(ctx, f.ID)
		if err != nil {
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
		res = append(res, s.domainToDTO(f, count))
	}
	return res, nil
}

// VerifyPassword 验证文件夹密码
// 管理员与未保护的文件夹直接通过，密码错误返回 verified=false 而非服务错误
func (s *folderService) VerifyPassword(ctx context.Context, actor domain.Actor, id string, params *dto.FolderVerifyRequest) (*dto.FolderVerifyDTO, error) {
	folder, err := s.getFolder(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.IsAdmin() || !folder.IsProtected {
		return &dto.FolderVerifyDTO{Verified: true}, nil
	}

	if util.CheckPasswordHash(folder.PasswordHash, params.Password) {
		return &dto.FolderVerifyDTO{Verified: true}, nil
	}
	return &dto.FolderVerifyDTO{Verified: false}, code.ErrorFolderPassword
}

// Update 更新文件夹
// 管理员不受限制；非管理员修改受保护文件夹的密码必须先提供 currentPassword，
// 缺失和错误分别对应参数错误与未授权。提交空密码清除保护
func (s *folderService) Update(ctx context.Context, actor domain.Actor, id string, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error) {
	folder, err := s.getFolder(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Password != nil && folder.IsProtected && !actor.IsAdmin() {
		if params.CurrentPassword == "" {
			return nil, code.ErrorFolderCurrentPasswordRequired
		}
		if !util.CheckPasswordHash(folder.PasswordHash, params.CurrentPassword) {
			return nil, code.ErrorFolderPassword
		}
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, code.ErrorFolderNameRequired
		}
		folder.Name = name
	}
	if params.Description != nil {
		folder.Description = *params.Description
	}
	if params.Icon != nil {
		folder.Icon = *params.Icon
	}
	if params.Password != nil {
		if *params.Password == "" {
			folder.PasswordHash = ""
			folder.IsProtected = false
		} else {
			hash, err := util.GeneratePasswordHash(*params.Password)
			if err != nil {
				return nil, code.ErrorServerInternal.WithDetails(err.Error())
			}
			folder.PasswordHash = hash
			folder.IsProtected = true
		}
	}

	updated, err := s.folderRepo.Update(ctx, folder)
	if err != nil {
		return nil, code.ErrorDBWrite.WithDetails(err.Error())
	}

	count, err := s.noteRepo.CountByFolder(ctx, updated.ID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(updated, count), nil
}

// Delete 删除文件夹并级联删除其笔记，仅管理员
// 级联在存储层事务内完成，失败时文件夹保持原样
func (s *folderService) Delete(ctx context.Context, actor domain.Actor, id string) (*dto.FolderDeleteDTO, error) {
	if !actor.IsAdmin() {
		return nil, code.ErrorAdminRequired
	}

	if _, err := s.getFolder(ctx, id); err != nil {
		return nil, err
	}

	deleted, err := s.folderRepo.DeleteWithNotes(ctx, id)
	if err != nil {
		s.logger.Error("folder cascade delete failed",
			zap.String("folderId", id),
			zap.Error(err))
		return nil, code.ErrorDBWrite.WithDetails(err.Error())
	}

	return &dto.FolderDeleteDTO{
		Message:      fmt.Sprintf("Folder and %d chat(s) deleted", deleted),
		DeletedNotes: deleted,
	}, nil
}

func (s *folderService) getFolder(ctx context.Context, id string) (*domain.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFolderNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return folder, nil
}
