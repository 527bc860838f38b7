package dao

import (
	"context"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/model"
	"github.com/mynote/mynote-service/pkg/timex"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type folderRepository struct {
	*Dao
}

func NewFolderRepository(d *Dao) domain.FolderRepository {
	return &folderRepository{Dao: d}
}

func (r *folderRepository) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	var m model.Folder
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *folderRepository) Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	m := model.FolderFromDomain(folder)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := timex.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	err := r.Db.WithContext(ctx).Create(m).Error
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *folderRepository) Update(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	m := model.FolderFromDomain(folder)
	m.UpdatedAt = timex.Now()
	err := r.Db.WithContext(ctx).Model(&model.Folder{}).
		Where("id = ?", m.ID).
		Select("name", "description", "password_hash", "is_protected", "icon", "updated_at").
		Updates(m).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, m.ID)
}

// List 返回全部文件夹，按创建时间倒序
func (r *folderRepository) List(ctx context.Context) ([]*domain.Folder, error) {
	var ms []*model.Folder
	err := r.Db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	res := make([]*domain.Folder, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.ToDomain())
	}
	return res, nil
}

// DeleteWithNotes 在单个事务内先删笔记再删文件夹，返回删除的笔记数量
func (r *folderRepository) DeleteWithNotes(ctx context.Context, id string) (int64, error) {
	var deleted int64
	err := r.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Where("folder_id = ?", id).Delete(&model.Note{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return tx.Where("id = ?", id).Delete(&model.Folder{}).Error
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
