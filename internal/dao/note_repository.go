package dao

import (
	"context"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/model"
	"github.com/mynote/mynote-service/pkg/timex"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	*Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(d *Dao) domain.NoteRepository {
	return &noteRepository{Dao: d}
}

// GetByID 根据ID获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	var m model.Note
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// Create 创建笔记
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := model.NoteFromDomain(note)
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

// Update 覆盖写入笔记的可变字段
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := model.NoteFromDomain(note)
	m.UpdatedAt = timex.Now()
	// Select 列出全部可变列，保证布尔与空字符串也能写回
	err := r.Db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", m.ID).
		Select("title", "title_manual", "content", "is_pinned", "folder_id", "updated_at").
		Updates(m).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, m.ID)
}

// UpdateViewTracking 仅写入浏览计数字段，不触碰 updated_at
func (r *noteRepository) UpdateViewTracking(ctx context.Context, note *domain.Note) error {
	return r.Db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", note.ID).
		UpdateColumns(map[string]any{
			"view_count":     note.ViewCount,
			"last_viewed_by": datatypes.NewJSONType(note.LastViewedBy),
		}).Error
}

// Delete 硬删除
func (r *noteRepository) Delete(ctx context.Context, id string) error {
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{}).Error
}

// ListAll 返回全部笔记，置顶优先，其后按更新时间倒序
func (r *noteRepository) ListAll(ctx context.Context) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.Db.WithContext(ctx).
		Order("is_pinned DESC, updated_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(ms), nil
}

// ListRoot 返回无文件夹归属的笔记
func (r *noteRepository) ListRoot(ctx context.Context) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.Db.WithContext(ctx).
		Where("folder_id = ?", "").
		Order("is_pinned DESC, updated_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(ms), nil
}

// ListByFolder 返回指定文件夹下的笔记
func (r *noteRepository) ListByFolder(ctx context.Context, folderID string) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.Db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("is_pinned DESC, updated_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(ms), nil
}

// CountByFolder 统计文件夹下的笔记数量
func (r *noteRepository) CountByFolder(ctx context.Context, folderID string) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&model.Note{}).
		Where("folder_id = ?", folderID).
		Count(&count).Error
	return count, err
}

func toDomainList(ms []*model.Note) []*domain.Note {
	res := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.ToDomain())
	}
	return res
}
