package domain

import "context"

// NoteRepository 笔记存储接口
type NoteRepository interface {
	// GetByID 按 ID 获取笔记，未命中返回 gorm.ErrRecordNotFound
	GetByID(ctx context.Context, id string) (*Note, error)

	// Create 创建笔记，ID 为空时由存储层生成
	Create(ctx context.Context, note *Note) (*Note, error)

	// Update 覆盖写入笔记的可变字段
	Update(ctx context.Context, note *Note) (*Note, error)

	// UpdateViewTracking 仅写入浏览计数字段，不触碰 UpdatedAt
	UpdateViewTracking(ctx context.Context, note *Note) error

	// Delete 硬删除
	Delete(ctx context.Context, id string) error

	// ListAll 返回全部笔记，置顶优先，其后按更新时间倒序
	ListAll(ctx context.Context) ([]*Note, error)

	// ListRoot 返回无文件夹归属的笔记
	ListRoot(ctx context.Context) ([]*Note, error)

	// ListByFolder 返回指定文件夹下的笔记
	ListByFolder(ctx context.Context, folderID string) ([]*Note, error)

	// CountByFolder 统计文件夹下的笔记数量
	CountByFolder(ctx context.Context, folderID string) (int64, error)
}

// FolderRepository 文件夹存储接口
type FolderRepository interface {
	// GetByID 按 ID 获取文件夹，未命中返回 gorm.ErrRecordNotFound
	GetByID(ctx context.Context, id string) (*Folder, error)

	// Create 创建文件夹，ID 为空时由存储层生成
	Create(ctx context.Context, folder *Folder) (*Folder, error)

	// Update 覆盖写入文件夹字段
	Update(ctx context.Context, folder *Folder) (*Folder, error)

	// List 返回全部文件夹，按创建时间倒序
	List(ctx context.Context) ([]*Folder, error)

	// DeleteWithNotes deletes the folder's notes then the folder inside one
	// transaction, so a failed cascade leaves the folder record in place.
	// DeleteWithNotes 在单个事务内先删笔记再删文件夹，
	// 级联失败时文件夹记录保持原样。返回删除的笔记数量
	DeleteWithNotes(ctx context.Context, id string) (int64, error)
}
