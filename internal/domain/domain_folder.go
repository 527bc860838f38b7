package domain

import "time"

// DefaultFolderIcon 默认文件夹图标
const DefaultFolderIcon = "📁"

// Folder 文件夹领域模型
// IsProtected 由 PasswordHash 是否存在推导，两者始终一致
type Folder struct {
	ID           string
	Name         string
	Description  string
	PasswordHash string // bcrypt 哈希，永不对外序列化
	IsProtected  bool
	Icon         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FolderWithCount 携带笔记数量的文件夹列表项
type FolderWithCount struct {
	Folder
	NoteCount int64
}
