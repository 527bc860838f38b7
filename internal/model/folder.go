package model

import (
	"time"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/pkg/timex"
)

// Folder 文件夹表
type Folder struct {
	ID           string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name         string     `gorm:"column:name;size:255;not null" json:"name"`
	Description  string     `gorm:"column:description;size:1024;default:''" json:"description"`
	PasswordHash string     `gorm:"column:password_hash;size:255;default:''" json:"-"`
	IsProtected  bool       `gorm:"column:is_protected;default:false" json:"isProtected"`
	Icon         string     `gorm:"column:icon;size:64;default:''" json:"icon"`
	CreatedAt    timex.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    timex.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName 表名
func (Folder) TableName() string {
	return "folder"
}

// ToDomain 转换为领域模型
func (m *Folder) ToDomain() *domain.Folder {
	return &domain.Folder{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		PasswordHash: m.PasswordHash,
		IsProtected:  m.IsProtected,
		Icon:         m.Icon,
		CreatedAt:    time.Time(m.CreatedAt),
		UpdatedAt:    time.Time(m.UpdatedAt),
	}
}

// FolderFromDomain 从领域模型构造表模型
func FolderFromDomain(f *domain.Folder) *Folder {
	return &Folder{
		ID:           f.ID,
		Name:         f.Name,
		Description:  f.Description,
		PasswordHash: f.PasswordHash,
		IsProtected:  f.IsProtected,
		Icon:         f.Icon,
		CreatedAt:    timex.Time(f.CreatedAt),
		UpdatedAt:    timex.Time(f.UpdatedAt),
	}
}
