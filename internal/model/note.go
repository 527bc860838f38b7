package model

import (
	"time"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/pkg/timex"

	"gorm.io/datatypes"
)

// Note 笔记表
type Note struct {
	ID           string                              `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title        string                              `gorm:"column:title;size:255;not null" json:"title"`
	TitleManual  bool                                `gorm:"column:title_manual;default:false" json:"titleManual"`
	Content      string                              `gorm:"column:content;type:text" json:"content"`
	IsPinned     bool                                `gorm:"column:is_pinned;default:false;index" json:"isPinned"`
	FolderID     string                              `gorm:"column:folder_id;size:36;index;default:''" json:"folderId"`
	ViewCount    int64                               `gorm:"column:view_count;default:0" json:"viewCount"`
	LastViewedBy datatypes.JSONType[map[string]int64] `gorm:"column:last_viewed_by" json:"-"`
	CreatedAt    timex.Time                          `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    timex.Time                          `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName 表名
func (Note) TableName() string {
	return "note"
}

// ToDomain 转换为领域模型
func (m *Note) ToDomain() *domain.Note {
	return &domain.Note{
		ID:           m.ID,
		Title:        m.Title,
		TitleManual:  m.TitleManual,
		Content:      m.Content,
		IsPinned:     m.IsPinned,
		FolderID:     m.FolderID,
		ViewCount:    m.ViewCount,
		LastViewedBy: m.LastViewedBy.Data(),
		CreatedAt:    time.Time(m.CreatedAt),
		UpdatedAt:    time.Time(m.UpdatedAt),
	}
}

// NoteFromDomain 从领域模型构造表模型
func NoteFromDomain(n *domain.Note) *Note {
	return &Note{
		ID:           n.ID,
		Title:        n.Title,
		TitleManual:  n.TitleManual,
		Content:      n.Content,
		IsPinned:     n.IsPinned,
		FolderID:     n.FolderID,
		ViewCount:    n.ViewCount,
		LastViewedBy: datatypes.NewJSONType(n.LastViewedBy),
		CreatedAt:    timex.Time(n.CreatedAt),
		UpdatedAt:    timex.Time(n.UpdatedAt),
	}
}
