package dto

import "github.com/mynote/mynote-service/pkg/timex"

// NoteDTO 笔记数据传输对象
// lastViewedBy 属于内部统计数据，不出现在任何响应中
type NoteDTO struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	IsPinned  bool       `json:"isPinned"`
	FolderID  string     `json:"folderId,omitempty"`
	ViewCount int64      `json:"viewCount"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// NoteSearchDTO 搜索结果项
type NoteSearchDTO struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// NoteCreateRequest 创建笔记请求参数
type NoteCreateRequest struct {
	Content  string `json:"content" form:"content" binding:"required"`
	FolderID string `json:"folderId" form:"folderId"`
}

// NoteUpdateRequest 更新笔记请求参数
// 指针字段用于区分「未提交」与「提交了零值」
type NoteUpdateRequest struct {
	Content       *string `json:"content" form:"content"`
	Title         *string `json:"title" form:"title"`
	IsTitleManual *bool   `json:"isTitleManual" form:"isTitleManual"`
	IsPinned      *bool   `json:"isPinned" form:"isPinned"`
}

// NoteListRequest 笔记列表请求参数
// FolderID 取值 all、root、空或具体文件夹 ID
type NoteListRequest struct {
	FolderID string `json:"folderId" form:"folderId"`
}

// NoteSearchRequest 搜索请求参数
type NoteSearchRequest struct {
	Query string `json:"q" form:"q" binding:"required"`
}
