package dto

import "github.com/mynote/mynote-service/pkg/timex"

// FolderDTO 文件夹数据传输对象
// passwordHash 永不序列化
type FolderDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsProtected bool       `json:"isProtected"`
	Icon        string     `json:"icon"`
	ChatCount   int64      `json:"chatCount"`
	CreatedAt   timex.Time `json:"createdAt"`
	UpdatedAt   timex.Time `json:"updatedAt"`
}

// FolderCreateRequest 创建文件夹请求参数
type FolderCreateRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=100"`
	Description string `json:"description" form:"description" binding:"max=500"`
	Password    string `json:"password" form:"password"`
	Icon        string `json:"icon" form:"icon"`
}

// FolderUpdateRequest 更新文件夹请求参数
type FolderUpdateRequest struct {
	Name            *string `json:"name" form:"name"`
	Description     *string `json:"description" form:"description"`
	Password        *string `json:"password" form:"password"`
	Icon            *string `json:"icon" form:"icon"`
	CurrentPassword string  `json:"currentPassword" form:"currentPassword"`
}

// FolderVerifyRequest 验证文件夹密码请求参数
type FolderVerifyRequest struct {
	Password string `json:"password" form:"password"`
}

// FolderVerifyDTO 验证文件夹密码响应
type FolderVerifyDTO struct {
	Verified bool `json:"verified"`
}

// FolderDeleteDTO 删除文件夹响应
type FolderDeleteDTO struct {
	Message      string `json:"message"`
	DeletedNotes int64  `json:"deletedNotes"`
}
