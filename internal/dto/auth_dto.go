// Package dto 请求/响应数据传输对象
package dto

// LoginRequest 管理员登录请求参数
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginUserDTO 登录响应中的用户信息
type LoginUserDTO struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginDTO 登录响应
type LoginDTO struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    LoginUserDTO `json:"user"`
}

// VerifyDTO 验证令牌响应
type VerifyDTO struct {
	IsAdmin bool `json:"isAdmin"`
}
