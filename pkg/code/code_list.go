package code

import "net/http"

// Success codes // 成功码
var (
	Success = NewSuss(0, lang{
		en:    "Success",
		zh_cn: "成功",
	})
)

// Common error codes // 通用错误码
var (
	ErrorServerInternal = NewError(100001, http.StatusInternalServerError, lang{
		en:    "Server internal error",
		zh_cn: "服务内部错误",
	})
	ErrorInvalidParams = NewError(100002, http.StatusBadRequest, lang{
		en:    "Invalid request parameters",
		zh_cn: "入参错误",
	})
	ErrorNotFoundAPI = NewError(100003, http.StatusNotFound, lang{
		en:    "API not found",
		zh_cn: "接口不存在",
	})
	ErrorTooManyRequests = NewError(100004, http.StatusTooManyRequests, lang{
		en:    "Too many requests",
		zh_cn: "请求过多",
	})
	ErrorDBQuery = NewError(100005, http.StatusInternalServerError, lang{
		en:    "Store query failed",
		zh_cn: "存储查询失败",
	})
	ErrorDBWrite = NewError(100006, http.StatusInternalServerError, lang{
		en:    "Store write failed",
		zh_cn: "存储写入失败",
	})
)

// Auth error codes // 认证错误码
var (
	ErrorInvalidCredentials = NewError(200001, http.StatusUnauthorized, lang{
		en:    "Invalid credentials",
		zh_cn: "用户名或密码错误",
	})
	ErrorNotAuthToken = NewError(200002, http.StatusUnauthorized, lang{
		en:    "No token provided",
		zh_cn: "缺少认证令牌",
	})
	ErrorInvalidAuthToken = NewError(200003, http.StatusUnauthorized, lang{
		en:    "Invalid token",
		zh_cn: "认证令牌无效",
	})
	ErrorAdminRequired = NewError(200004, http.StatusForbidden, lang{
		en:    "Admin access required",
		zh_cn: "需要管理员权限",
	})
)

// Note error codes // 笔记错误码
var (
	ErrorNoteNotFound = NewError(300001, http.StatusNotFound, lang{
		en:    "Note not found",
		zh_cn: "笔记不存在",
	})
	ErrorNotePinnedLocked = NewError(300002, http.StatusForbidden, lang{
		en:    "Note is pinned and locked against edits",
		zh_cn: "笔记已置顶锁定，禁止编辑",
	})
	ErrorNotePinRequiresAdmin = NewError(300003, http.StatusForbidden, lang{
		en:    "Only admin may pin or unpin a note",
		zh_cn: "仅管理员可置顶或取消置顶",
	})
)

// Folder error codes // 文件夹错误码
var (
	ErrorFolderNotFound = NewError(400001, http.StatusNotFound, lang{
		en:    "Folder not found",
		zh_cn: "文件夹不存在",
	})
	ErrorFolderNameRequired = NewError(400002, http.StatusBadRequest, lang{
		en:    "Folder name is required",
		zh_cn: "文件夹名称不能为空",
	})
	ErrorFolderPassword = NewError(400003, http.StatusUnauthorized, lang{
		en:    "Incorrect password",
		zh_cn: "密码错误",
	})
	ErrorFolderCurrentPasswordRequired = NewError(400004, http.StatusBadRequest, lang{
		en:    "Current password required to change password",
		zh_cn: "修改密码需要提供当前密码",
	})
	// Reserved for a future duplicate-name invariant; the store does not enforce
	// uniqueness today.
	// 预留给未来的重名校验；当前存储层不做唯一性约束
	ErrorFolderNameConflict = NewError(400005, http.StatusConflict, lang{
		en:    "Folder name already exists",
		zh_cn: "文件夹名称已存在",
	})
)
