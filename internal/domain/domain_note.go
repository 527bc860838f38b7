// Package domain 定义领域模型和接口
package domain

import "time"

// ViewCountWindow 同一访客重复计数的时间窗口
const ViewCountWindow = 24 * time.Hour

// Note 笔记领域模型
type Note struct {
	ID           string
	Title        string
	TitleManual  bool
	Content      string
	IsPinned     bool
	FolderID     string // 空字符串表示根目录（无文件夹）
	ViewCount    int64
	LastViewedBy map[string]int64 // 访客指纹 -> 最近浏览的 Unix 秒，不对外暴露
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InFolder 判断笔记是否归属某个文件夹
func (n *Note) InFolder() bool {
	return n.FolderID != ""
}

// ShouldCountView reports whether a view by fingerprint at now counts as a new
// unique view under the 24h window rule.
// ShouldCountView 判断该指纹在 now 时刻的浏览是否计入浏览量（24 小时窗口）
func (n *Note) ShouldCountView(fingerprint string, now time.Time) bool {
	if n.LastViewedBy == nil {
		return true
	}
	last, ok := n.LastViewedBy[fingerprint]
	if !ok {
		return true
	}
	return now.Sub(time.Unix(last, 0)) > ViewCountWindow
}

// RecordView 记录该指纹的浏览时间
func (n *Note) RecordView(fingerprint string, now time.Time) {
	if n.LastViewedBy == nil {
		n.LastViewedBy = make(map[string]int64)
	}
	n.LastViewedBy[fingerprint] = now.Unix()
}
