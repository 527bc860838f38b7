package util

import (
	"strings"
)

// DefaultNoteTitle 标题推导为空时的兜底标题
const DefaultNoteTitle = "Untitled Note"

// MaxDerivedTitleLength 自动推导标题的最大长度
const MaxDerivedTitleLength = 50

// DeriveNoteTitle derives a note title from the first line of its markdown content.
// DeriveNoteTitle 从笔记内容的第一行推导标题
// 去除 Markdown 标记字符（#、*、`）后截断到 50 字符，为空则返回兜底标题
func DeriveNoteTitle(content string) string {
	firstLine := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		firstLine = content[:i]
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '`':
			return -1
		}
		return r
	}, firstLine)
	cleaned = strings.TrimSpace(cleaned)

	// 按字符截断，避免把多字节字符切坏
	runes := []rune(cleaned)
	if len(runes) > MaxDerivedTitleLength {
		cleaned = string(runes[:MaxDerivedTitleLength])
	}

	if cleaned == "" {
		return DefaultNoteTitle
	}
	return cleaned
}
