package util

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestDeriveNoteTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"heading marker stripped", "# Hello\nBody text", "Hello"},
		{"emphasis stripped", "**Bold title**\nmore", "Bold title"},
		{"code marker stripped", "`code` title", "code title"},
		{"empty content", "", DefaultNoteTitle},
		{"only markers", "#*`", DefaultNoteTitle},
		{"whitespace only", "   \nbody", DefaultNoteTitle},
		{"plain first line", "Shopping list\n- milk", "Shopping list"},
		{"truncated to 50", strings.Repeat("a", 80), strings.Repeat("a", 50)},
		{"multibyte safe truncation", strings.Repeat("笔", 60), strings.Repeat("笔", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveNoteTitle(tt.content))
		})
	}
}

// 标题推导的通用属性：长度受限、无标记字符、无前后空白
func TestDeriveNoteTitleProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("never exceeds max length", prop.ForAll(
		func(content string) bool {
			return len([]rune(DeriveNoteTitle(content))) <= MaxDerivedTitleLength
		},
		gen.AnyString(),
	))

	properties.Property("never contains markdown markers", prop.ForAll(
		func(content string) bool {
			return !strings.ContainsAny(DeriveNoteTitle(content), "#*`")
		},
		gen.AnyString(),
	))

	properties.Property("never empty", prop.ForAll(
		func(content string) bool {
			return DeriveNoteTitle(content) != ""
		},
		gen.AnyString(),
	))

	properties.Property("trimmed", prop.ForAll(
		func(content string) bool {
			title := DeriveNoteTitle(content)
			return title == strings.TrimSpace(title)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestViewerFingerprint(t *testing.T) {
	fp := ViewerFingerprint("192.168.1.10", "Mozilla/5.0 (X11)")
	assert.NotContains(t, fp, ".")
	assert.NotContains(t, fp, "$")
	assert.Equal(t, "192_168_1_10_Mozilla/5_0 (X11)", fp)

	// Distinct viewers must map to distinct fingerprints
	// 不同访客必须得到不同指纹
	other := ViewerFingerprint("192.168.1.11", "Mozilla/5.0 (X11)")
	assert.NotEqual(t, fp, other)
}
