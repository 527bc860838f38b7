package service

import (
	"context"
	"testing"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/dto"
	"github.com/mynote/mynote-service/pkg/code"
	"github.com/mynote/mynote-service/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := util.GeneratePasswordHash(password)
	require.NoError(t, err)
	return hash
}

func TestFolderCreate(t *testing.T) {
	svc := NewFolderService(newMockFolderRepo(), newMockNoteRepo(), zap.NewNop())
	ctx := context.Background()

	got, err := svc.Create(ctx, domain.ActorAnonymous, &dto.FolderCreateRequest{Name: "Work"})
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Name)
	assert.Equal(t, domain.DefaultFolderIcon, got.Icon)
	assert.False(t, got.IsProtected)

	got, err = svc.Create(ctx, domain.ActorAnonymous, &dto.FolderCreateRequest{
		Name:     "Private",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.True(t, got.IsProtected)
}

func TestFolderCreateEmptyName(t *testing.T) {
	svc := NewFolderService(newMockFolderRepo(), newMockNoteRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), domain.ActorAnonymous, &dto.FolderCreateRequest{Name: "   "})
	assert.ErrorIs(t, err, code.ErrorFolderNameRequired)
}

func TestFolderVerifyPassword(t *testing.T) {
	repo := newMockFolderRepo(
		&domain.Folder{ID: "open", Name: "Open"},
		&domain.Folder{ID: "locked", Name: "Locked", PasswordHash: mustHash(t, "secret"), IsProtected: true},
	)
	svc := NewFolderService(repo, newMockNoteRepo(), zap.NewNop())
	ctx := context.Background()

	// 未保护的文件夹直接通过
	got, err := svc.VerifyPassword(ctx, domain.ActorAnonymous, "open", &dto.FolderVerifyRequest{})
	require.NoError(t, err)
	assert.True(t, got.Verified)

	// 管理员绕过密码
	got, err = svc.VerifyPassword(ctx, domain.ActorAdmin, "locked", &dto.FolderVerifyRequest{})
	require.NoError(t, err)
	assert.True(t, got.Verified)

	// 正确密码
	got, err = svc.VerifyPassword(ctx, domain.ActorAnonymous, "locked", &dto.FolderVerifyRequest{Password: "secret"})
	require.NoError(t, err)
	assert.True(t, got.Verified)

	// 错误密码返回 verified=false 与未授权错误
	got, err = svc.VerifyPassword(ctx, domain.ActorAnonymous, "locked", &dto.FolderVerifyRequest{Password: "wrong"})
	assert.ErrorIs(t, err, code.ErrorFolderPassword)
	require.NotNil(t, got)
	assert.False(t, got.Verified)

	_, err = svc.VerifyPassword(ctx, domain.ActorAnonymous, "missing", &dto.FolderVerifyRequest{})
	assert.ErrorIs(t, err, code.ErrorFolderNotFound)
}

func TestFolderUpdatePasswordRules(t *testing.T) {
	repo := newMockFolderRepo(
		&domain.Folder{ID: "locked", Name: "Locked", PasswordHash: mustHash(t, "secret"), IsProtected: true},
	)
	svc := NewFolderService(repo, newMockNoteRepo(), zap.NewNop())
	ctx := context.Background()

	// 非管理员缺少 currentPassword
	_, err := svc.Update(ctx, domain.ActorAnonymous, "locked", &dto.FolderUpdateRequest{
		Password: strPtr("new"),
	})
	assert.ErrorIs(t, err, code.ErrorFolderCurrentPasswordRequired)

	// 非管理员 currentPassword 错误
	_, err = svc.Update(ctx, domain.ActorAnonymous, "locked", &dto.FolderUpdateRequest{
		Password:        strPtr("new"),
		CurrentPassword: "wrong",
	})
	assert.ErrorIs(t, err, code.ErrorFolderPassword)

	// 非管理员 currentPassword 正确
	got, err := svc.Update(ctx, domain.ActorAnonymous, "locked", &dto.FolderUpdateRequest{
		Password:        strPtr("new"),
		CurrentPassword: "secret",
	})
	require.NoError(t, err)
	assert.True(t, got.IsProtected)

	// 管理员无条件修改，空密码清除保护
	got, err = svc.Update(ctx, domain.ActorAdmin, "locked", &dto.FolderUpdateRequest{
		Password: strPtr(""),
	})
	require.NoError(t, err)
	assert.False(t, got.IsProtected)
}

func TestFolderUpdateFields(t *testing.T) {
	repo := newMockFolderRepo(&domain.Folder{ID: "f1", Name: "Old", Icon: "📁"})
	svc := NewFolderService(repo, newMockNoteRepo(), zap.NewNop())

	got, err := svc.Update(context.Background(), domain.ActorAnonymous, "f1", &dto.FolderUpdateRequest{
		Name:        strPtr("New"),
		Description: strPtr("desc"),
		Icon:        strPtr("🔒"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, "🔒", got.Icon)
}

func TestFolderDeleteAdminOnly(t *testing.T) {
	repo := newMockFolderRepo(&domain.Folder{ID: "f1", Name: "Work"})
	repo.cascadeCount = 4
	svc := NewFolderService(repo, newMockNoteRepo(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Delete(ctx, domain.ActorAnonymous, "f1")
	assert.ErrorIs(t, err, code.ErrorAdminRequired)

	got, err := svc.Delete(ctx, domain.ActorAdmin, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.DeletedNotes)
	assert.Equal(t, "Folder and 4 chat(s) deleted", got.Message)

	_, err = svc.Delete(ctx, domain.ActorAdmin, "f1")
	assert.ErrorIs(t, err, code.ErrorFolderNotFound)
}

func TestFolderListWithCounts(t *testing.T) {
	folderRepo := newMockFolderRepo(&domain.Folder{ID: "f1", Name: "Work"})
	noteRepo := newMockNoteRepo(
		&domain.Note{ID: "n1", FolderID: "f1"},
		&domain.Note{ID: "n2", FolderID: "f1"},
		&domain.Note{ID: "n3"},
	)
	svc := NewFolderService(folderRepo, noteRepo, zap.NewNop())

	got, err := svc.List(context.Background(), domain.ActorAnonymous)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ChatCount)
}
