package service

import (
	"context"
	"testing"
	"time"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/dto"
	"github.com/mynote/mynote-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mockNoteRepo struct {
	domain.NoteRepository
	notes       map[string]*domain.Note
	viewUpdates int
	viewErr     error
}

func newMockNoteRepo(notes ...*domain.Note) *mockNoteRepo {
	m := &mockNoteRepo{notes: make(map[string]*domain.Note)}
	for _, n := range notes {
		m.notes[n.ID] = n
	}
	return m
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if note.ID == "" {
		note.ID = "generated-id"
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()
	m.notes[note.ID] = note
	return note, nil
}

func (m *mockNoteRepo) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m.notes[note.ID] = note
	return note, nil
}

func (m *mockNoteRepo) UpdateViewTracking(ctx context.Context, note *domain.Note) error {
	if m.viewErr != nil {
		return m.viewErr
	}
	m.viewUpdates++
	m.notes[note.ID] = note
	return nil
}

func (m *mockNoteRepo) Delete(ctx context.Context, id string) error {
	delete(m.notes, id)
	return nil
}

func (m *mockNoteRepo) ListRoot(ctx context.Context) ([]*domain.Note, error) {
	var res []*domain.Note
	for _, n := range m.notes {
		if !n.InFolder() {
			res = append(res, n)
		}
	}
	return res, nil
}

func (m *mockNoteRepo) ListByFolder(ctx context.Context, folderID string) ([]*domain.Note, error) {
	var res []*domain.Note
	for _, n := range m.notes {
		if n.FolderID == folderID {
			res = append(res, n)
		}
	}
	return res, nil
}

func (m *mockNoteRepo) CountByFolder(ctx context.Context, folderID string) (int64, error) {
	var count int64
	for _, n := range m.notes {
		if n.FolderID == folderID {
			count++
		}
	}
	return count, nil
}

func (m *mockNoteRepo) ListAll(ctx context.Context) ([]*domain.Note, error) {
	var res []*domain.Note
	for _, n := range m.notes {
		res = append(res, n)
	}
	return res, nil
}

type mockFolderRepo struct {
	domain.FolderRepository
	folders      map[string]*domain.Folder
	cascadeCount int64
}

func newMockFolderRepo(folders ...*domain.Folder) *mockFolderRepo {
	m := &mockFolderRepo{folders: make(map[string]*domain.Folder)}
	for _, f := range folders {
		m.folders[f.ID] = f
	}
	return m
}

func (m *mockFolderRepo) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	f, ok := m.folders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *mockFolderRepo) Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	if folder.ID == "" {
		folder.ID = "generated-folder-id"
	}
	m.folders[folder.ID] = folder
	return folder, nil
}

func (m *mockFolderRepo) Update(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	m.folders[folder.ID] = folder
	return folder, nil
}

func (m *mockFolderRepo) List(ctx context.Context) ([]*domain.Folder, error) {
	var res []*domain.Folder
	for _, f := range m.folders {
		res = append(res, f)
	}
	return res, nil
}

func (m *mockFolderRepo) DeleteWithNotes(ctx context.Context, id string) (int64, error) {
	delete(m.folders, id)
	return m.cascadeCount, nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNoteCreateDerivesTitle(t *testing.T) {
	svc := NewNoteService(newMockNoteRepo(), newMockFolderRepo(), zap.NewNop())

	got, err := svc.Create(context.Background(), domain.ActorAnonymous, &dto.NoteCreateRequest{
		Content: "# Meeting Notes\nAgenda items",
	})
	require.NoError(t, err)
	assert.Equal(t, "Meeting Notes", got.Title)
}

func TestNoteCreateUnknownFolder(t *testing.T) {
	svc := NewNoteService(newMockNoteRepo(), newMockFolderRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), domain.ActorAnonymous, &dto.NoteCreateRequest{
		Content:  "hello",
		FolderID: "missing",
	})
	assert.ErrorIs(t, err, code.ErrorFolderNotFound)
}

func TestNoteUpdatePinRequiresAdmin(t *testing.T) {
	repo := newMockNoteRepo(&domain.Note{ID: "n1", Title: "T", Content: "c"})
	svc := NewNoteService(repo, newMockFolderRepo(), zap.NewNop())

	_, err := svc.Update(context.Background(), domain.ActorAnonymous, "n1", &dto.NoteUpdateRequest{
		IsPinned: boolPtr(true),
	})
	assert.ErrorIs(t, err, code.ErrorNotePinRequiresAdmin)

	// 被拒绝的请求不改变笔记
	n, _ := repo.GetByID(context.Background(), "n1")
	assert.False(t, n.IsPinned)
}

func TestNoteUpdatePinnedLocksContent(t *testing.T) {
	repo := newMockNoteRepo(&domain.Note{ID: "n1", Title: "T", Content: "c", IsPinned: true})
	svc := NewNoteService(repo, newMockFolderRepo(), zap.NewNop())

	for name, params := range map[string]*dto.NoteUpdateRequest{
		"content":       {Content: strPtr("new")},
		"title":         {Title: strPtr("new")},
		"isTitleManual": {IsTitleManual: boolPtr(true)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), domain.ActorAnonymous, "n1", params)
			assert.ErrorIs(t, err, code.ErrorNotePinnedLocked)
		})
	}

	// 管理员不受限
	_, err := svc.Update(context.Background(), domain.ActorAdmin, "n1", &dto.NoteUpdateRequest{
		Content: strPtr("admin edit"),
	})
	assert.NoError(t, err)
}

func TestNoteUpdateRederivesTitle(t *testing.T) {
	repo := newMockNoteRepo(&domain.Note{ID: "n1", Title: "Old", Content: "old"})
	svc := NewNoteService(repo, newMockFolderRepo(), zap.NewNop())

	got, err := svc.Update(context.Background(), domain.ActorAnonymous, "n1", &dto.NoteUpdateRequest{
		Content: strPtr("# Fresh Title\nbody"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresh Title", got.Title)
}

func TestNoteUpdateManualTitleSticks(t *testing.T) {
	repo := newMockNoteRepo(&domain.Note{ID: "n1", Title: "Mine", TitleManual: true, Content: "old"})
	svc := NewNoteService(repo, newMockFolderRepo(), zap.NewNop())

	got, err := svc.Update(context.Background(), domain.ActorAnonymous, "n1", &dto.NoteUpdateRequest{
		Content: strPtr("# Other\nbody"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)
}

func TestNoteUpdateUnsetManualTitleRederives(t *testing.T) {
	repo := newMockNoteRepo(&domain.Note{ID: "n1", Title: "Mine", TitleManual: true, Content: "# Other\nbody"})
	svc := NewNoteService(repo, newMockFolderRepo(), zap.NewNop())

	// 仅取消手动标记、不改内容，标题也要立刻重新推导
	got, err := svc.Update(context.Background(), domain.ActorAnonymous, "n1", &dto.NoteUpdateRequest{
		IsTitleManual: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Other", got.Title)

	// 手动标题与取消标记同时提交时，推导结果覆盖提交的标题
	repo = newMockNoteRepo(&domain.Note{ID: "n2", Title: "Mine", TitleManual: true, Content: "# Other\nbody"})
	svc = NewNoteService(repo, newMockFolderRepo(), zap.NewNop())

	got, err = svc.Update(context.Background(), domain.ActorAnonymous, "n2", &dto.NoteUpdateRequest{
		Title:         strPtr("Ignored"),
		IsTitleManual: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Other", got.Title)
}

func TestNoteDeleteAdminOnly(t *testing.T) {
	repo := newMockNoteRepo(&domain.Note{ID: "n1"})
	svc := NewNoteService(repo, newMockFolderRepo(), zap.NewNop())

	err := svc.Delete(context.Background(), domain.ActorAnonymous, "n1")
	assert.ErrorIs(t, err, code.ErrorAdminRequired)

	err = svc.Delete(context.Background(), domain.ActorAdmin, "n1")
	assert.NoError(t, err)

	err = svc.Delete(context.Background(), domain.ActorAdmin, "n1")
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestNoteGetCountsUniqueViews(t *testing.T) {
	repo := newMockNoteRepo(&domain.Note{ID: "n1", Title: "T", Content: "c"})
	svc := NewNoteService(repo, newMockFolderRepo(), zap.NewNop())
	ctx := context.Background()

	got, err := svc.Get(ctx, "n1", "1_2_3_4_ua")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	// 24 小时窗口内同一指纹不再计数
	got, err = svc.Get(ctx, "n1", "1_2_3_4_ua")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	// 另一指纹计数
	got, err = svc.Get(ctx, "n1", "5_6_7_8_ua")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)
}

func TestNoteGetViewTrackingFailureDegrades(t *testing.T) {
	repo := newMockNoteRepo(&domain.Note{ID: "n1", Title: "T", Content: "c"})
	repo.viewErr = assert.AnError
	svc := NewNoteService(repo, newMockFolderRepo(), zap.NewNop())

	// 计数失败不影响读取
	got, err := svc.Get(context.Background(), "n1", "1_2_3_4_ua")
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
}

func TestNoteListVisibility(t *testing.T) {
	noteRepo := newMockNoteRepo(
		&domain.Note{ID: "root", Title: "root"},
		&domain.Note{ID: "open", Title: "open", FolderID: "f-open"},
		&domain.Note{ID: "secret", Title: "secret", FolderID: "f-locked"},
	)
	folderRepo := newMockFolderRepo(
		&domain.Folder{ID: "f-open", Name: "Open"},
		&domain.Folder{ID: "f-locked", Name: "Locked", PasswordHash: "x", IsProtected: true},
	)
	svc := NewNoteService(noteRepo, folderRepo, zap.NewNop())
	ctx := context.Background()

	got, err := svc.List(ctx, domain.ActorAnonymous, &dto.NoteListRequest{FolderID: FolderScopeAll})
	require.NoError(t, err)
	ids := make(map[string]bool)
	for _, n := range got {
		ids[n.ID] = true
	}
	assert.True(t, ids["root"])
	assert.True(t, ids["open"])
	assert.False(t, ids["secret"])

	got, err = svc.List(ctx, domain.ActorAdmin, &dto.NoteListRequest{FolderID: FolderScopeAll})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// 按 ID 指定文件夹时不做可见性过滤
	got, err = svc.List(ctx, domain.ActorAnonymous, &dto.NoteListRequest{FolderID: "f-locked"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "secret", got[0].ID)
}

func TestNoteSearchCaseInsensitive(t *testing.T) {
	noteRepo := newMockNoteRepo(
		&domain.Note{ID: "n1", Title: "Grocery List", Content: "eggs"},
		&domain.Note{ID: "n2", Title: "Other", Content: "buy GROCERIES tomorrow"},
		&domain.Note{ID: "n3", Title: "Unrelated", Content: "nothing"},
	)
	svc := NewNoteService(noteRepo, newMockFolderRepo(), zap.NewNop())

	got, err := svc.Search(context.Background(), domain.ActorAdmin, &dto.NoteSearchRequest{Query: "grocer"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNoteSearchEmptyQuery(t *testing.T) {
	svc := NewNoteService(newMockNoteRepo(), newMockFolderRepo(), zap.NewNop())

	_, err := svc.Search(context.Background(), domain.ActorAdmin, &dto.NoteSearchRequest{Query: "   "})
	assert.ErrorIs(t, err, code.ErrorInvalidParams)
}
