package dao

import (
	"context"
	"testing"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngine(DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	return New(db, context.Background())
}

func TestNoteRepositoryCreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{
		Title:   "Shopping List",
		Content: "# Shopping List\n- milk",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shopping List", got.Title)
	assert.Equal(t, int64(0), got.ViewCount)
}

func TestNoteRepositoryGetByIDNotFound(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepositoryUpdateClearsFolder(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{
		Title:    "Note",
		Content:  "body",
		FolderID: "folder-1",
	})
	require.NoError(t, err)

	created.FolderID = ""
	created.IsPinned = true
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Empty(t, updated.FolderID)
	assert.True(t, updated.IsPinned)
}

func TestNoteRepositoryUpdateViewTracking(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Title: "N", Content: "c"})
	require.NoError(t, err)
	before := created.UpdatedAt

	created.ViewCount = 3
	created.LastViewedBy = map[string]int64{"1_2_3_4_ua": 1700000000}
	require.NoError(t, repo.UpdateViewTracking(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ViewCount)
	assert.Equal(t, int64(1700000000), got.LastViewedBy["1_2_3_4_ua"])
	// 浏览计数写入不触碰 updated_at
	assert.Equal(t, before.Unix(), got.UpdatedAt.Unix())
}

func TestNoteRepositoryListOrdering(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	a, err := repo.Create(ctx, &domain.Note{Title: "A", Content: "a"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &domain.Note{Title: "B", Content: "b"})
	require.NoError(t, err)

	// 置顶 a，应排在 b 前面
	a.IsPinned = true
	_, err = repo.Update(ctx, a)
	require.NoError(t, err)

	notes, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, a.ID, notes[0].ID)
	assert.Equal(t, b.ID, notes[1].ID)
}

func TestFolderRepositoryDeleteWithNotes(t *testing.T) {
	d := newTestDao(t)
	folderRepo := NewFolderRepository(d)
	noteRepo := NewNoteRepository(d)
	ctx := context.Background()

	folder, err := folderRepo.Create(ctx, &domain.Folder{Name: "Work"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := noteRepo.Create(ctx, &domain.Note{Title: "N", Content: "c", FolderID: folder.ID})
		require.NoError(t, err)
	}
	_, err = noteRepo.Create(ctx, &domain.Note{Title: "Root", Content: "c"})
	require.NoError(t, err)

	deleted, err := folderRepo.DeleteWithNotes(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	_, err = folderRepo.GetByID(ctx, folder.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	rest, err := noteRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestFolderRepositoryListOrder(t *testing.T) {
	d := newTestDao(t)
	repo := NewFolderRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Folder{Name: "First"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Folder{Name: "Second"})
	require.NoError(t, err)

	folders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 2)
}
