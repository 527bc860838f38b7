package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/mynote/mynote-service/internal/domain"
	"github.com/mynote/mynote-service/internal/dto"
	"github.com/mynote/mynote-service/pkg/code"
	"github.com/mynote/mynote-service/pkg/timex"
	"github.com/mynote/mynote-service/pkg/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
	"golang.org/x/text/search"
	"gorm.io/gorm"
)

// 列表请求中 folderId 的特殊取值
const (
	FolderScopeAll  = "all"
	FolderScopeRoot = "root"
)

// NoteService 笔记业务服务接口
type NoteService interface {
	Create(ctx context.Context, actor domain.Actor, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)
	Get(ctx context.Context, id string, fingerprint string) (*dto.NoteDTO, error)
	Update(ctx context.Context, actor domain.Actor, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	List(ctx context.Context, actor domain.Actor, params *dto.NoteListRequest) ([]*dto.NoteDTO, error)
	Search(ctx context.Context, actor domain.Actor, params *dto.NoteSearchRequest) ([]*dto.NoteSearchDTO, error)
}

type noteService struct {
	noteRepo   domain.NoteRepository
	folderRepo domain.FolderRepository
	logger     *zap.Logger
	sf         singleflight.Group
}

func NewNoteService(noteRepo domain.NoteRepository, folderRepo domain.FolderRepository, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo:   noteRepo,
		folderRepo: folderRepo,
		logger:     logger,
	}
}

func (s *noteService) domainToDTO(n *domain.Note) *dto.NoteDTO {
	if n == nil {
		return nil
	}
	return &dto.NoteDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		IsPinned:  n.IsPinned,
		FolderID:  n.FolderID,
		ViewCount: n.ViewCount,
		CreatedAt: timex.Time(n.CreatedAt),
		UpdatedAt: timex.Time(n.UpdatedAt),
	}
}

// Create 创建笔记，标题从内容首行推导
func (s *noteService) Create(ctx context.Context, actor domain.Actor, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	if params.FolderID != "" {
		if _, err := s.folderRepo.GetByID(ctx, params.FolderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.ErrorFolderNotFound
			}
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
	}

	note := &domain.Note{
		Title:    util.DeriveNoteTitle(params.Content),
		Content:  params.Content,
		FolderID: params.FolderID,
	}

	created, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, code.ErrorDBWrite.WithDetails(err.Error())
	}
	return s.domainToDTO(created), nil
}

// Get 获取笔记并做尽力而为的独立访客计数
// 计数失败只降级为不计数，不影响读取
func (s *noteService) Get(ctx context.Context, id string, fingerprint string) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if fingerprint != "" {
		s.countView(ctx, note, fingerprint)
	}

	return s.domainToDTO(note), nil
}

// countView 同一访客的并发读取合并为一次计数，24 小时窗口内不重复累加
func (s *noteService) countView(ctx context.Context, note *domain.Note, fingerprint string) {
	now := time.Now()
	if !note.ShouldCountView(fingerprint, now) {
		return
	}

	key := note.ID + "#" + fingerprint
	_, _, _ = s.sf.Do(key, func() (any, error) {
		note.ViewCount++
		note.RecordView(fingerprint, now)
		if err := s.noteRepo.UpdateViewTracking(ctx, note); err != nil {
			note.ViewCount--
			s.logger.Warn("view tracking update failed",
				zap.String("noteId", note.ID),
				zap.Error(err))
		}
		return nil, nil
	})
}

// Update 更新笔记，置顶规则见 applyUpdatePolicy
func (s *noteService) Update(ctx context.Context, actor domain.Actor, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if err := applyUpdatePolicy(note, actor, params); err != nil {
		return nil, err
	}

	contentChanged := false
	if params.Content != nil && *params.Content != note.Content {
		note.Content = *params.Content
		contentChanged = true
	}
	if params.Title != nil {
		note.Title = *params.Title
		note.TitleManual = true
	}
	if params.IsTitleManual != nil {
		note.TitleManual = *params.IsTitleManual
	}
	if params.IsPinned != nil {
		note.IsPinned = *params.IsPinned
	}

	// 非手动标题跟随内容变化重新推导；取消手动标记时也立即推导，
	// 保证 titleManual=false 的笔记标题始终等于推导结果
	manualCleared := params.IsTitleManual != nil && !*params.IsTitleManual
	if !note.TitleManual && (contentChanged || manualCleared) {
		note.Title = util.DeriveNoteTitle(note.Content)
	}

	updated, err := s.noteRepo.Update(ctx, note)
	if err != nil {
		return nil, code.ErrorDBWrite.WithDetails(err.Error())
	}
	return s.domainToDTO(updated), nil
}

// applyUpdatePolicy 更新访问规则
// 1. isPinned 字段只有管理员可以提交
// 2. 置顶笔记对非管理员锁定内容和标题
// 任一规则拒绝时整个请求拒绝，笔记保持原样
func applyUpdatePolicy(note *domain.Note, actor domain.Actor, params *dto.NoteUpdateRequest) error {
	if params.IsPinned != nil && !actor.IsAdmin() {
		return code.ErrorNotePinRequiresAdmin
	}
	contentTouched := params.Content != nil || params.Title != nil || params.IsTitleManual != nil
	if note.IsPinned && !actor.IsAdmin() && contentTouched {
		return code.ErrorNotePinnedLocked
	}
	return nil
}

// Delete 硬删除，仅管理员
func (s *noteService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return code.ErrorAdminRequired
	}

	if _, err := s.noteRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorNoteNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return code.ErrorDBWrite.WithDetails(err.Error())
	}
	return nil
}

// List 按 folderId 范围列出笔记
// all 范围下非管理员看不到受保护文件夹内的笔记
func (s *noteService) List(ctx context.Context, actor domain.Actor, params *dto.NoteListRequest) ([]*dto.NoteDTO, error) {
	var notes []*domain.Note
	var err error

	switch params.FolderID {
	case FolderScopeAll:
		notes, err = s.listVisible(ctx, actor)
	case FolderScopeRoot, "":
		notes, err = s.noteRepo.ListRoot(ctx)
	default:
		if _, ferr := s.folderRepo.GetByID(ctx, params.FolderID); ferr != nil {
			if errors.Is(ferr, gorm.ErrRecordNotFound) {
				return nil, code.ErrorFolderNotFound
			}
			return nil, code.ErrorDBQuery.WithDetails(ferr.Error())
		}
		notes, err = s.noteRepo.ListByFolder(ctx, params.FolderID)
	}
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	res := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		res = append(res, s.domainToDTO(n))
	}
	return res, nil
}

// listVisible 聚合列表，受保护文件夹只对管理员展开
// 保护是目录层面的屏障，按 ID 直达不在此处拦截
func (s *noteService) listVisible(ctx context.Context, actor domain.Actor) ([]*domain.Note, error) {
	notes, err := s.noteRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return notes, nil
	}

	protected, err := s.protectedFolderIDs(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		if n.InFolder() && protected[n.FolderID] {
			continue
		}
		visible = append(visible, n)
	}
	return visible, nil
}

func (s *noteService) protectedFolderIDs(ctx context.Context) (map[string]bool, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	protected := make(map[string]bool)
	for _, f := range folders {
		if f.IsProtected {
			protected[f.ID] = true
		}
	}
	return protected, nil
}

// Search 标题与内容的大小写无关子串搜索，结果按更新时间倒序
// 可见性规则与聚合列表一致
func (s *noteService) Search(ctx context.Context, actor domain.Actor, params *dto.NoteSearchRequest) ([]*dto.NoteSearchDTO, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return nil, code.ErrorInvalidParams.WithDetails("q cannot be empty")
	}

	notes, err := s.listVisible(ctx, actor)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	matcher := search.New(language.Und, search.IgnoreCase, search.IgnoreDiacritics)
	pattern := matcher.CompileString(query)

	matched := make([]*domain.Note, 0)
	for _, n := range notes {
		if i, _ := pattern.IndexString(n.Title); i >= 0 {
			matched = append(matched, n)
			continue
		}
		if i, _ := pattern.IndexString(n.Content); i >= 0 {
			matched = append(matched, n)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})

	res := make([]*dto.NoteSearchDTO, 0, len(matched))
	for _, n := range matched {
		res = append(res, &dto.NoteSearchDTO{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			UpdatedAt: timex.Time(n.UpdatedAt),
		})
	}
	return res, nil
}
