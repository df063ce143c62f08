package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/consts"
	"DevQuest/internal/pkg/es"
	"DevQuest/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type NoteService interface {
	CreateNote(ctx context.Context, userID uint64, dto *dto.NoteBaseDTO) (*dto.NoteDTO, error)
	ListMyNotes(ctx context.Context, userID uint64) ([]*dto.NoteDTO, error)
	UpdateNote(ctx context.Context, userID, noteID uint64, dto *dto.NoteBaseDTO) error
	DeleteNote(ctx context.Context, userID, noteID uint64) error
	ListLibrary(ctx context.Context, userID uint64, offset, limit int) ([]*dto.NoteDTO, error)
	SearchLibrary(ctx context.Context, userID uint64, keyword string, from, size int) ([]*dto.NoteDTO, error)
}

type NoteServiceImpl struct {
	noteRepo   repository.NoteRepo
	userRepo   repository.UserRepo
	noteESRepo es.NoteRepo
}

func NewNoteService(noteRepo repository.NoteRepo, userRepo repository.UserRepo, noteESRepo es.NoteRepo) NoteService {
	return &NoteServiceImpl{
		noteRepo:   noteRepo,
		userRepo:   userRepo,
		noteESRepo: noteESRepo,
	}
}

func (s *NoteServiceImpl) CreateNote(ctx context.Context, userID uint64, baseDTO *dto.NoteBaseDTO) (*dto.NoteDTO, error) {
	note := &model.Note{
		UserID:      userID,
		Title:       baseDTO.Title,
		Subject:     baseDTO.Subject,
		TextContent: baseDTO.TextContent,
		Visibility:  baseDTO.Visibility,
	}
	if note.Visibility == "" {
		note.Visibility = consts.NoteVisibilityPrivate
	}

	if err := s.noteRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	s.syncIndex(ctx, note)

	noteDTO := &dto.NoteDTO{}
	if err := copier.Copy(noteDTO, note); err != nil {
		return nil, err
	}
	return noteDTO, nil
}

func (s *NoteServiceImpl) ListMyNotes(ctx context.Context, userID uint64) ([]*dto.NoteDTO, error) {
	notes, err := s.noteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(notes)
}

func (s *NoteServiceImpl) UpdateNote(ctx context.Context, userID, noteID uint64, baseDTO *dto.NoteBaseDTO) error {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return err
	}

	note.Title = baseDTO.Title
	note.Subject = baseDTO.Subject
	note.TextContent = baseDTO.TextContent
	if baseDTO.Visibility != "" {
		note.Visibility = baseDTO.Visibility
	}

	if err = s.noteRepo.UpdateNote(ctx, note); err != nil {
		return err
	}

	s.syncIndex(ctx, note)
	return nil
}

func (s *NoteServiceImpl) DeleteNote(ctx context.Context, userID, noteID uint64) error {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return err
	}
	if err = s.noteRepo.DeleteNote(ctx, note.ID); err != nil {
		return err
	}
	if err = s.noteESRepo.DeleteNote(ctx, note.ID); err != nil {
		log.WarnContext(ctx, "note index delete failed", "note_id", note.ID, "err", err)
	}
	return nil
}

func (s *NoteServiceImpl) ListLibrary(ctx context.Context, userID uint64, offset, limit int) ([]*dto.NoteDTO, error) {
	notes, err := s.noteRepo.ListPublicExcludingUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(notes)
}

// SearchLibrary 走 ES 关键词检索，命中的都是别人的公开笔记。
// ES 不可用时退回数据库按时间倒序浏览，此时关键词被忽略
func (s *NoteServiceImpl) SearchLibrary(ctx context.Context, userID uint64, keyword string, from, size int) ([]*dto.NoteDTO, error) {
	var (
		docs []*es.NoteES
		err  error
	)
	if keyword == "" {
		docs, err = s.noteESRepo.GetLatestNotes(ctx, userID, from, size)
	} else {
		docs, err = s.noteESRepo.SearchNotes(ctx, userID, keyword, from, size)
	}
	if err != nil {
		log.WarnContext(ctx, "ES 检索失败，退回数据库浏览", "keyword", keyword, "err", err)
		return s.ListLibrary(ctx, userID, from, size)
	}

	noteDTOs := make([]*dto.NoteDTO, 0, len(docs))
	for _, doc := range docs {
		noteDTOs = append(noteDTOs, &dto.NoteDTO{
			ID:          doc.ID,
			UserID:      doc.UserID,
			Username:    doc.Username,
			Title:       doc.Title,
			Subject:     doc.Subject,
			TextContent: doc.Content,
			Visibility:  consts.NoteVisibilityPublic,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return noteDTOs, nil
}

// syncIndex 公开笔记进索引，转私有时摘除。索引失败只告警，不影响主流程
func (s *NoteServiceImpl) syncIndex(ctx context.Context, note *model.Note) {
	if note.Visibility != consts.NoteVisibilityPublic {
		if err := s.noteESRepo.DeleteNote(ctx, note.ID); err != nil {
			log.WarnContext(ctx, "note index delete failed", "note_id", note.ID, "err", err)
		}
		return
	}

	username := ""
	if user, err := s.userRepo.GetUserById(ctx, note.UserID); err == nil && user != nil {
		username = user.Username
	}

	doc := &es.NoteES{
		ID:        note.ID,
		UserID:    note.UserID,
		Username:  username,
		Title:     note.Title,
		Content:   note.TextContent,
		Subject:   note.Subject,
		CreatedAt: note.CreatedAt,
	}
	if err := s.noteESRepo.IndexNote(ctx, doc); err != nil {
		log.WarnContext(ctx, "note index failed", "note_id", note.ID, "err", err)
	}
}

func (s *NoteServiceImpl) ownedNote(ctx context.Context, userID, noteID uint64) (*model.Note, error) {
	note, err := s.noteRepo.GetNoteById(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserID != userID {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func (s *NoteServiceImpl) toDTOs(notes []*model.Note) ([]*dto.NoteDTO, error) {
	noteDTOs := make([]*dto.NoteDTO, 0, len(notes))
	for _, note := range notes {
		noteDTO := &dto.NoteDTO{}
		if err := copier.Copy(noteDTO, note); err != nil {
			return nil, err
		}
		noteDTOs = append(noteDTOs, noteDTO)
	}
	return noteDTOs, nil
}
