package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gonotes/internal/domain/entities"
	"gonotes/internal/domain/services"
	"gonotes/internal/ports/api"
	"gonotes/internal/ports/repositories"
	svc "gonotes/internal/ports/services"
	"gonotes/pkg/logger"
)

const (
	methodCurrentUser    = "CurrentUser"
	methodListNotes      = "ListNotes"
	methodAddNote        = "AddNote"
	methodDeleteAllNotes = "DeleteAllNotes"
	methodDeleteNote     = "DeleteNote"

	msgTokenRejected    = "access token rejected"
	msgTokenOwnerAbsent = "token owner no longer exists"
	msgNotesListed      = "notes listed"
	msgNoteAdded        = "note added"
	msgNotesDeleted     = "notes deleted"
	msgNoteDeleted      = "note deleted"
	msgNoteDeleteFailed = "note was not deleted"

	errCtxValidatingToken = "validating access token"
	errCtxResolvingUser   = "resolving token owner"
	errCtxListingNotes    = "listing notes"
	errCtxAddingNote      = "adding note"
	errCtxDeletingNotes   = "deleting notes"
	errCtxDeletingNote    = "deleting note"
)

// NoteUseCaseImpl реализует интерфейс NoteUseCase.
// Каждая операция выполняется только над заметками переданного пользователя.
type NoteUseCaseImpl struct {
	noteRepo  repositories.NoteRepository
	userRepo  repositories.UserRepository
	tokenSvc  svc.TokenService
	stampDate bool
	now       func() time.Time
}

// NewNoteUseCase создает сценарии работы с заметками.
// При stampDate новые заметки получают текущее время в поле date.
func NewNoteUseCase(
	noteRepo repositories.NoteRepository,
	userRepo repositories.UserRepository,
	tokenSvc svc.TokenService,
	stampDate bool,
) api.NoteUseCase {
	return &NoteUseCaseImpl{
		noteRepo:  noteRepo,
		userRepo:  userRepo,
		tokenSvc:  tokenSvc,
		stampDate: stampDate,
		now:       time.Now,
	}
}

// CurrentUser проверяет токен и находит пользователя по email из него.
func (n *NoteUseCaseImpl) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCurrentUser))

	claims, err := n.tokenSvc.ValidateAccessToken(ctx, token)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	user, err := n.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		log.Debug(ctx, msgTokenOwnerAbsent, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxResolvingUser, err)
	}

	return user, nil
}

// ListNotes возвращает все заметки пользователя; при их отсутствии - пустой срез.
func (n *NoteUseCaseImpl) ListNotes(ctx context.Context, user *entities.User) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("user_id", user.ID))

	notes, err := n.noteRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}
	if notes == nil {
		notes = []*entities.Note{}
	}

	log.Debug(ctx, msgNotesListed, zap.Int("count", len(notes)))
	return notes, nil
}

// AddNote создает заметку, принадлежащую пользователю.
func (n *NoteUseCaseImpl) AddNote(ctx context.Context, user *entities.User, title, description string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddNote), zap.String("user_id", user.ID))

	if title == "" || description == "" {
		return nil, fmt.Errorf("%s: %w", errCtxAddingNote, services.ErrMissingNoteFields)
	}

	var stamp *time.Time
	if n.stampDate {
		now := n.now().UTC()
		stamp = &now
	}

	note, err := n.noteRepo.Create(ctx, entities.NewNote(user.ID, title, description, stamp))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxAddingNote, err)
	}

	log.Info(ctx, msgNoteAdded, zap.String("note_id", note.ID))
	return note, nil
}

// DeleteAllNotes удаляет все заметки пользователя.
func (n *NoteUseCaseImpl) DeleteAllNotes(ctx context.Context, user *entities.User) (*entities.DeleteResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteAllNotes), zap.String("user_id", user.ID))

	result, err := n.noteRepo.DeleteAllByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDeletingNotes, err)
	}

	log.Info(ctx, msgNotesDeleted, zap.Int64("count", result.DeletedCount))
	return result, nil
}

// DeleteNote удаляет одну заметку пользователя с точным совпадением заголовка.
func (n *NoteUseCaseImpl) DeleteNote(ctx context.Context, user *entities.User, title string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("user_id", user.ID))

	if title == "" {
		return nil, fmt.Errorf("%s: %w", errCtxDeletingNote, services.ErrMissingTitle)
	}

	note, err := n.noteRepo.DeleteOneByTitle(ctx, user.ID, title)
	if err != nil {
		log.Debug(ctx, msgNoteDeleteFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted, zap.String("note_id", note.ID))
	return note, nil
}
