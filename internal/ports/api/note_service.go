package api

import (
	"context"

	"gonotes/internal/domain/entities"
)

// NoteUseCase определяет операции над заметками текущего пользователя.
type NoteUseCase interface {
	// CurrentUser проверяет токен и возвращает его владельца.
	CurrentUser(ctx context.Context, token string) (*entities.User, error)

	ListNotes(ctx context.Context, user *entities.User) ([]*entities.Note, error)

	AddNote(ctx context.Context, user *entities.User, title, description string) (*entities.Note, error)

	DeleteAllNotes(ctx context.Context, user *entities.User) (*entities.DeleteResult, error)

	DeleteNote(ctx context.Context, user *entities.User, title string) (*entities.Note, error)
}
