package repositories

import (
	"context"

	"gonotes/internal/domain/entities"
)

// NoteRepository определяет интерфейс для работы с заметками.
// Все операции ограничены заметками владельца userID.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)

	DeleteAllByUserID(ctx context.Context, userID string) (*entities.DeleteResult, error)

	// DeleteOneByTitle удаляет самую раннюю заметку с таким заголовком.
	// Возвращает ErrNoteNotFound, если подходящей заметки нет.
	DeleteOneByTitle(ctx context.Context, userID, title string) (*entities.Note, error)
}
