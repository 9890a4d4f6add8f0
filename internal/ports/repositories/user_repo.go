// Package repositories определяет порты хранилищ.
package repositories

import (
	"context"

	"gonotes/internal/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователем.
type UserRepository interface {
	// Create сохраняет пользователя. Занятый email приводит к ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	// FindByEmail возвращает ErrUserNotFound, если пользователя нет.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
