// Package api определяет входные порты сценариев.
package api

import (
	"context"

	"gonotes/internal/domain/entities"
)

// AuthUseCase определяет операции регистрации и входа.
type AuthUseCase interface {
	Signup(ctx context.Context, email, password, confirmPassword string) (*entities.User, error)

	Login(ctx context.Context, email, password string) (string, error)
}
