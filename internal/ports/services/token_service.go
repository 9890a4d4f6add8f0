package services

import (
	"context"

	"gonotes/internal/domain/services"
)

// TokenService определяет интерфейс для операций с токенами JWT.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, email string) (string, error)

	ValidateAccessToken(ctx context.Context, token string) (*services.JWTClaims, error)
}
