package services

import (
	"errors"
	"time"
)

// JWTErrors содержит ошибки, связанные с JWT токенами.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// JWTClaims определяет данные, извлеченные из проверенного токена.
type JWTClaims struct {
	Email    string
	IssuedAt time.Time
	// ExpiresAt нулевой для бессрочных токенов.
	ExpiresAt time.Time
}
