package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
// Нулевой TokenTTL означает токены без срока действия.
type JWTConfig struct {
	SecretKey string        `env:"NOTES_JWT_SECRET_KEY" env-required:"true"`
	TokenTTL  time.Duration `env:"NOTES_JWT_TOKEN_TTL" env-default:"0s"`
}
