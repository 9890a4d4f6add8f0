package config

import (
	"fmt"
	"net/url"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host          string `env:"NOTES_POSTGRES_HOST" env-default:"localhost"`
	Port          int    `env:"NOTES_POSTGRES_PORT" env-default:"5432"`
	User          string `env:"NOTES_POSTGRES_USER" env-default:"postgres"`
	Password      string `env:"NOTES_POSTGRES_PASSWORD" env-default:"postgres"`
	Database      string `env:"NOTES_POSTGRES_DB" env-default:"notes"`
	SSLMode       string `env:"NOTES_POSTGRES_SSLMODE" env-default:"disable"`
	MinConn       int    `env:"NOTES_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn       int    `env:"NOTES_POSTGRES_MAX_CONN" env-default:"10"`
	URL           string `env:"NOTES_DATABASE_URL"`
	MigrationsDir string `env:"NOTES_POSTGRES_MIGRATIONS_DIR" env-default:"migrations"`
}

// GetConnectionURL возвращает URL подключения. NOTES_DATABASE_URL имеет приоритет.
func (p *PostgresConfig) GetConnectionURL() string {
	if p.URL != "" {
		return p.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.Database,
		RawQuery: "sslmode=" + p.SSLMode,
	}
	return u.String()
}
