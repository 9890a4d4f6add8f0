package config

import (
	"time"

	"gonotes/pkg/db/redis"
)

// RedisConfig представляет конфигурацию кэша пользователей.
type RedisConfig struct {
	Enabled  bool          `env:"NOTES_REDIS_ENABLED" env-default:"false"`
	Host     string        `env:"NOTES_REDIS_HOST" env-default:"localhost"`
	Port     int           `env:"NOTES_REDIS_PORT" env-default:"6379"`
	Password string        `env:"NOTES_REDIS_PASSWORD"`
	DB       int           `env:"NOTES_REDIS_DB" env-default:"0"`
	PoolSize int           `env:"NOTES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `env:"NOTES_REDIS_TIMEOUT" env-default:"3s"`
	UserTTL  time.Duration `env:"NOTES_REDIS_USER_TTL" env-default:"15m"`
}

// ClientConfig преобразует настройки в конфигурацию pkg/db/redis.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}
