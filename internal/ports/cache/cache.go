// Package cache определяет интерфейс байтового кэша.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss возвращается Get, если ключ отсутствует.
var ErrMiss = errors.New("cache miss")

// Cache определяет интерфейс для работы с кэшем.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
