package cache

import (
	"context"
	"errors"
	"time"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"

	"gonotes/internal/domain/entities"
	"gonotes/internal/ports/cache"
	"gonotes/internal/ports/repositories"
	"gonotes/internal/resilience"
	"gonotes/pkg/logger"
)

const (
	userKeyPrefix = "user:email:"

	logCacheHit         = "user cache hit"
	logCacheMiss        = "user cache miss"
	logCacheUnavailable = "user cache unavailable, falling back to store"
	logCacheDecode      = "failed to decode cached user"
	logCacheEncode      = "failed to encode user for cache"
)

// encMode сохраняет время с наносекундами.
var encMode = mustEncMode(cbor.EncOptions{Time: cbor.TimeRFC3339Nano})

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// cachedUser - представление пользователя в кэше.
type cachedUser struct {
	ID           string    `cbor:"1,keyasint"`
	Email        string    `cbor:"2,keyasint"`
	PasswordHash string    `cbor:"3,keyasint"`
	CreatedAt    time.Time `cbor:"4,keyasint"`
}

// CachedUserRepository кэширует поиск пользователя по email.
// Пользователи неизменяемы, поэтому инвалидация не требуется.
type CachedUserRepository struct {
	next    repositories.UserRepository
	cache   cache.Cache
	ttl     time.Duration
	breaker *resilience.CircuitBreaker
}

// NewCachedUserRepository оборачивает next кэшем. Ошибки кэша не прерывают запрос.
func NewCachedUserRepository(
	next repositories.UserRepository,
	c cache.Cache,
	ttl time.Duration,
	breaker *resilience.CircuitBreaker,
) repositories.UserRepository {
	return &CachedUserRepository{next: next, cache: c, ttl: ttl, breaker: breaker}
}

// UserKey возвращает ключ кэша для email.
func UserKey(email string) string {
	return userKeyPrefix + email
}

// Create сохраняет пользователя в хранилище.
func (r *CachedUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	return r.next.Create(ctx, user)
}

// FindByEmail сначала ищет пользователя в кэше, затем в хранилище.
func (r *CachedUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "cached_user"), zap.String("method", "FindByEmail"))
	key := UserKey(email)

	var raw []byte
	err := r.breaker.Execute(ctx, func() error {
		var getErr error
		raw, getErr = r.cache.Get(ctx, key)
		if errors.Is(getErr, cache.ErrMiss) {
			return nil
		}
		return getErr
	})

	switch {
	case err != nil:
		log.Debug(ctx, logCacheUnavailable, zap.Error(err))
	case raw != nil:
		var cu cachedUser
		decodeErr := cbor.Unmarshal(raw, &cu)
		if decodeErr == nil {
			log.Debug(ctx, logCacheHit)
			return &entities.User{
				ID:           cu.ID,
				Email:        cu.Email,
				PasswordHash: cu.PasswordHash,
				CreatedAt:    cu.CreatedAt,
			}, nil
		}
		log.Warn(ctx, logCacheDecode, zap.Error(decodeErr))
	default:
		log.Debug(ctx, logCacheMiss)
	}

	user, err := r.next.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	r.store(ctx, log, key, user)
	return user, nil
}

func (r *CachedUserRepository) store(ctx context.Context, log *logger.Logger, key string, user *entities.User) {
	payload, err := encMode.Marshal(cachedUser{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		log.Warn(ctx, logCacheEncode, zap.Error(err))
		return
	}

	if err := r.breaker.Execute(ctx, func() error {
		return r.cache.Set(ctx, key, payload, r.ttl)
	}); err != nil {
		log.Debug(ctx, logCacheUnavailable, zap.Error(err))
	}
}
