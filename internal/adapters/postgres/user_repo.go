package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gonotes/internal/domain/entities"
	"gonotes/internal/domain/services"
	"gonotes/internal/ports/repositories"
	"gonotes/pkg/logger"
)

const (
	errCtxQueryUserByEmail = "error querying user by email"
	errCtxCreateUser       = "error creating user"
)

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, email, password_hash, created_at
        FROM users
        WHERE email = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found")
			return nil, services.ErrUserNotFound
		}
		log.Error(ctx, errCtxQueryUserByEmail, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxQueryUserByEmail, services.ErrStoreFault, err)
	}

	return &user, nil
}

// Create создает нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (email, password_hash)
        VALUES ($1, $2)
        RETURNING id, email, password_hash, created_at
    `

	var createdUser entities.User
	err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
	).Scan(
		&createdUser.ID,
		&createdUser.Email,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "email already registered")
			return nil, fmt.Errorf("%s: %w", errCtxCreateUser, services.ErrEmailAlreadyExists)
		}
		log.Error(ctx, errCtxCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxCreateUser, services.ErrStoreFault, err)
	}

	log.Info(ctx, "user created", zap.String("user_id", createdUser.ID))
	return &createdUser, nil
}
