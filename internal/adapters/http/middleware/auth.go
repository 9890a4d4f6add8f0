package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/adapters/http/response"
	"gonotes/internal/domain/entities"
	"gonotes/internal/domain/services"
	"gonotes/pkg/logger"
)

const (
	bearerScheme = "Bearer"

	LogAuthRejected = "request rejected by auth middleware"
)

// UserResolver определяет владельца токена.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*entities.User, error)
}

// NewAuthMiddleware требует заголовок "Authorization: Bearer <token>" и кладет
// найденного пользователя в Locals. При ошибке ответ отправляется сразу.
func NewAuthMiddleware(resolver UserResolver) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		token, err := BearerToken(ctx.Get(fiber.HeaderAuthorization))
		if err != nil {
			response.LogError(requestCtx, log, LogAuthRejected, err)
			return response.Error(ctx, err)
		}

		user, err := resolver.CurrentUser(requestCtx, token)
		if err != nil {
			response.LogError(requestCtx, log, LogAuthRejected, err)
			return response.Error(ctx, err)
		}

		ctx.Locals(UserKey, user)
		return ctx.Next()
	}
}

// BearerToken извлекает токен из значения заголовка Authorization.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", services.ErrMissingAuthHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", services.ErrMalformedAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", services.ErrMalformedAuthHeader
	}
	return token, nil
}
