// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gonotes/internal/domain/entities"
	"gonotes/pkg/logger"
)

// Ключи fiber.Locals.
const (
	UserContextKey = "userContext"
	UserKey        = "user"
)

// NewRequestIDMiddleware берет X-Request-ID из запроса или генерирует новый,
// кладет контекст с ним в Locals и возвращает идентификатор в ответе.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(logger.RequestIDHeader))
		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(logger.RequestIDHeader, id)
		}
		ctx.Locals(UserContextKey, requestCtx)
		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса, подготовленный NewRequestIDMiddleware.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(UserContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}

// CurrentUser возвращает пользователя, установленного NewAuthMiddleware.
func CurrentUser(ctx fiber.Ctx) (*entities.User, bool) {
	user, ok := ctx.Locals(UserKey).(*entities.User)
	return user, ok && user != nil
}
