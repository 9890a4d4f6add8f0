// Package response отображает ошибки домена в HTTP-ответы.
package response

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/adapters/http/dto"
	"gonotes/internal/domain/services"
	"gonotes/pkg/logger"
)

const ErrSendResponse = "failed to send response"

// Status возвращает HTTP-статус для ошибки.
func Status(err error) int {
	switch services.Classify(err) {
	case services.KindValidation:
		if errors.Is(err, services.ErrPasswordMismatch) {
			return fiber.StatusUnauthorized
		}
		return fiber.StatusBadRequest
	case services.KindAuthentication:
		return fiber.StatusUnauthorized
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Message возвращает текст для клиента: известные ошибки домена отдаются
// своим текстом, остальные - полным текстом цепочки.
func Message(err error) string {
	if sentinel, ok := services.Sentinel(err); ok {
		return sentinel.Error()
	}
	return err.Error()
}

// JSON отправляет тело с указанным статусом.
func JSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("%s: %w", ErrSendResponse, err)
	}
	return nil
}

// Error отправляет ответ {message} со статусом, соответствующим ошибке.
func Error(ctx fiber.Ctx, err error) error {
	return JSON(ctx, Status(err), dto.ErrorResponse{Message: Message(err)})
}

// LogError пишет ошибку обработчика: клиентские ошибки как warn, серверные как error.
func LogError(ctx context.Context, log *logger.Logger, msg string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("kind", services.Classify(err).String()),
	}
	if Status(err) >= fiber.StatusInternalServerError {
		log.Error(ctx, msg, fields...)
		return
	}
	log.Warn(ctx, msg, fields...)
}
