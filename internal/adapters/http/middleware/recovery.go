package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/adapters/http/dto"
	"gonotes/pkg/logger"
)

const (
	LogServerPanic       = "server panic"
	LogPanicResponseFail = "failed to send error response after panic"
	MsgInternalError     = "Internal Server Error"
)

// NewRecoveryMiddleware перехватывает панику обработчика и отвечает 500.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := RequestContext(ctx)

		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log := logger.Log(requestCtx)
			log.Error(requestCtx, LogServerPanic,
				zap.String("error", fmt.Sprintf("%v", r)),
				zap.String("stack", string(debug.Stack())),
			)

			err = ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: MsgInternalError})
			if err != nil {
				log.Error(requestCtx, LogPanicResponseFail, zap.Error(err))
			}
		}()

		return ctx.Next()
	}
}
