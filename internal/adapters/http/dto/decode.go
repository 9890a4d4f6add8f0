package dto

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"gonotes/internal/domain/services"
)

// Decode разбирает JSON-тело запроса в v. Пустое тело трактуется как пустой объект,
// некорректный JSON возвращает services.ErrMalformedBody.
func Decode(ctx fiber.Ctx, v any) error {
	body := ctx.Body()
	if len(body) == 0 {
		return nil
	}
	if err := ctx.App().Config().JSONDecoder(body, v); err != nil {
		return fmt.Errorf("%w: %w", services.ErrMalformedBody, err)
	}
	return nil
}
