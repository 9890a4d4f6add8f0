// Package auth содержит HTTP-обработчики регистрации и входа.
package auth

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/adapters/http/dto"
	"gonotes/internal/adapters/http/middleware"
	"gonotes/internal/adapters/http/response"
	"gonotes/internal/ports/api"
	"gonotes/pkg/logger"
)

const (
	LogHandlerSignup = "handling signup request"
	LogHandlerLogin  = "handling login request"
	LogSignupFailed  = "signup failed"
	LogLoginFailed   = "login failed"

	MsgUserCreated      = "User created successfully"
	MsgAuthSuccessful   = "Authentication successful"
	LogInvalidAuthInput = "invalid request body"
)

// Handler обрабатывает запросы аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Signup обрабатывает POST /signup.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Signup"))
	log.Debug(requestCtx, LogHandlerSignup)

	var req dto.SignupRequest
	if err := dto.Decode(ctx, &req); err != nil {
		response.LogError(requestCtx, log, LogInvalidAuthInput, err)
		return response.Error(ctx, err)
	}

	user, err := h.authUseCase.Signup(requestCtx, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		response.LogError(requestCtx, log, LogSignupFailed, err)
		return response.Error(ctx, err)
	}

	return response.JSON(ctx, fiber.StatusCreated, dto.SignupResponse{
		Message: MsgUserCreated,
		Data:    dto.NewUser(user),
	})
}

// Login обрабатывает POST /login.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := dto.Decode(ctx, &req); err != nil {
		response.LogError(requestCtx, log, LogInvalidAuthInput, err)
		return response.Error(ctx, err)
	}

	token, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		response.LogError(requestCtx, log, LogLoginFailed, err)
		return response.Error(ctx, err)
	}

	return response.JSON(ctx, fiber.StatusOK, dto.LoginResponse{
		Message: MsgAuthSuccessful,
		Token:   token,
	})
}
