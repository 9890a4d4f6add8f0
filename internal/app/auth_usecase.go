// Package app содержит сценарии регистрации, входа и работы с заметками.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gonotes/internal/domain/entities"
	"gonotes/internal/domain/services"
	"gonotes/internal/ports/api"
	"gonotes/internal/ports/repositories"
	svc "gonotes/internal/ports/services"
	"gonotes/pkg/logger"
)

const (
	methodSignup = "Signup"
	methodLogin  = "Login"

	msgStartSignup         = "starting user signup"
	msgMissingFields       = "required fields are missing"
	msgPasswordMismatch    = "password confirmation does not match"
	msgEmailExists         = "user with this email already exists"
	msgUserSignedUp        = "user signed up successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrGenerateToken     = "failed to generate access token"

	errCtxValidating         = "validating request"
	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxGeneratingToken    = "generating access token"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Signup регистрирует пользователя. Пароль сохраняется только в виде bcrypt хэша.
func (a *AuthUseCaseImpl) Signup(ctx context.Context, email, password, confirmPassword string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignup))
	log.Debug(ctx, msgStartSignup)

	if email == "" || password == "" || confirmPassword == "" {
		log.Debug(ctx, msgMissingFields)
		return nil, fmt.Errorf("%s: %w", errCtxValidating, services.ErrMissingSignupFields)
	}
	if password != confirmPassword {
		log.Debug(ctx, msgPasswordMismatch)
		return nil, fmt.Errorf("%s: %w", errCtxValidating, services.ErrPasswordMismatch)
	}

	existingUser, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, services.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.User{
		Email:        email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserSignedUp, zap.String("user_id", createdUser.ID))
	return createdUser, nil
}

// Login проверяет учетные данные и выпускает токен доступа.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin))
	log.Debug(ctx, msgLoginAttempt)

	if email == "" || password == "" {
		log.Debug(ctx, msgMissingFields)
		return "", fmt.Errorf("%s: %w", errCtxValidating, services.ErrMissingLoginFields)
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
		} else {
			log.Error(ctx, msgErrFindingUser, zap.Error(err))
		}
		return "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("user_id", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	token, err := a.tokenSvc.GenerateAccessToken(ctx, user.Email)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("user_id", user.ID))
	return token, nil
}
