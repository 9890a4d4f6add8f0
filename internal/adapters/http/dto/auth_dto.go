// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import "gonotes/internal/domain/entities"

// SignupRequest содержит данные для регистрации пользователя.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest содержит данные для входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User - представление пользователя в ответе. Password содержит хеш пароля.
type User struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse - ответ на успешную регистрацию.
type SignupResponse struct {
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// LoginResponse - ответ на успешный вход.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse - тело любого ответа с ошибкой.
type ErrorResponse struct {
	Message string `json:"message"`
}

func NewUser(user *entities.User) User {
	return User{
		ID:       user.ID,
		Email:    user.Email,
		Password: user.PasswordHash,
	}
}
