// Package entities содержит сущности домена заметок.
package entities

import "time"

// User представляет зарегистрированного пользователя.
// Создается один раз при регистрации и больше не изменяется.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
