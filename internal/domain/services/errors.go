// Package services содержит ошибки домена и их классификацию.
package services

import (
	"errors"
)

// Тексты ошибок возвращаются клиенту как есть.
//
//nolint:stylecheck
var (
	ErrMissingSignupFields = errors.New("All field are required")
	ErrMissingLoginFields  = errors.New("Email and password are required")
	ErrMissingNoteFields   = errors.New("Title and description are required")
	ErrMissingTitle        = errors.New("Title is required")
	ErrPasswordMismatch    = errors.New("Passwords do not match")
	ErrMalformedBody       = errors.New("Invalid request body")
)

// Ошибки аутентификации.
var (
	ErrMissingAuthHeader   = errors.New("Authorization header is required")
	ErrMalformedAuthHeader = errors.New("Authorization header must use the Bearer scheme")
	ErrUserNotFound        = errors.New("Authentication failed. User not found.")
	ErrInvalidCredentials  = errors.New("Authentication failed. Invalid credentials")
)

// Ошибки хранилища.
var (
	ErrNoteNotFound       = errors.New("Note not found")
	ErrEmailAlreadyExists = errors.New("User with this email already exists")
	ErrStoreFault         = errors.New("store fault")
)

// Kind - категория ошибки, определяющая ответ клиенту.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindConflict
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	default:
		return "unexpected"
	}
}

var kinds = []struct {
	kind Kind
	errs []error
}{
	{KindValidation, []error{
		ErrMissingSignupFields, ErrMissingLoginFields, ErrMissingNoteFields,
		ErrMissingTitle, ErrPasswordMismatch, ErrMalformedBody,
	}},
	{KindAuthentication, []error{
		ErrMissingAuthHeader, ErrMalformedAuthHeader, ErrInvalidJWTToken,
		ErrExpiredJWTToken, ErrUserNotFound, ErrInvalidCredentials,
	}},
	{KindNotFound, []error{ErrNoteNotFound}},
	{KindConflict, []error{ErrEmailAlreadyExists}},
	{KindStore, []error{ErrStoreFault}},
}

// Classify определяет категорию ошибки по цепочке обернутых ошибок.
func Classify(err error) Kind {
	if err == nil {
		return KindUnexpected
	}
	for _, k := range kinds {
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return k.kind
			}
		}
	}
	return KindUnexpected
}

// Sentinel возвращает известную ошибку домена из цепочки err, если она есть.
func Sentinel(err error) (error, bool) {
	for _, k := range kinds {
		if k.kind == KindStore {
			continue
		}
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return target, true
			}
		}
	}
	return nil, false
}
