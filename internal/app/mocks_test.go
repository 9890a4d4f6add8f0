package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gonotes/internal/domain/entities"
	"gonotes/internal/domain/services"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if n := args.Get(0); n != nil {
		return n.(*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	args := m.Called(ctx, userID)
	if n := args.Get(0); n != nil {
		return n.([]*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepository) DeleteAllByUserID(ctx context.Context, userID string) (*entities.DeleteResult, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.(*entities.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepository) DeleteOneByTitle(ctx context.Context, userID, title string) (*entities.Note, error) {
	args := m.Called(ctx, userID, title)
	if n := args.Get(0); n != nil {
		return n.(*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateAccessToken(ctx context.Context, token string) (*services.JWTClaims, error) {
	args := m.Called(ctx, token)
	if c := args.Get(0); c != nil {
		return c.(*services.JWTClaims), args.Error(1)
	}
	return nil, args.Error(1)
}
