package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gonotes/internal/adapters/services"
	domainservices "gonotes/internal/domain/services"
)

//nolint:gosec
const (
	testSecret   = "test-secret-key-12345"
	testEmail    = "alice@example.com"
	testPassword = "s3cret"
)

func TestBcryptHashAndVerify(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(domainservices.PasswordCost)

	hash, err := service.Hash(ctx, testPassword)
	require.NoError(t, err)
	assert.NotEqual(t, testPassword, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, domainservices.PasswordCost, cost)

	ok, err := service.Verify(ctx, testPassword, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Verify(ctx, "wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptSaltIsRandom(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	first, err := service.Hash(ctx, testPassword)
	require.NoError(t, err)
	second, err := service.Hash(ctx, testPassword)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptLongPassword(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	prefix := strings.Repeat("p", services.MaxPasswordBytes)
	long := prefix + "-tail-one"

	hash, err := service.Hash(ctx, long)
	require.NoError(t, err)

	ok, err := service.Verify(ctx, long, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// Учитываются только первые MaxPasswordBytes байт.
	ok, err = service.Verify(ctx, prefix+"-tail-two", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Verify(ctx, prefix[1:], hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptErrors(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(0)

	_, err := service.Hash(ctx, "")
	assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)

	_, err = service.Verify(ctx, "", "hash")
	assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)

	ok, err := service.Verify(ctx, testPassword, "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestJWTRoundTrip(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecret, 0)

	token, err := service.GenerateAccessToken(ctx, testEmail)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, claims.Email)
	assert.False(t, claims.IssuedAt.IsZero())
	assert.True(t, claims.ExpiresAt.IsZero(), "tokens are unbounded by default")
}

func TestJWTWithTTL(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecret, time.Hour)

	token, err := service.GenerateAccessToken(ctx, testEmail)
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTRejects(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecret, 0)

	expired := sign(t, jwt.SigningMethodHS256, []byte(testSecret), services.Claims{
		Email: testEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	otherSecret := sign(t, jwt.SigningMethodHS256, []byte("another-secret"), services.Claims{Email: testEmail})
	noEmail := sign(t, jwt.SigningMethodHS256, []byte(testSecret), services.Claims{})
	noneAlg := sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, services.Claims{Email: testEmail})

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"expired", expired, domainservices.ErrExpiredJWTToken},
		{"wrong signature", otherSecret, domainservices.ErrInvalidJWTToken},
		{"empty email", noEmail, domainservices.ErrInvalidJWTToken},
		{"none algorithm", noneAlg, domainservices.ErrInvalidJWTToken},
		{"garbage", "invalid.token.format", domainservices.ErrInvalidJWTToken},
		{"empty", "", domainservices.ErrInvalidJWTToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateAccessToken(ctx, tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJWTEmptySecret(t *testing.T) {
	_, err := services.NewJWT("", 0).GenerateAccessToken(context.Background(), testEmail)
	assert.ErrorIs(t, err, domainservices.ErrGeneratingJWTToken)
}

func TestServiceFactory(t *testing.T) {
	factory := services.NewServiceFactory(testSecret, 0, domainservices.PasswordCost)

	assert.IsType(t, &services.ServiceBcrypt{}, factory.PasswordService())
	assert.IsType(t, &services.ServiceJWT{}, factory.TokenService())
}
