package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emredok/studenthub/internal/pkg/auth"
)

const testSecret = "test-signing-secret"

func newTestJWTService(expiry time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   testSecret,
		TokenExpiry: expiry,
		TokenIssuer: "studenthub.test",
	})
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(24 * time.Hour)

	token, expiresIn, err := svc.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(86400), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.StudentID)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID, "token should carry a jti")
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-1 * time.Minute)

	token, _, err := svc.GenerateToken(42)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestJWTService(24 * time.Hour)
	verifier := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExpiry: 24 * time.Hour,
		TokenIssuer: "studenthub.test",
	})

	token, _, err := issuer.GenerateToken(42)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := newTestJWTService(24 * time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"not a jwt", "definitely-not-a-token"},
		{"truncated jwt", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiI0MiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := auth.ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A bare token is passed through untouched; rejecting it is the
	// verifier's job
	token, err = auth.ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A non-Bearer scheme is also passed through whole and will fail
	// signature verification downstream
	token, err = auth.ExtractBearerToken("Token abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "Token abc.def.ghi", token)

	for _, header := range []string{"", "   ", "Bearer ", "Bearer    "} {
		_, err = auth.ExtractBearerToken(header)
		assert.ErrorIs(t, err, auth.ErrInvalidFormat, "header %q", header)
	}
}
