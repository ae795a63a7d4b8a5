package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emredok/studenthub/internal/pkg/auth"
)

func TestHashPasswordProducesDistinctDigests(t *testing.T) {
	first, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	second, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	// A fresh salt per call means identical plaintexts never collide
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$2a$10$"), "digest should embed algorithm and cost: %s", first)
}

func TestCheckPasswordRoundTrip(t *testing.T) {
	digest, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword(digest, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(digest, "s3cret-past"))
	assert.False(t, auth.CheckPassword(digest, ""))
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"garbage", "not-a-bcrypt-digest"},
		{"truncated", "$2a$10$tooshort"},
		{"plaintext leak", "s3cret-pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must return false, never panic
			assert.False(t, auth.CheckPassword(tt.digest, "s3cret-pass"))
		})
	}
}
