package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptVerifier_HashAndVerify(t *testing.T) {
	v := NewBcryptVerifier()

	hashed, err := v.Hash("admin123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hashed, "$2"), "expected a bcrypt hash, got %s", hashed)

	assert.True(t, v.Verify("admin123", hashed))
	assert.False(t, v.Verify("wrong", hashed))
}

func TestBcryptVerifier_LegacyPlaintextFallback(t *testing.T) {
	v := NewBcryptVerifier()

	// Rows migrated from the old register may still hold plaintext.
	assert.True(t, v.Verify("123456", "123456"))
	assert.False(t, v.Verify("123456", "654321"))
}
