package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.NoError(t, hasher.Compare(hash, "pw123"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}

func TestBcryptHasherCostFallback(t *testing.T) {
	// Out-of-range cost falls back to the bcrypt default.
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "secret"))
}
