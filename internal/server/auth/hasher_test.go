package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, h.Verify("correct horse", hash))
	assert.False(t, h.Verify("Correct horse", hash))
	assert.False(t, h.Verify("", hash))
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "each hash must use its own salt")
	assert.True(t, h.Verify("same", a))
	assert.True(t, h.Verify("same", b))
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, bad := range []string{"", "invalid_hash", "$2a$", "5f4dcc3b5aa765d61d8327deb882cf99"} {
		assert.NotPanics(t, func() {
			assert.False(t, h.Verify("password", bad), "hash %q", bad)
		})
	}
}

func TestBcryptHasher_Cost(t *testing.T) {
	h := NewBcryptHasher(5)
	assert.Equal(t, 5, h.Cost())

	hash, err := h.Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).Cost())
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	_, err := h.Hash(string(long))
	assert.Error(t, err)
}
