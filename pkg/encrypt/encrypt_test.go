package encrypt_test

import (
	"testing"

	"Globetrek/pkg/encrypt"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash := encrypt.HashPassword("S3cret-pass")
	assert.NotEqual(t, "S3cret-pass", hash)

	assert.True(t, encrypt.VerifyPassword(hash, "S3cret-pass"))
	assert.False(t, encrypt.VerifyPassword(hash, "wrong-pass"))
	assert.False(t, encrypt.VerifyPassword("not-a-hash", "S3cret-pass"))
}

func TestHashNotDeterministic(t *testing.T) {
	first := encrypt.HashPassword("S3cret-pass")
	second := encrypt.HashPassword("S3cret-pass")
	assert.NotEqual(t, first, second)
}
