package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, Verify("password123", hash))
	assert.False(t, Verify("wrong-password", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("password123")
	assert.NoError(t, err)
	second, err := Hash("password123")
	assert.NoError(t, err)

	// Deux hashs distincts mais tous deux vérifiables
	assert.NotEqual(t, first, second)
	assert.True(t, Verify("password123", first))
	assert.True(t, Verify("password123", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	tests := []struct {
		name   string
		hashed string
	}{
		{name: "Empty hash", hashed: ""},
		{name: "Not a bcrypt hash", hashed: "plain-text"},
		{name: "Truncated hash", hashed: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Verify("password123", tt.hashed))
		})
	}
}
