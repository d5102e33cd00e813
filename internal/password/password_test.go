package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	encoded, err := h.Hash("1234")
	assert.NoError(t, err)
	assert.NotEqual(t, "1234", encoded)
	assert.True(t, strings.HasPrefix(encoded, "$2"))

	assert.True(t, h.Verify("1234", encoded))
	assert.False(t, h.Verify("wrong", encoded))
}

func TestBcryptHasherSaltsEveryHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("secret")
	assert.NoError(t, err)
	b, err := h.Hash("secret")
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("secret", a))
	assert.True(t, h.Verify("secret", b))
}

func TestBcryptHasherMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.DefaultCost)
	assert.False(t, h.Verify("secret", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("secret", ""))
}

func TestNewBcryptHasherCostFloor(t *testing.T) {
	h := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewBcryptHasher(12)
	assert.Equal(t, 12, h.cost)
}
