package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousEmail(t *testing.T) {
	email, err := AnonymousEmail()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(email, "anonymous_"))
	assert.True(t, strings.HasSuffix(email, "@equilearn.org"))

	suffix := strings.TrimSuffix(strings.TrimPrefix(email, "anonymous_"), "@equilearn.org")
	assert.Len(t, suffix, 12)
	for _, r := range suffix {
		assert.True(t, r >= '0' && r <= '9')
	}

	// Two mints must not collide.
	other, err := AnonymousEmail()
	require.NoError(t, err)
	assert.NotEqual(t, email, other)
}

func TestDonorKey(t *testing.T) {
	assert.Equal(t, "0", DonorKey(0))
	assert.Equal(t, "12345", DonorKey(12345))
}
