package registration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePasswordLength(t *testing.T) {
	pw, err := GeneratePassword(16)
	require.NoError(t, err)
	assert.Len(t, pw, 16)
}

func TestGeneratePasswordEnforcesMinimum(t *testing.T) {
	for _, length := range []int{0, 1, 8, 11} {
		pw, err := GeneratePassword(length)
		require.NoError(t, err)
		assert.Len(t, pw, MinPasswordLength)
	}
}

func TestGeneratePasswordAlphabet(t *testing.T) {
	pw, err := GeneratePassword(64)
	require.NoError(t, err)

	for _, ch := range pw {
		assert.True(t, strings.ContainsRune(passwordAlphabet, ch), "unexpected character %q", ch)
	}
}

func TestGeneratePasswordVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		pw, err := GeneratePassword(MinPasswordLength)
		require.NoError(t, err)
		seen[pw] = true
	}
	assert.Greater(t, len(seen), 1)
}
