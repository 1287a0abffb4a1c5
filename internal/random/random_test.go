package random_test

import (
	"ipdetective/internal/random"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLetters(t *testing.T) {
	s, err := random.Letters(20)
	require.NoError(t, err)
	require.Len(t, s, 20)

	for _, r := range s {
		isLower := r >= 'a' && r <= 'z'
		isUpper := r >= 'A' && r <= 'Z'
		require.True(t, isLower || isUpper, "unexpected rune %q", r)
	}

	empty, err := random.Letters(0)
	require.NoError(t, err)
	require.Empty(t, empty)

	// Two draws of this length colliding would indicate a broken generator.
	other, err := random.Letters(20)
	require.NoError(t, err)
	require.NotEqual(t, s, other)
}
