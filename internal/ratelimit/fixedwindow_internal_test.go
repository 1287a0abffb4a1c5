package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	current := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	limiter := New(3, 15*time.Minute)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow("1.2.3.4"), "request %d should be allowed", i+1)
	}
	require.False(t, limiter.Allow("1.2.3.4"), "request over the limit should be denied")

	// Another key has its own window.
	require.True(t, limiter.Allow("5.6.7.8"))

	// Just before the window expires the key is still blocked.
	current = current.Add(15*time.Minute - time.Second)
	require.False(t, limiter.Allow("1.2.3.4"))

	// A new window grants a fresh allowance with no carry-over.
	current = current.Add(time.Second)
	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow("1.2.3.4"))
	}
	require.False(t, limiter.Allow("1.2.3.4"))
}

func TestLimiter_Prune(t *testing.T) {
	t.Parallel()

	current := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	limiter := New(100, 15*time.Minute)
	limiter.now = func() time.Time { return current }

	require.True(t, limiter.Allow("1.2.3.4"))
	require.True(t, limiter.Allow("5.6.7.8"))
	require.Len(t, limiter.windows, 2)

	current = current.Add(16 * time.Minute)
	limiter.Prune()
	require.Empty(t, limiter.windows)
}
