package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedis_Contract runs against a real server when REDIS_TEST_URL is set.
func TestRedis_Contract(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	ctx := context.Background()
	r, err := OpenRedis(ctx, url)
	require.NoError(t, err)
	defer r.Close()
	r.namespace = "rentco:test:" + uuid.NewString() + ":"
	defer func() { _ = r.Clear(ctx) }()

	require.NoError(t, r.Set(ctx, "resources:a", []byte("1"), Short))
	require.NoError(t, r.Set(ctx, "resources:b", []byte("2"), Short))
	require.NoError(t, r.Set(ctx, "me", []byte("3"), 50*time.Millisecond))

	b, ok, err := r.Get(ctx, "resources:a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", string(b))

	n, err := r.Invalidate(ctx, "resources:")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	time.Sleep(100 * time.Millisecond)
	_, ok, err = r.Get(ctx, "me")
	require.NoError(t, err)
	assert.False(t, ok)
}
