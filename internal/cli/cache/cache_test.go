package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTripAndLazyExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "categories", []byte(`[1,2]`), Short))
	b, ok, err := m.Get(ctx, "categories")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[1,2]`), b)

	now = now.Add(Short)
	_, ok, err = m.Get(ctx, "categories")
	require.NoError(t, err)
	assert.False(t, ok, "entry at its ttl must not be returned")
	assert.Equal(t, 0, m.Len(), "expired entry is removed on read")
}

func TestMemory_InvalidateAndClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for _, k := range []string{"resources:a", "resources:b", "resource:x", "categories"} {
		require.NoError(t, m.Set(ctx, k, []byte("v"), Medium))
	}
	n, err := m.Invalidate(ctx, "resources:")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, ok, _ := m.Get(ctx, "resource:x")
	assert.True(t, ok)

	require.NoError(t, m.Clear(ctx))
	assert.Equal(t, 0, m.Len())
	assert.ErrorIs(t, m.Set(ctx, "k", nil, 0), ErrInvalidTTL)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	v := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", v, Short))
	v[0] = 'z'
	got, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	type item struct {
		ID   string `json:"id"`
		Tags []string
	}
	require.NoError(t, SetJSON(ctx, m, "item", item{ID: "r1", Tags: []string{"a"}}, Long))
	got, ok, err := GetJSON[item](ctx, m, "item")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, item{ID: "r1", Tags: []string{"a"}}, got)

	require.NoError(t, m.Set(ctx, "broken", []byte("{"), Long))
	_, ok, err = GetJSON[item](ctx, m, "broken")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len(), "undecodable entry is dropped")
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `rentco:cache:resources:\*\?\[x\]`, escapeGlob("rentco:cache:resources:*?[x]"))
	assert.Equal(t, "plain", escapeGlob("plain"))
}
