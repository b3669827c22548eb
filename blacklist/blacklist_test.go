package blacklist

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAddAndHas(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	has, err := store.Has(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.Add(ctx, "token-a"))

	has, err = store.Has(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = store.Has(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemoryStoreAddIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "token"))
	require.NoError(t, store.Add(ctx, "token"))

	has, err := store.Has(ctx, "token")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Add(ctx, "shared-token")
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Has(ctx, "shared-token")
		}()
	}
	wg.Wait()

	has, err := store.Has(ctx, "shared-token")
	require.NoError(t, err)
	assert.True(t, has)
}
