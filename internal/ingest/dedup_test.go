package ingest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdaprod/hydrate/internal/ingest"
)

func TestDuplicateChecker_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("Exact Match", func(t *testing.T) {
		store := newMemStore()
		seedBucket(t, store)
		require.NoError(t, store.Put(ctx, testBucket, "example.com.txt", []byte("text")))

		c := ingest.NewDuplicateChecker(store)
		exists, err := c.Exists(ctx, testBucket, "example.com.txt")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Prefix Match Is Not A Duplicate", func(t *testing.T) {
		store := newMemStore()
		seedBucket(t, store)
		require.NoError(t, store.Put(ctx, testBucket, "example.com.txt.txt", []byte("text")))

		c := ingest.NewDuplicateChecker(store)
		exists, err := c.Exists(ctx, testBucket, "example.com.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Empty Bucket", func(t *testing.T) {
		store := newMemStore()
		seedBucket(t, store)

		c := ingest.NewDuplicateChecker(store)
		exists, err := c.Exists(ctx, testBucket, "example.com.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Listing Error", func(t *testing.T) {
		store := newMemStore()
		seedBucket(t, store)
		store.listErr = errors.New("listing unavailable")

		c := ingest.NewDuplicateChecker(store)
		_, err := c.Exists(ctx, testBucket, "example.com.txt")
		assert.Error(t, err)
	})
}
