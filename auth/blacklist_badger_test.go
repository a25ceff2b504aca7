package auth

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestBadgerBlacklist(t *testing.T) *BadgerBlacklist {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewBadgerBlacklist(db)
}

func TestBadgerBlacklist(t *testing.T) {
	t.Run("should contain an added token", func(t *testing.T) {
		req := require.New(t)
		b := newTestBadgerBlacklist(t)

		req.NoError(b.Add("token-1", time.Now().Add(time.Hour)))

		found, err := b.Contains("token-1")
		req.NoError(err)
		req.True(found)
	})

	t.Run("should not contain a token that was never added", func(t *testing.T) {
		req := require.New(t)
		b := newTestBadgerBlacklist(t)

		found, err := b.Contains("unknown")
		req.NoError(err)
		req.False(found)
	})

	t.Run("should be idempotent across repeated adds", func(t *testing.T) {
		req := require.New(t)
		b := newTestBadgerBlacklist(t)

		req.NoError(b.Add("token-1", time.Now().Add(time.Hour)))
		req.NoError(b.Add("token-1", time.Now().Add(time.Hour)))

		found, err := b.Contains("token-1")
		req.NoError(err)
		req.True(found)
	})

	t.Run("should keep a token with no known expiry forever", func(t *testing.T) {
		req := require.New(t)
		b := newTestBadgerBlacklist(t)

		// A token that did not even parse is revoked without a TTL.
		req.NoError(b.Add("unparsable", time.Time{}))

		found, err := b.Contains("unparsable")
		req.NoError(err)
		req.True(found)
	})

	t.Run("should let an entry lapse once its TTL has elapsed", func(t *testing.T) {
		req := require.New(t)
		b := newTestBadgerBlacklist(t)

		req.NoError(b.Add("short-lived", time.Now().Add(time.Millisecond)))

		// Badger tracks expiry at one-second granularity.
		req.Eventually(func() bool {
			found, err := b.Contains("short-lived")
			return err == nil && !found
		}, 3*time.Second, 100*time.Millisecond)
	})
}
