package auth

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBlacklist(t *testing.T) {
	t.Run("should contain an added token", func(t *testing.T) {
		req := require.New(t)
		b := NewBlacklist()

		req.NoError(b.Add("token-1", time.Now().Add(time.Hour)))

		found, err := b.Contains("token-1")
		req.NoError(err)
		req.True(found)
	})

	t.Run("should not contain a token that was never added", func(t *testing.T) {
		req := require.New(t)
		b := NewBlacklist()

		found, err := b.Contains("unknown")
		req.NoError(err)
		req.False(found)
	})

	t.Run("should be safe under concurrent add and lookup", func(t *testing.T) {
		req := require.New(t)
		b := NewBlacklist()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			token := fmt.Sprintf("token-%d", i)
			go func() {
				defer wg.Done()
				_ = b.Add(token, time.Now().Add(time.Hour))
			}()
			go func() {
				defer wg.Done()
				_, _ = b.Contains(token)
			}()
		}
		wg.Wait()

		// Every added token must be visible once all writers finish.
		for i := 0; i < 50; i++ {
			found, err := b.Contains(fmt.Sprintf("token-%d", i))
			req.NoError(err)
			req.True(found)
		}
	})

	t.Run("should sweep entries whose expiry has passed", func(t *testing.T) {
		req := require.New(t)
		b := NewBlacklist()

		req.NoError(b.Add("stale", time.Now().Add(-time.Minute)))
		req.NoError(b.Add("fresh", time.Now().Add(time.Hour)))

		found, err := b.Contains("stale")
		req.NoError(err)
		req.False(found)

		found, err = b.Contains("fresh")
		req.NoError(err)
		req.True(found)
	})
}
