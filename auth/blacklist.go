package auth

import (
	"sync"
	"time"
)

// RevocationSet holds tokens that were explicitly invalidated via logout.
// A token present in the set is rejected by Validate regardless of its
// embedded expiry. Implementations must be safe for concurrent use.
type RevocationSet interface {
	Add(token string, expiresAt time.Time) error
	Contains(token string) (bool, error)
}

// Blacklist is the default in-memory revocation set. It lives for the
// lifetime of the process: a restart clears it and previously revoked
// tokens become valid again until they expire. Deployments that cannot
// tolerate that use the Badger-backed set instead.
type Blacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewBlacklist() *Blacklist {
	return &Blacklist{revoked: make(map[string]time.Time)}
}

// Add marks the exact token string revoked. Adding the same token twice is
// a no-op.
func (b *Blacklist) Add(token string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.revoked[token] = expiresAt

	// Opportunistic sweep: entries whose embedded expiry has passed would be
	// rejected by the expiry check anyway, so dropping them only bounds the
	// map's growth.
	now := time.Now()
	for t, exp := range b.revoked {
		if !exp.IsZero() && exp.Before(now) {
			delete(b.revoked, t)
		}
	}
	return nil
}

func (b *Blacklist) Contains(token string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.revoked[token]
	return ok, nil
}
