package auth

import (
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const revokedKeyPrefix = "revoked:"

// BadgerBlacklist is a durable revocation set backed by BadgerDB, for
// deployments where logged-out tokens must stay invalid across restarts.
// Entries carry a TTL equal to the token's remaining lifetime so the store
// compacts itself.
type BadgerBlacklist struct {
	db *badger.DB
}

func NewBadgerBlacklist(db *badger.DB) *BadgerBlacklist {
	return &BadgerBlacklist{db: db}
}

func (b *BadgerBlacklist) Add(token string, expiresAt time.Time) error {
	return b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(revokedKeyPrefix+token), []byte{1})
		if ttl := time.Until(expiresAt); ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
}

func (b *BadgerBlacklist) Contains(token string) (bool, error) {
	var found bool
	err := b.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(revokedKeyPrefix + token))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}
