// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger"
)

// commitRetries bounds how many times a transaction is retried after a
// badger.ErrConflict before the caller's operation gives up. Badger's
// optimistic transactions abort on write-write conflict rather than
// blocking, so a short retry loop absorbs the rare case where two callers
// race on the same id.
const commitRetries = 3

// badgerStore is the Badger-backed implementation of [Store].
type badgerStore struct {
	db *badger.DB
}

// New opens (creating if necessary) a Badger database rooted at dir and
// returns a [Store] backed by it.
func New(dir string) (Store, error) {
	opts := badger.DefaultOptions(dir)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger at %q: %w", dir, err)
	}

	return &badgerStore{db: db}, nil
}

// PutIfAbsent implements [Store].
func (s *badgerStore) PutIfAbsent(_ context.Context, id string, data []byte) error {
	key := []byte(id)

	return retryOnConflict(func() error {
		return s.db.Update(func(txn *badger.Txn) error {
			_, err := txn.Get(key)
			switch {
			case err == nil:
				return ErrCollision
			case errors.Is(err, badger.ErrKeyNotFound):
				return txn.Set(key, data)
			default:
				return err
			}
		})
	})
}

// Get implements [Store].
func (s *badgerStore) Get(_ context.Context, id string) ([]byte, error) {
	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})

	return data, err
}

// Take implements [Store] via an explicit read-then-delete transaction,
// giving at-most-once delivery under concurrent callers for the same id.
func (s *badgerStore) Take(_ context.Context, id string) ([]byte, error) {
	key := []byte(id)
	var data []byte

	err := retryOnConflict(func() error {
		data = nil
		return s.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}

			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			if err := txn.Delete(key); err != nil {
				return err
			}

			data = val
			return nil
		})
	})

	return data, err
}

// Delete implements [Store]. Deleting an absent key is not an error.
func (s *badgerStore) Delete(_ context.Context, id string) error {
	return retryOnConflict(func() error {
		return s.db.Update(func(txn *badger.Txn) error {
			return txn.Delete([]byte(id))
		})
	})
}

// Scan implements [Store]. The iteration holds a single read transaction
// for its whole duration, so it observes a point-in-time snapshot, but
// makes no attempt to detect or retry around concurrent writers — callers
// such as the reaper are expected to tolerate staleness.
func (s *badgerStore) Scan(ctx context.Context, fn func(id string, data []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			item := it.Item()
			key := string(item.KeyCopy(nil))
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			if err := fn(key, value); err != nil {
				return err
			}
		}

		return nil
	})
}

// Flush implements [Store].
func (s *badgerStore) Flush() error {
	return s.db.Sync()
}

// Close implements [Store].
func (s *badgerStore) Close() error {
	return s.db.Close()
}

// retryOnConflict runs op up to commitRetries times, retrying only when op
// fails with badger.ErrConflict (an optimistic-transaction write-write
// race). Any other error, including the store's own sentinel errors,
// returns immediately.
func retryOnConflict(op func() error) error {
	var err error
	for attempt := 0; attempt < commitRetries; attempt++ {
		err = op()
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}
