package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/champdex/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var bucketFlags = []byte("flags")

// FlagStore implements domain.FlagStore using BoltDB.
type FlagStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string]string
}

var _ domain.FlagStore = (*FlagStore)(nil)

// Open opens (or creates) the flag database at path.
// An empty path gives a memory-only store that forgets everything on exit.
func Open(path string) (*FlagStore, error) {
	if path == "" {
		return &FlagStore{cache: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open bolt db: %v", domain.ErrPersistence, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFlags)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return &FlagStore{db: db, cache: make(map[string]string)}, nil
}

func (s *FlagStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *FlagStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return v, true, nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return "", false, nil
	}

	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFlags)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			// v is only valid inside the transaction
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: read %q: %v", domain.ErrPersistence, key, err)
	}
	if !found {
		return "", false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return value, true, nil
}

func (s *FlagStore) Set(key, value string) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketFlags).Put([]byte(key), []byte(value))
		})
		if err != nil {
			return fmt.Errorf("%w: write %q: %v", domain.ErrPersistence, key, err)
		}
	}

	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()
	return nil
}

func (s *FlagStore) Remove(key string) error {
	// Clear from memory cache first so a failed delete never serves a stale value
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFlags).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: delete %q: %v", domain.ErrPersistence, key, err)
	}
	return nil
}
