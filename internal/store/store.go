package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/elegance/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// CartKey is the fixed key the cart is persisted under
const CartKey = "elegance-cart"

// Bucket names
var (
	bucketCart = []byte("cart")
)

// CartStore implements domain.CartStore using BoltDB.
type CartStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory copy

	// Last written value; the only copy in memory-only mode
	cache map[string][]byte
}

// NewCartStore opens (or creates) the BoltDB file at path.
// An empty path selects memory-only mode.
func NewCartStore(path string) (*CartStore, error) {
	if path == "" {
		// Memory-only mode (no persistence)
		return &CartStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCart)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CartStore{db: db, cache: make(map[string][]byte)}, nil
}

// Close releases the database file
func (s *CartStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CartStore) getRaw(bucket []byte, key string) []byte {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return data
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data
}

func (s *CartStore) setRaw(bucket []byte, key string, data []byte) error {
	cacheKey := string(bucket) + ":" + key

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucket).Put([]byte(key), data)
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()
	return nil
}

func (s *CartStore) delete(bucket []byte, key string) error {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// === Cart ===

// Load returns the persisted line items. A missing key yields an empty
// cart; undecodable data yields an empty cart and a wrapped ErrCorruptCart.
func (s *CartStore) Load() ([]domain.LineItem, error) {
	data := s.getRaw(bucketCart, CartKey)
	if data == nil {
		return []domain.LineItem{}, nil
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []domain.LineItem{}, fmt.Errorf("%w: %v", domain.ErrCorruptCart, err)
	}
	if items == nil {
		// "null" decodes without error
		items = []domain.LineItem{}
	}
	return items, nil
}

// Save overwrites the persisted cart with items
func (s *CartStore) Save(items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if err := s.setRaw(bucketCart, CartKey, data); err != nil {
		return fmt.Errorf("failed to write cart: %w", err)
	}
	return nil
}

// Reset deletes the persisted cart entry
func (s *CartStore) Reset() error {
	if err := s.delete(bucketCart, CartKey); err != nil {
		return fmt.Errorf("failed to reset cart: %w", err)
	}
	return nil
}

// Raw returns the persisted bytes for the cart key (nil if absent)
func (s *CartStore) Raw() []byte {
	return s.getRaw(bucketCart, CartKey)
}

// WriteRaw stores data under the cart key without validation.
// Used to seed or repair a store from an exported cart.
func (s *CartStore) WriteRaw(data []byte) error {
	return s.setRaw(bucketCart, CartKey, data)
}
