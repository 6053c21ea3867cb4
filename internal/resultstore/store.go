// Package resultstore holds recently generated images so the UI can ask for
// an Image-as-a-Judge evaluation by result id instead of re-uploading bytes.
//
// This is not a cache of upstream calls: identical queries still hit the
// model endpoints independently. Entries only exist to make results
// addressable for scoring, and they expire.
package resultstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 256
	DefaultTTL  = 30 * time.Minute
)

// Entry is one stored generated image.
type Entry struct {
	ID         string
	Prompt     string
	ImageBytes []byte
	ImageType  string
	ModelUsed  string
	Action     string
	CreatedAt  time.Time
}

// Store is a TTL-bounded LRU of generated results. Safe for concurrent use.
type Store struct {
	cache *expirable.LRU[string, Entry]
}

// New creates a store. Non-positive size or ttl fall back to the defaults.
func New(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, Entry](size, nil, ttl),
	}
}

// Put stores the entry and returns its id, assigning one when empty.
func (s *Store) Put(e Entry) string {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.cache.Add(e.ID, e)
	return e.ID
}

// Get returns the entry for id, or false when unknown or expired.
func (s *Store) Get(id string) (Entry, bool) {
	return s.cache.Get(id)
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	return s.cache.Len()
}
