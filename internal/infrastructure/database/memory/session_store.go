// internal/infrastructure/database/memory/session_store.go
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/your-org/storefront-cart/internal/domain/cart"
)

type record struct {
	value     []byte
	expiresAt time.Time
}

// SessionStore keeps session carts and fulfillment selections in process memory.
// Entries expire after the configured TTL, refreshed on every access.
type SessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	carts   map[string]record
	methods map[string]record
}

// NewSessionStore creates an empty in-memory session store
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:     ttl,
		now:     time.Now,
		carts:   make(map[string]record),
		methods: make(map[string]record),
	}
}

// Load returns the cart blob saved for sessionID
func (s *SessionStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	value, ok := s.get(s.carts, sessionID)
	if !ok {
		return nil, cart.ErrNotFound
	}
	return value, nil
}

// Save stores the cart blob for sessionID
func (s *SessionStore) Save(ctx context.Context, sessionID string, blob []byte) error {
	s.put(s.carts, sessionID, blob)
	return nil
}

// LoadMethod returns the fulfillment method selected in sessionID
func (s *SessionStore) LoadMethod(ctx context.Context, sessionID string) (string, error) {
	value, ok := s.get(s.methods, sessionID)
	if !ok {
		return "", cart.ErrNotFound
	}
	return string(value), nil
}

// SaveMethod records the fulfillment method selected in sessionID
func (s *SessionStore) SaveMethod(ctx context.Context, sessionID, method string) error {
	s.put(s.methods, sessionID, []byte(method))
	return nil
}

func (s *SessionStore) get(bucket map[string]record, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := bucket[key]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.After(rec.expiresAt) {
		delete(bucket, key)
		return nil, false
	}

	rec.expiresAt = now.Add(s.ttl)
	bucket[key] = rec

	out := make([]byte, len(rec.value))
	copy(out, rec.value)
	return out, true
}

func (s *SessionStore) put(bucket map[string]record, key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	bucket[key] = record{value: stored, expiresAt: s.now().Add(s.ttl)}
}
