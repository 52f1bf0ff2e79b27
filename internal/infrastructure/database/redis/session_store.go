// internal/infrastructure/database/redis/session_store.go
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-cart/internal/domain/cart"
)

const (
	cartKeyPrefix   = "cart:session:"
	methodKeyPrefix = "checkout:method:"
)

// SessionStore keeps one cart blob and one fulfillment selection per browsing
// session. Keys expire after ttl and every read slides the expiry forward.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis backed session store
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
	}
}

// Load returns the cart blob saved for sessionID
func (s *SessionStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := s.get(ctx, cartKey(sessionID))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save stores the cart blob for sessionID
func (s *SessionStore) Save(ctx context.Context, sessionID string, blob []byte) error {
	if err := s.client.Set(ctx, cartKey(sessionID), blob, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session cart: %w", err)
	}
	return nil
}

// LoadMethod returns the fulfillment method selected in sessionID
func (s *SessionStore) LoadMethod(ctx context.Context, sessionID string) (string, error) {
	data, err := s.get(ctx, methodKey(sessionID))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveMethod records the fulfillment method selected in sessionID
func (s *SessionStore) SaveMethod(ctx context.Context, sessionID, method string) error {
	if err := s.client.Set(ctx, methodKey(sessionID), method, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save fulfillment method: %w", err)
	}
	return nil
}

func (s *SessionStore) get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cart.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	// Sliding expiry; a failure here only shortens the session
	s.client.Expire(ctx, key, s.ttl)

	return data, nil
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func methodKey(sessionID string) string {
	return methodKeyPrefix + sessionID
}
