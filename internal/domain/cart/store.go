// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// Storage persists the serialized cart of one browsing session
type Storage interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, blob []byte) error
}

// Store owns the cart of a single session. All reads and writes of entries go
// through it so that names stay unique and quantities stay positive.
type Store struct {
	sessionID string
	storage   Storage
	logger    logrus.FieldLogger
	entries   []Entry
}

// Load reads the persisted cart for sessionID. It never fails: a missing,
// malformed or unreachable cart yields an empty store.
func Load(ctx context.Context, storage Storage, sessionID string, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Store{
		sessionID: sessionID,
		storage:   storage,
		logger:    logger.WithField("session_id", sessionID),
		entries:   []Entry{},
	}

	blob, err := storage.Load(ctx, sessionID)
	if errors.Is(err, ErrNotFound) {
		return s
	}
	if err != nil {
		s.logger.WithError(err).Warn("Session cart unavailable, starting empty")
		return s
	}

	entries, err := Decode(blob)
	if err != nil {
		s.logger.WithError(err).Warn("Discarding corrupt session cart")
		return s
	}

	s.entries = entries
	return s
}

// SessionID returns the session the store belongs to
func (s *Store) SessionID() string {
	return s.sessionID
}

// Add puts one unit of a product in the cart. A product already in the cart
// has its quantity incremented, up to MaxQuantity, and keeps the price it was
// first added at.
func (s *Store) Add(ctx context.Context, name, priceInput, image string) error {
	if name == "" {
		return ErrInvalidName
	}
	if _, err := ParsePrice(priceInput); err != nil {
		return err
	}

	if i := s.indexOf(name); i >= 0 {
		s.entries[i].Quantity = clampQuantity(s.entries[i].Quantity + 1)
	} else {
		s.entries = append(s.entries, Entry{
			Name:     name,
			Price:    strings.TrimSpace(priceInput),
			Quantity: 1,
			Image:    image,
		})
	}

	s.persist(ctx)
	return nil
}

// SetQuantity replaces the quantity of an entry. A quantity below 1 removes it
// and one above MaxQuantity is capped. Unknown names are ignored.
func (s *Store) SetQuantity(ctx context.Context, name string, quantity int) {
	i := s.indexOf(name)
	if i < 0 {
		return
	}

	if quantity < 1 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	} else {
		s.entries[i].Quantity = clampQuantity(quantity)
	}

	s.persist(ctx)
}

// SetQuantityInput applies a raw quantity edit. Input that is not a positive
// whole number removes the entry.
func (s *Store) SetQuantityInput(ctx context.Context, name, raw string) {
	s.SetQuantity(ctx, name, parseQuantity(raw))
}

// Remove deletes an entry if present
func (s *Store) Remove(ctx context.Context, name string) {
	if i := s.indexOf(name); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
	s.persist(ctx)
}

// Clear empties the cart and persists the empty state
func (s *Store) Clear(ctx context.Context) {
	s.entries = []Entry{}
	s.persist(ctx)
}

// Entries returns a copy of the entries in insertion order
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry for name
func (s *Store) Get(name string) (Entry, bool) {
	if i := s.indexOf(name); i >= 0 {
		return s.entries[i], true
	}
	return Entry{}, false
}

// ItemCount returns the sum of all quantities
func (s *Store) ItemCount() int {
	return ItemCount(s.entries)
}

// IsEmpty reports whether the cart holds no items
func (s *Store) IsEmpty() bool {
	return len(s.entries) == 0
}

// ItemCount sums the quantities of entries, ignoring non-positive ones
func ItemCount(entries []Entry) int {
	total := 0
	for _, e := range entries {
		if e.Quantity > 0 {
			total += e.Quantity
		}
	}
	return total
}

func (s *Store) indexOf(name string) int {
	for i := range s.entries {
		if s.entries[i].Name == name {
			return i
		}
	}
	return -1
}

// persist writes the whole cart. Failures are logged and otherwise ignored;
// the in-memory cart stays authoritative for the caller.
func (s *Store) persist(ctx context.Context) {
	blob, err := Marshal(s.entries)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode session cart")
		return
	}

	if err := s.storage.Save(ctx, s.sessionID, blob); err != nil {
		s.logger.WithError(err).Warn("Failed to persist session cart")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"entries":    len(s.entries),
		"item_count": s.ItemCount(),
	}).Debug("Session cart saved")
}
