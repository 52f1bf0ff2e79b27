package cart_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-cart/internal/domain/cart"
	"github.com/your-org/storefront-cart/internal/infrastructure/database/memory"
)

type mockStorage struct {
	loadFunc func(ctx context.Context, sessionID string) ([]byte, error)
	saveFunc func(ctx context.Context, sessionID string, blob []byte) error
}

func (m *mockStorage) Load(ctx context.Context, sessionID string) ([]byte, error) {
	return m.loadFunc(ctx, sessionID)
}

func (m *mockStorage) Save(ctx context.Context, sessionID string, blob []byte) error {
	return m.saveFunc(ctx, sessionID, blob)
}

func newStore(t *testing.T) (*cart.Store, *memory.SessionStore) {
	t.Helper()
	storage := memory.NewSessionStore(time.Hour)
	logger, _ := test.NewNullLogger()
	return cart.Load(context.Background(), storage, "session-1", logger), storage
}

func TestStore_AddSameNameIncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Add(ctx, "Soap", "25.50", "images/soap.png"))
	require.NoError(t, store.Add(ctx, "Soap", "25.50", "images/soap.png"))

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Soap", entries[0].Name)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, "51.00", entries[0].LineTotal().StringFixed(2))
	assert.Equal(t, 2, store.ItemCount())
}

func TestStore_AddKeepsNamesUnique(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	names := []string{"Soap", "Rice", "Soap", "soap", "Rice", "Soap", "Bleach"}
	for _, name := range names {
		require.NoError(t, store.Add(ctx, name, "10", ""))
	}

	seen := map[string]int{}
	for _, e := range store.Entries() {
		seen[e.Name]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "duplicate entry for %q", name)
	}

	soap, ok := store.Get("Soap")
	require.True(t, ok)
	assert.Equal(t, 3, soap.Quantity)

	lower, ok := store.Get("soap")
	require.True(t, ok, "names are case-sensitive")
	assert.Equal(t, 1, lower.Quantity)

	assert.Equal(t, []string{"Soap", "Rice", "soap", "Bleach"}, entryNames(store.Entries()))
	assert.Equal(t, len(names), store.ItemCount())
}

func TestStore_AddKeepsFirstPrice(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Add(ctx, "Soap", " 25.50 ", ""))
	require.NoError(t, store.Add(ctx, "Soap", "99", ""))

	soap, _ := store.Get("Soap")
	assert.Equal(t, "25.50", soap.Price)
	assert.Equal(t, 2, soap.Quantity)
}

func TestStore_AddInvalidPrice(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		price string
	}{
		{name: "letters", price: "abc"},
		{name: "empty", price: ""},
		{name: "blank", price: "   "},
		{name: "negative", price: "-1.00"},
		{name: "nan", price: "NaN"},
		{name: "infinity", price: "Infinity"},
		{name: "trailing_garbage", price: "25.50php"},
		{name: "huge_exponent", price: "1e2000000000"},
		{name: "tiny_exponent", price: "1e-2000000000"},
		{name: "above_max", price: "1000000000.01"},
		{name: "too_many_places", price: "0.00000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, storage := newStore(t)
			require.NoError(t, store.Add(ctx, "Rice", "40", ""))
			before := store.Entries()
			blobBefore, err := storage.Load(ctx, "session-1")
			require.NoError(t, err)

			err = store.Add(ctx, "Soap", tt.price, "")
			assert.ErrorIs(t, err, cart.ErrInvalidPrice)

			err = store.Add(ctx, "Rice", tt.price, "")
			assert.ErrorIs(t, err, cart.ErrInvalidPrice)

			assert.Equal(t, before, store.Entries())
			blobAfter, err := storage.Load(ctx, "session-1")
			require.NoError(t, err)
			assert.Equal(t, blobBefore, blobAfter)
		})
	}
}

func TestStore_AddRequiresName(t *testing.T) {
	store, _ := newStore(t)

	err := store.Add(context.Background(), "", "10", "")
	assert.ErrorIs(t, err, cart.ErrInvalidName)
	assert.True(t, store.IsEmpty())
}

func TestStore_AddAcceptsZeroPrice(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Add(context.Background(), "Free Sample", "0", ""))
	assert.Equal(t, 1, store.ItemCount())
}

func TestStore_SetQuantity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		quantity  int
		wantFound bool
		wantQty   int
	}{
		{name: "replace", quantity: 5, wantFound: true, wantQty: 5},
		{name: "one", quantity: 1, wantFound: true, wantQty: 1},
		{name: "zero_removes", quantity: 0},
		{name: "negative_removes", quantity: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newStore(t)
			require.NoError(t, store.Add(ctx, "Soap", "25.50", ""))
			require.NoError(t, store.Add(ctx, "Rice", "40", ""))

			store.SetQuantity(ctx, "Soap", tt.quantity)

			soap, found := store.Get("Soap")
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantQty, soap.Quantity)
			}
			for _, e := range store.Entries() {
				assert.GreaterOrEqual(t, e.Quantity, 1)
			}
			_, riceFound := store.Get("Rice")
			assert.True(t, riceFound)
		})
	}
}

func TestStore_SetQuantityInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		raw       string
		wantFound bool
		wantQty   int
	}{
		{raw: "3", wantFound: true, wantQty: 3},
		{raw: " 7 ", wantFound: true, wantQty: 7},
		{raw: "2.9", wantFound: true, wantQty: 2},
		{raw: "0"},
		{raw: "-4"},
		{raw: "abc"},
		{raw: ""},
		{raw: "0.5"},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.raw, func(t *testing.T) {
			store, _ := newStore(t)
			require.NoError(t, store.Add(ctx, "Soap", "25.50", ""))

			store.SetQuantityInput(ctx, "Soap", tt.raw)

			soap, found := store.Get("Soap")
			assert.Equal(t, tt.wantFound, found)
			if found {
				assert.Equal(t, tt.wantQty, soap.Quantity)
			}
		})
	}
}

func TestStore_QuantityIsCapped(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		edit func(store *cart.Store)
	}{
		{name: "max_int64_input", edit: func(s *cart.Store) { s.SetQuantityInput(ctx, "Soap", "9223372036854775807") }},
		{name: "overflowing_input", edit: func(s *cart.Store) { s.SetQuantityInput(ctx, "Soap", "99999999999999999999") }},
		{name: "huge_fraction_input", edit: func(s *cart.Store) { s.SetQuantityInput(ctx, "Soap", "1e300") }},
		{name: "huge_int", edit: func(s *cart.Store) { s.SetQuantity(ctx, "Soap", int(^uint(0)>>1)) }},
		{name: "just_above_max", edit: func(s *cart.Store) { s.SetQuantity(ctx, "Soap", cart.MaxQuantity+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, storage := newStore(t)
			require.NoError(t, store.Add(ctx, "Soap", "25.50", ""))
			require.NoError(t, store.Add(ctx, "Rice", "40", ""))
			store.SetQuantity(ctx, "Rice", 5)

			tt.edit(store)

			soap, ok := store.Get("Soap")
			require.True(t, ok)
			assert.Equal(t, cart.MaxQuantity, soap.Quantity)

			require.NoError(t, store.Add(ctx, "Soap", "25.50", ""))
			soap, _ = store.Get("Soap")
			assert.Equal(t, cart.MaxQuantity, soap.Quantity, "adding at the cap keeps the cap")

			assert.Equal(t, cart.MaxQuantity+5, store.ItemCount())
			assert.False(t, store.IsEmpty())

			reloaded := cart.Load(ctx, storage, "session-1", nil)
			assert.Equal(t, store.Entries(), reloaded.Entries())
		})
	}
}

func TestStore_SetQuantityUnknownNameIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	require.NoError(t, store.Add(ctx, "Soap", "25.50", ""))

	store.SetQuantity(ctx, "Rice", 4)

	assert.Equal(t, []string{"Soap"}, entryNames(store.Entries()))
	assert.Equal(t, 1, store.ItemCount())
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	store, storage := newStore(t)
	require.NoError(t, store.Add(ctx, "Soap", "25.50", ""))
	require.NoError(t, store.Add(ctx, "Rice", "40", ""))

	store.Remove(ctx, "Soap")
	assert.Equal(t, []string{"Rice"}, entryNames(store.Entries()))

	store.Remove(ctx, "Soap")
	assert.Equal(t, []string{"Rice"}, entryNames(store.Entries()))

	reloaded := cart.Load(ctx, storage, "session-1", nil)
	assert.Equal(t, store.Entries(), reloaded.Entries())
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, storage := newStore(t)
	require.NoError(t, store.Add(ctx, "Soap", "25.50", ""))

	store.Clear(ctx)
	once, err := storage.Load(ctx, "session-1")
	require.NoError(t, err)

	store.Clear(ctx)
	twice, err := storage.Load(ctx, "session-1")
	require.NoError(t, err)

	assert.Equal(t, `[]`, string(once))
	assert.Equal(t, once, twice)
	assert.True(t, store.IsEmpty())
	assert.Equal(t, 0, store.ItemCount())
}

func TestStore_EntriesReturnsCopy(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Add(context.Background(), "Soap", "25.50", ""))

	entries := store.Entries()
	entries[0].Quantity = 0

	soap, _ := store.Get("Soap")
	assert.Equal(t, 1, soap.Quantity)
}

func TestLoad_PersistedRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, storage := newStore(t)
	require.NoError(t, store.Add(ctx, "Soap", "25.50", "soap.png"))
	require.NoError(t, store.Add(ctx, "Rice", "40", "rice.png"))
	require.NoError(t, store.Add(ctx, "Bleach", "89.75", "bleach.png"))
	store.SetQuantity(ctx, "Rice", 3)

	reloaded := cart.Load(ctx, storage, "session-1", nil)

	assert.Equal(t, store.Entries(), reloaded.Entries())
}

func TestLoad_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		load func(ctx context.Context, sessionID string) ([]byte, error)
	}{
		{
			name: "missing",
			load: func(ctx context.Context, sessionID string) ([]byte, error) { return nil, cart.ErrNotFound },
		},
		{
			name: "storage_down",
			load: func(ctx context.Context, sessionID string) ([]byte, error) {
				return nil, errors.New("connection refused")
			},
		},
		{
			name: "corrupt_json",
			load: func(ctx context.Context, sessionID string) ([]byte, error) { return []byte(`{"name":`), nil },
		},
		{
			name: "not_a_list",
			load: func(ctx context.Context, sessionID string) ([]byte, error) { return []byte(`{"name":"Soap"}`), nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &mockStorage{
				loadFunc: tt.load,
				saveFunc: func(ctx context.Context, sessionID string, blob []byte) error { return nil },
			}

			store := cart.Load(context.Background(), storage, "session-1", nil)
			assert.True(t, store.IsEmpty())
			assert.Equal(t, 0, store.ItemCount())
			assert.NotNil(t, store.Entries())
		})
	}
}

func TestStore_PersistFailureIsLoggedNotReturned(t *testing.T) {
	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	storage := &mockStorage{
		loadFunc: func(ctx context.Context, sessionID string) ([]byte, error) { return nil, cart.ErrNotFound },
		saveFunc: func(ctx context.Context, sessionID string, blob []byte) error {
			return errors.New("redis: connection pool timeout")
		},
	}

	store := cart.Load(ctx, storage, "session-1", logger)
	require.NoError(t, store.Add(ctx, "Soap", "25.50", ""))

	assert.Equal(t, 1, store.ItemCount())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "session-1", hook.LastEntry().Data["session_id"])
}

func TestStores_AreIndependent(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewSessionStore(time.Hour)

	a := cart.Load(ctx, storage, "a", nil)
	b := cart.Load(ctx, storage, "b", nil)
	require.NoError(t, a.Add(ctx, "Soap", "25.50", ""))

	assert.Equal(t, 1, a.ItemCount())
	assert.True(t, b.IsEmpty())
	assert.True(t, cart.Load(ctx, storage, "b", nil).IsEmpty())
}

func entryNames(entries []cart.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
