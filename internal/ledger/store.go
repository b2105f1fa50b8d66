package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"tickr-book/internal/database"
	"tickr-book/internal/models"
)

// Keys under which the trade log is persisted.
const (
	TradesKey    = "trades"
	StockListKey = "stockList"
)

// Store reads and writes the whole trade list and the stock-name registry.
// Every write replaces the full value; there is no partial update.
type Store struct {
	kv database.KeyValueStore
}

// NewStore creates a Store on top of kv.
func NewStore(kv database.KeyValueStore) *Store {
	return &Store{kv: kv}
}

// LoadAll returns every trade in insertion order. A missing key yields an
// empty list.
func (s *Store) LoadAll(ctx context.Context) ([]models.Trade, error) {
	trades := make([]models.Trade, 0)
	if err := s.load(ctx, TradesKey, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// SaveAll replaces the persisted trade list.
func (s *Store) SaveAll(ctx context.Context, trades []models.Trade) error {
	if trades == nil {
		trades = []models.Trade{}
	}
	return s.save(ctx, TradesKey, trades)
}

// LoadStockNames returns the registry of known stock names.
func (s *Store) LoadStockNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := s.load(ctx, StockListKey, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// SaveStockNames replaces the registry.
func (s *Store) SaveStockNames(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	return s.save(ctx, StockListKey, names)
}

func (s *Store) load(ctx context.Context, key string, dst any) error {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrCorruptData, key, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(data))
}
