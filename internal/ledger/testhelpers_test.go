package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tickr-book/internal/database"
)

// storedTrades is a trade list in the exact form the store writes.
const storedTrades = `[{"id":"1714555800000","stockName":"INFY","type":"Buy","price":1450.5,"quantity":10,"date":"2024-05-01T09:30:00.000Z","strategy":"Swing"},` +
	`{"id":"1714555800001","stockName":"TCS","type":"Sell","price":3800,"quantity":2,"date":"2024-05-02T00:00:00.000Z","strategy":"Intraday"},` +
	`{"id":"1714555800002","stockName":"INFY","type":"Sell","price":1500,"quantity":4,"date":"2024-05-03T00:00:00.000Z","strategy":"Intraday"}]`

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

// setupLedger returns a Ledger on a fresh in-memory database with a frozen clock.
func setupLedger(t *testing.T) (*Ledger, *database.GormStore) {
	db, err := database.NewDatabase("file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	kv := database.NewGormStore(db)
	l := New(NewStore(kv), zap.NewNop())
	l.now = func() time.Time { return fixedNow }
	return l, kv
}

func rawValue(t *testing.T, kv *database.GormStore, key string) string {
	value, _, err := kv.Get(context.Background(), key)
	require.NoError(t, err)
	return value
}
