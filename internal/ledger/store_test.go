package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickr-book/internal/models"
)

func TestStore_LoadAllEmpty(t *testing.T) {
	l, _ := setupLedger(t)

	trades, err := l.store.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, trades)
	assert.Empty(t, trades)

	names, err := l.store.LoadStockNames(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_RoundTripIsByteStable(t *testing.T) {
	l, kv := setupLedger(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, TradesKey, storedTrades))

	trades, err := l.store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 3)
	assert.Equal(t, "INFY", trades[0].StockName)
	assert.Equal(t, models.StrategySwing, trades[0].Strategy)

	require.NoError(t, l.store.SaveAll(ctx, trades))
	assert.Equal(t, storedTrades, rawValue(t, kv, TradesKey))
}

func TestStore_SaveAllNil(t *testing.T) {
	l, kv := setupLedger(t)

	require.NoError(t, l.store.SaveAll(context.Background(), nil))
	assert.Equal(t, `[]`, rawValue(t, kv, TradesKey))

	require.NoError(t, l.store.SaveStockNames(context.Background(), nil))
	assert.Equal(t, `[]`, rawValue(t, kv, StockListKey))
}

func TestStore_CorruptData(t *testing.T) {
	l, kv := setupLedger(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, TradesKey, `{"not":"a list"`))
	_, err := l.store.LoadAll(ctx)
	assert.ErrorIs(t, err, ErrCorruptData)

	require.NoError(t, kv.Set(ctx, StockListKey, `[1,2]`))
	_, err = l.store.LoadStockNames(ctx)
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestStore_StockNames(t *testing.T) {
	l, kv := setupLedger(t)
	ctx := context.Background()

	require.NoError(t, l.store.SaveStockNames(ctx, []string{"INFY", "TCS"}))
	assert.Equal(t, `["INFY","TCS"]`, rawValue(t, kv, StockListKey))

	names, err := l.store.LoadStockNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"INFY", "TCS"}, names)
}
