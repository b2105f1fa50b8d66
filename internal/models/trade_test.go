package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeJSONShape(t *testing.T) {
	trade := Trade{
		ID:        "1714555800000",
		StockName: "INFY",
		Type:      TradeTypeBuy,
		Price:     1450.5,
		Quantity:  10,
		Date:      NewTimestamp(time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)),
		Strategy:  StrategySwing,
	}

	data, err := json.Marshal(trade)
	require.NoError(t, err)

	expected := `{"id":"1714555800000","stockName":"INFY","type":"Buy","price":1450.5,"quantity":10,"date":"2024-05-01T09:30:00.000Z","strategy":"Swing"}`
	assert.Equal(t, expected, string(data))

	var decoded Trade
	require.NoError(t, json.Unmarshal(data, &decoded))
	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, expected, string(again))
}

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "Millisecond ISO", input: "2024-05-01T09:30:00.123Z", expected: "2024-05-01T09:30:00.123Z"},
		{name: "RFC3339 with offset", input: "2024-05-01T15:00:00+05:30", expected: "2024-05-01T09:30:00.000Z"},
		{name: "Calendar date", input: "2024-05-01", expected: "2024-05-01T00:00:00.000Z"},
		{name: "Garbage", input: "01/05/2024", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tc.input)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, ts.String())
		})
	}
}

func TestTimestampUnmarshalRejectsNumbers(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`1714555800000`), &ts))
}

func TestParseEnums(t *testing.T) {
	tt, err := ParseTradeType("sell")
	assert.NoError(t, err)
	assert.Equal(t, TradeTypeSell, tt)

	_, err = ParseTradeType("short")
	assert.Error(t, err)

	st, err := ParseStrategy("INTRADAY")
	assert.NoError(t, err)
	assert.Equal(t, StrategyIntraday, st)

	_, err = ParseStrategy("positional")
	assert.Error(t, err)
}

func TestMatchesStrategy(t *testing.T) {
	trade := Trade{Strategy: StrategySwing}

	assert.True(t, trade.MatchesStrategy(""))
	assert.True(t, trade.MatchesStrategy("all"))
	assert.True(t, trade.MatchesStrategy("All"))
	assert.True(t, trade.MatchesStrategy("swing"))
	assert.False(t, trade.MatchesStrategy("Intraday"))

	assert.NoError(t, ValidateStrategyFilter("ALL"))
	assert.NoError(t, ValidateStrategyFilter("swing"))
	assert.Error(t, ValidateStrategyFilter("weekly"))
}
