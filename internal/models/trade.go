package models

import (
	"fmt"
	"strings"
)

// TradeType is the side of a trade.
type TradeType string

const (
	TradeTypeBuy  TradeType = "Buy"
	TradeTypeSell TradeType = "Sell"
)

// Strategy tags a trade with its intended holding period.
type Strategy string

const (
	StrategyIntraday Strategy = "Intraday"
	StrategySwing    Strategy = "Swing"
)

// StrategyAll is the filter value that matches every strategy.
const StrategyAll = "All"

// Strategies lists the concrete strategies in display order.
var Strategies = []Strategy{StrategyIntraday, StrategySwing}

// Trade is one buy or sell event for a stock. The JSON shape is the
// persisted format and its field order must not change.
type Trade struct {
	ID        string    `json:"id"`
	StockName string    `json:"stockName"`
	Type      TradeType `json:"type"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Date      Timestamp `json:"date"`
	Strategy  Strategy  `json:"strategy"`
}

// Value returns quantity * price.
func (t Trade) Value() float64 {
	return float64(t.Quantity) * t.Price
}

// ParseTradeType maps "buy"/"sell" in any case to a TradeType.
func ParseTradeType(s string) (TradeType, error) {
	switch {
	case strings.EqualFold(s, string(TradeTypeBuy)):
		return TradeTypeBuy, nil
	case strings.EqualFold(s, string(TradeTypeSell)):
		return TradeTypeSell, nil
	}
	return "", fmt.Errorf("unknown trade type %q", s)
}

// ParseStrategy maps "intraday"/"swing" in any case to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// IsAllStrategies reports whether a strategy filter value selects every
// strategy. The empty string counts as "all".
func IsAllStrategies(filter string) bool {
	return filter == "" || strings.EqualFold(filter, StrategyAll)
}

// ValidateStrategyFilter accepts "", "all" or a concrete strategy.
func ValidateStrategyFilter(filter string) error {
	if IsAllStrategies(filter) {
		return nil
	}
	_, err := ParseStrategy(filter)
	return err
}

// MatchesStrategy reports whether the trade passes a strategy filter.
func (t Trade) MatchesStrategy(filter string) bool {
	return IsAllStrategies(filter) || strings.EqualFold(string(t.Strategy), filter)
}
