package summary

import (
	"strings"

	"tickr-book/internal/models"
)

// Filter selects trades by strategy and stock-name search text.
type Filter struct {
	// Strategy is "", "All" or a concrete strategy, compared case-insensitively.
	Strategy string
	// Search matches any stock name containing it, ignoring case.
	Search string
}

// Matches reports whether t passes both filters.
func (f Filter) Matches(t models.Trade) bool {
	if !t.MatchesStrategy(f.Strategy) {
		return false
	}
	return strings.Contains(strings.ToLower(t.StockName), strings.ToLower(f.Search))
}

// Apply returns the trades that pass f, in their original order.
func (f Filter) Apply(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
