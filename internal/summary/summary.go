package summary

import "tickr-book/internal/models"

// Query is the view state of the stock list: active filters and sort order.
type Query struct {
	Strategy string
	Search   string
	Sort     SortMode
}

// StockSummary is one row of the stock list.
type StockSummary struct {
	StockName  string `json:"stockName"`
	TradeCount int    `json:"tradeCount"`
	Stats      Stats  `json:"stats"`
}

// Summarize filters, groups and sorts trades and computes stats per stock.
func Summarize(trades []models.Trade, q Query) []StockSummary {
	filter := Filter{Strategy: q.Strategy, Search: q.Search}
	groups := GroupByStock(filter.Apply(trades))
	SortGroups(groups, q.Sort)

	out := make([]StockSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, StockSummary{
			StockName:  g.StockName,
			TradeCount: len(g.Trades),
			Stats:      Calculate(g.Trades),
		})
	}
	return out
}

// StockTrades returns the trades of one stock (exact name) that pass the
// strategy filter, in insertion order. This backs the single-stock view.
func StockTrades(trades []models.Trade, stock, strategy string) []models.Trade {
	out := make([]models.Trade, 0)
	for _, t := range trades {
		if t.StockName == stock && t.MatchesStrategy(strategy) {
			out = append(out, t)
		}
	}
	return out
}
