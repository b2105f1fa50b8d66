package summary

import "tickr-book/internal/models"

// Group holds every trade of one stock.
type Group struct {
	StockName string
	Trades    []models.Trade
}

// GroupByStock partitions trades by exact stock name. Groups come out in
// order of first appearance and each keeps its trades in insertion order.
func GroupByStock(trades []models.Trade) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, t := range trades {
		i, ok := index[t.StockName]
		if !ok {
			i = len(groups)
			index[t.StockName] = i
			groups = append(groups, Group{StockName: t.StockName})
		}
		groups[i].Trades = append(groups[i].Trades, t)
	}
	return groups
}
