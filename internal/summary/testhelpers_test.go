package summary

import (
	"time"

	"tickr-book/internal/models"
)

func day(year int, month time.Month, d int) models.Timestamp {
	return models.NewTimestamp(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

func buy(stock string, qty int, price float64) models.Trade {
	return models.Trade{StockName: stock, Type: models.TradeTypeBuy, Quantity: qty, Price: price, Strategy: models.StrategyIntraday, Date: day(2024, 1, 1)}
}

func sell(stock string, qty int, price float64) models.Trade {
	return models.Trade{StockName: stock, Type: models.TradeTypeSell, Quantity: qty, Price: price, Strategy: models.StrategyIntraday, Date: day(2024, 1, 1)}
}

func withStrategy(t models.Trade, s models.Strategy) models.Trade {
	t.Strategy = s
	return t
}

func withDate(t models.Trade, ts models.Timestamp) models.Trade {
	t.Date = ts
	return t
}

func names(groups []Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.StockName)
	}
	return out
}
