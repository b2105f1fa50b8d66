package ledger

import (
	"math"
	"strconv"
	"strings"

	"tickr-book/internal/models"
)

// TradeInput is a trade as typed by the user, before parsing.
type TradeInput struct {
	StockName string `json:"stockName"`
	Type      string `json:"type"`
	Price     string `json:"price"`
	Quantity  string `json:"quantity"`
	Date      string `json:"date"`
	Strategy  string `json:"strategy"`
}

// parse validates the input and builds a trade without an id.
// Missing required fields are reported together; only after they are all
// present are the values themselves checked.
func (in TradeInput) parse() (models.Trade, error) {
	stock := strings.TrimSpace(in.StockName)
	price := strings.TrimSpace(in.Price)
	qty := strings.TrimSpace(in.Quantity)
	date := strings.TrimSpace(in.Date)

	var missing []string
	if stock == "" {
		missing = append(missing, "stockName")
	}
	if qty == "" {
		missing = append(missing, "quantity")
	}
	if price == "" {
		missing = append(missing, "price")
	}
	if date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return models.Trade{}, &ValidationError{Fields: missing, Reason: "please fill all required fields"}
	}

	trade := models.Trade{
		StockName: stock,
		Type:      models.TradeTypeBuy,
		Strategy:  models.StrategyIntraday,
	}

	var err error
	if trade.Price, err = strconv.ParseFloat(price, 64); err != nil || math.IsNaN(trade.Price) || math.IsInf(trade.Price, 0) {
		return models.Trade{}, &ValidationError{Fields: []string{"price"}, Reason: "price must be a number"}
	}
	if trade.Quantity, err = strconv.Atoi(qty); err != nil {
		return models.Trade{}, &ValidationError{Fields: []string{"quantity"}, Reason: "quantity must be a whole number"}
	}
	if trade.Date, err = models.ParseTimestamp(date); err != nil {
		return models.Trade{}, &ValidationError{Fields: []string{"date"}, Reason: "date must be YYYY-MM-DD or RFC 3339"}
	}
	if t := strings.TrimSpace(in.Type); t != "" {
		if trade.Type, err = models.ParseTradeType(t); err != nil {
			return models.Trade{}, &ValidationError{Fields: []string{"type"}, Reason: "type must be Buy or Sell"}
		}
	}
	if s := strings.TrimSpace(in.Strategy); s != "" {
		if trade.Strategy, err = models.ParseStrategy(s); err != nil {
			return models.Trade{}, &ValidationError{Fields: []string{"strategy"}, Reason: "strategy must be Intraday or Swing"}
		}
	}

	return trade, nil
}
