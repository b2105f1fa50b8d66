package summary

import (
	"strconv"

	"github.com/shopspring/decimal"

	"tickr-book/internal/models"
)

// Stats are the aggregate figures shown for one stock.
type Stats struct {
	TotalBuyQty    int     `json:"totalBuyQty"`
	TotalBuyValue  float64 `json:"totalBuyValue"`
	TotalSellQty   int     `json:"totalSellQty"`
	TotalSellValue float64 `json:"totalSellValue"`
	AvgBuyPrice    float64 `json:"avgBuyPrice"`
	AvgSellPrice   float64 `json:"avgSellPrice"`
	TotalQty       int     `json:"totalQty"`
	TotalInvested  float64 `json:"totalInvested"`
	PnL            float64 `json:"pnl"`
}

// Calculate aggregates the trades of a single stock.
//
// TotalQty is the larger of the two sides rather than the net position, and
// TotalInvested falls back to the sell side when there is no buy price. Both
// are kept as-is so totals match what users already have on record.
func Calculate(trades []models.Trade) Stats {
	var s Stats
	for _, t := range trades {
		switch t.Type {
		case models.TradeTypeBuy:
			s.TotalBuyQty += t.Quantity
			s.TotalBuyValue += t.Value()
		case models.TradeTypeSell:
			s.TotalSellQty += t.Quantity
			s.TotalSellValue += t.Value()
		}
	}

	if s.TotalBuyQty > 0 {
		s.AvgBuyPrice = round2(s.TotalBuyValue / float64(s.TotalBuyQty))
	}
	if s.TotalSellQty > 0 {
		s.AvgSellPrice = round2(s.TotalSellValue / float64(s.TotalSellQty))
	}

	s.TotalQty = max(s.TotalBuyQty, s.TotalSellQty)

	s.TotalInvested = float64(s.TotalQty) * s.AvgBuyPrice
	if s.TotalInvested == 0 {
		s.TotalInvested = float64(s.TotalQty) * s.AvgSellPrice
	}

	if s.TotalBuyQty > 0 && s.TotalSellValue > 0 {
		sold := float64(s.TotalSellQty)
		s.PnL = sold*s.AvgSellPrice - sold*s.AvgBuyPrice
	}

	return s
}

// exactDigits is enough fractional digits to print any finite float64
// without rounding.
const exactDigits = 1074

// round2 rounds half away from zero on the exact binary value of v, so
// 1.005 (stored as 1.00499999...) becomes 1.00 while 1.125 becomes 1.13.
func round2(v float64) float64 {
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
	if err != nil {
		return v
	}
	return d.Round(2).InexactFloat64()
}
