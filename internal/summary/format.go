package summary

import (
	"github.com/shopspring/decimal"

	"tickr-book/internal/models"
)

// FormatDate renders a trade date as dd/mm/yyyy.
func FormatDate(ts models.Timestamp) string {
	return ts.UTC().Format("02/01/2006")
}

// FormatAmount renders a price or amount with two fixed decimals.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
