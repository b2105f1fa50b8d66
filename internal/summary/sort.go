package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode orders stock groups.
type SortMode string

const (
	SortByStock SortMode = "stock"
	SortByDate  SortMode = "date"
)

// ParseSortMode accepts "stock" or "date" in any case; "" means SortByStock.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(s) {
	case "", string(SortByStock):
		return SortByStock, nil
	case string(SortByDate):
		return SortByDate, nil
	}
	return "", fmt.Errorf("unknown sort mode %q", s)
}

// SortGroups orders groups in place. SortByStock uses locale collation of
// the names; SortByDate puts the group whose first recorded trade is newest
// first. The first trade is used, not the latest one. Ties keep their
// current order.
func SortGroups(groups []Group, mode SortMode) {
	switch mode {
	case SortByDate:
		sort.SliceStable(groups, func(i, j int) bool {
			return firstDate(groups[i]).After(firstDate(groups[j]))
		})
	default:
		c := collate.New(language.English)
		sort.SliceStable(groups, func(i, j int) bool {
			return c.CompareString(groups[i].StockName, groups[j].StockName) < 0
		})
	}
}

func firstDate(g Group) time.Time {
	if len(g.Trades) == 0 {
		return time.Time{}
	}
	return g.Trades[0].Date.Time
}
