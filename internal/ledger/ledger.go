package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tickr-book/internal/models"
	"tickr-book/internal/summary"
)

// Ledger applies user actions to the trade log. Each mutation is a full
// read-modify-write of the stored list, serialised by mu.
type Ledger struct {
	store  *Store
	logger *zap.Logger
	now    func() time.Time

	mu sync.Mutex
}

// New creates a Ledger over store.
func New(store *Store, logger *zap.Logger) *Ledger {
	return &Ledger{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// AddTrade validates in, appends the trade and records its stock name.
func (l *Ledger) AddTrade(ctx context.Context, in TradeInput) (models.Trade, error) {
	trade, err := in.parse()
	if err != nil {
		l.logger.Debug("Rejected trade input", zap.Error(err))
		return models.Trade{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	trades, err := l.store.LoadAll(ctx)
	if err != nil {
		l.logger.Error("Failed to load trades", zap.Error(err))
		return models.Trade{}, fmt.Errorf("failed to load trades: %w", err)
	}

	trade.ID = l.nextID(trades)
	trades = append(trades, trade)
	if err := l.store.SaveAll(ctx, trades); err != nil {
		l.logger.Error("Failed to save trades", zap.Error(err))
		return models.Trade{}, fmt.Errorf("failed to save trades: %w", err)
	}

	if err := l.registerStockName(ctx, trade.StockName); err != nil {
		// The trade itself is saved; only autocomplete misses the name.
		l.logger.Error("Failed to update stock list", zap.String("stock", trade.StockName), zap.Error(err))
		return trade, fmt.Errorf("failed to update stock list: %w", err)
	}

	l.logger.Info("Trade added",
		zap.String("id", trade.ID),
		zap.String("stock", trade.StockName),
		zap.String("type", string(trade.Type)),
		zap.Int("quantity", trade.Quantity),
		zap.Float64("price", trade.Price),
		zap.String("strategy", string(trade.Strategy)),
	)
	return trade, nil
}

// nextID derives an id from the millisecond clock, bumping it past any id
// already in use.
func (l *Ledger) nextID(trades []models.Trade) string {
	used := make(map[string]struct{}, len(trades))
	for _, t := range trades {
		used[t.ID] = struct{}{}
	}
	ms := l.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if _, ok := used[id]; !ok {
			return id
		}
		ms++
	}
}

// registerStockName appends name to the registry if it is not there yet.
// Names are never removed from the registry.
func (l *Ledger) registerStockName(ctx context.Context, name string) error {
	names, err := l.store.LoadStockNames(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	return l.store.SaveStockNames(ctx, append(names, name))
}

// DeleteTrade removes the trade with the given id.
func (l *Ledger) DeleteTrade(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	trades, err := l.store.LoadAll(ctx)
	if err != nil {
		l.logger.Error("Failed to load trades", zap.Error(err))
		return fmt.Errorf("failed to load trades: %w", err)
	}

	kept := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trades) {
		return fmt.Errorf("%w: %s", ErrTradeNotFound, id)
	}

	if err := l.store.SaveAll(ctx, kept); err != nil {
		l.logger.Error("Failed to save trades", zap.Error(err))
		return fmt.Errorf("failed to save trades: %w", err)
	}

	l.logger.Info("Trade deleted", zap.String("id", id))
	return nil
}

// DeleteStockTrades removes the trades of stock. With a concrete strategy
// only trades of that strategy go; "" or "All" removes them all. It returns
// how many trades were removed.
func (l *Ledger) DeleteStockTrades(ctx context.Context, stock, strategy string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	trades, err := l.store.LoadAll(ctx)
	if err != nil {
		l.logger.Error("Failed to load trades", zap.Error(err))
		return 0, fmt.Errorf("failed to load trades: %w", err)
	}

	kept := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.StockName == stock && t.MatchesStrategy(strategy) {
			continue
		}
		kept = append(kept, t)
	}

	removed := len(trades) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := l.store.SaveAll(ctx, kept); err != nil {
		l.logger.Error("Failed to save trades", zap.Error(err))
		return 0, fmt.Errorf("failed to save trades: %w", err)
	}

	l.logger.Info("Stock trades deleted",
		zap.String("stock", stock),
		zap.String("strategy", strategy),
		zap.Int("count", removed),
	)
	return removed, nil
}

// Trades returns the full trade list.
func (l *Ledger) Trades(ctx context.Context) ([]models.Trade, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	trades, err := l.store.LoadAll(ctx)
	if err != nil {
		l.logger.Error("Failed to load trades", zap.Error(err))
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}
	return trades, nil
}

// StockNames returns the registry of every stock name ever entered.
func (l *Ledger) StockNames(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	names, err := l.store.LoadStockNames(ctx)
	if err != nil {
		l.logger.Error("Failed to load stock list", zap.Error(err))
		return nil, fmt.Errorf("failed to load stock list: %w", err)
	}
	return names, nil
}

// SuggestStockNames returns registry names starting with prefix, ignoring
// case. An empty prefix suggests nothing.
func (l *Ledger) SuggestStockNames(ctx context.Context, prefix string) ([]string, error) {
	suggestions := make([]string, 0)
	if prefix == "" {
		return suggestions, nil
	}

	names, err := l.StockNames(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(prefix)
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), lower) {
			suggestions = append(suggestions, n)
		}
	}
	return suggestions, nil
}

// Summaries loads the trades and aggregates them per stock.
func (l *Ledger) Summaries(ctx context.Context, q summary.Query) ([]summary.StockSummary, error) {
	trades, err := l.Trades(ctx)
	if err != nil {
		return nil, err
	}
	return summary.Summarize(trades, q), nil
}

// StockDetail loads the trades of one stock under a strategy filter.
func (l *Ledger) StockDetail(ctx context.Context, stock, strategy string) ([]models.Trade, error) {
	trades, err := l.Trades(ctx)
	if err != nil {
		return nil, err
	}
	return summary.StockTrades(trades, stock, strategy), nil
}
