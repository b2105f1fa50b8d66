package client

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tickr-book/internal/config"
	"tickr-book/internal/ledger"
	"tickr-book/internal/models"
	"tickr-book/internal/summary"
)

// TradeBookClient defines the operations the trade book API offers.
type TradeBookClient interface {
	Health(ctx context.Context) error
	ListTrades(ctx context.Context) ([]models.Trade, error)
	AddTrade(ctx context.Context, in ledger.TradeInput) (*models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error
	ListStocks(ctx context.Context, q StockQuery) ([]summary.StockSummary, error)
	StockTrades(ctx context.Context, stock, strategy string) ([]models.Trade, error)
	DeleteStock(ctx context.Context, stock, strategy string) (int, error)
	StockNames(ctx context.Context, prefix string) ([]string, error)
}

// StockQuery holds the filters of the stock list endpoint.
type StockQuery struct {
	Strategy string
	Search   string
	Sort     string
}

// APIError is a non-retryable error response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// RestClient is a client for the trade book HTTP API.
// It implements the TradeBookClient interface.
type RestClient struct {
	client     *resty.Client
	logger     *zap.Logger
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration // first retry delay, doubled per attempt
}

// ensure RestClient implements the interface
var _ TradeBookClient = (*RestClient)(nil)

// NewRestClient creates a new API client.
func NewRestClient(cfg *config.Client, logger *zap.Logger) *RestClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Accept", "application/json")

	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &RestClient{
		client:     client,
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
		maxRetries: maxRetries,
		backoff:    time.Second,
	}
}

// doRequest executes req with rate limiting. 429 is always retried, after
// Retry-After when the server sends it. 5xx and transport errors are retried
// with exponential backoff for every method except POST, whose request may
// already have been applied. Other error statuses become *APIError.
func (c *RestClient) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error

	for i := 0; i < c.maxRetries; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+url))
		resp, err = req.SetContext(ctx).Execute(method, url)

		if err == nil && !resp.IsError() {
			return resp, nil
		}

		shouldRetry := false
		hasRetryAfter := false
		var retryAfter time.Duration

		if err == nil {
			statusCode := resp.StatusCode()
			switch {
			case statusCode == http.StatusTooManyRequests:
				shouldRetry = true
				if seconds, convErr := strconv.Atoi(resp.Header().Get("Retry-After")); convErr == nil && seconds >= 0 {
					retryAfter = time.Duration(seconds) * time.Second
					hasRetryAfter = true
				}
			case statusCode >= 500:
				shouldRetry = retryable(method)
			}
			err = apiError(resp)
		} else {
			shouldRetry = retryable(method)
		}

		if !shouldRetry || i == c.maxRetries-1 {
			break
		}

		if !hasRetryAfter {
			retryAfter = time.Duration(math.Pow(2, float64(i))) * c.backoff
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, err
}

// retryable reports whether a request may be resent after a server error or
// a lost response. A POST could have created a record already.
func retryable(method string) bool {
	return method != http.MethodPost
}

func apiError(resp *resty.Response) *APIError {
	e := &APIError{StatusCode: resp.StatusCode(), Message: resp.Status()}
	if body, ok := resp.Error().(*errorBody); ok && body.Error != "" {
		e.Message = body.Error
		e.Fields = body.Fields
	}
	return e
}

type errorBody struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func (c *RestClient) newRequest() *resty.Request {
	return c.client.R().SetError(&errorBody{})
}

// Health checks that the server is reachable.
func (c *RestClient) Health(ctx context.Context) error {
	if _, err := c.doRequest(ctx, http.MethodGet, "/health", c.newRequest()); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// ListTrades fetches every trade.
func (c *RestClient) ListTrades(ctx context.Context) ([]models.Trade, error) {
	var trades []models.Trade
	req := c.newRequest().SetResult(&trades)

	if _, err := c.doRequest(ctx, http.MethodGet, "/api/v1/trades", req); err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

// AddTrade records a new trade.
func (c *RestClient) AddTrade(ctx context.Context, in ledger.TradeInput) (*models.Trade, error) {
	var trade models.Trade
	req := c.newRequest().
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&trade)

	if _, err := c.doRequest(ctx, http.MethodPost, "/api/v1/trades", req); err != nil {
		return nil, fmt.Errorf("failed to add trade: %w", err)
	}
	c.logger.Info("Trade recorded", zap.String("id", trade.ID), zap.String("stock", trade.StockName))
	return &trade, nil
}

// DeleteTrade removes one trade by id.
func (c *RestClient) DeleteTrade(ctx context.Context, id string) error {
	req := c.newRequest().SetPathParam("id", id)
	if _, err := c.doRequest(ctx, http.MethodDelete, "/api/v1/trades/{id}", req); err != nil {
		return fmt.Errorf("failed to delete trade %s: %w", id, err)
	}
	return nil
}

// ListStocks fetches the per-stock summaries.
func (c *RestClient) ListStocks(ctx context.Context, q StockQuery) ([]summary.StockSummary, error) {
	var rows []summary.StockSummary
	req := c.newRequest().SetResult(&rows)
	if q.Strategy != "" {
		req.SetQueryParam("strategy", q.Strategy)
	}
	if q.Search != "" {
		req.SetQueryParam("search", q.Search)
	}
	if q.Sort != "" {
		req.SetQueryParam("sort", q.Sort)
	}

	if _, err := c.doRequest(ctx, http.MethodGet, "/api/v1/stocks", req); err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}
	return rows, nil
}

// StockTrades fetches the trades of one stock.
func (c *RestClient) StockTrades(ctx context.Context, stock, strategy string) ([]models.Trade, error) {
	var trades []models.Trade
	req := c.newRequest().SetPathParam("stock", stock).SetResult(&trades)
	if strategy != "" {
		req.SetQueryParam("strategy", strategy)
	}

	if _, err := c.doRequest(ctx, http.MethodGet, "/api/v1/stocks/{stock}/trades", req); err != nil {
		return nil, fmt.Errorf("failed to get trades for %s: %w", stock, err)
	}
	return trades, nil
}

// DeleteStock removes the trades of a stock, optionally for one strategy only.
func (c *RestClient) DeleteStock(ctx context.Context, stock, strategy string) (int, error) {
	var result struct {
		Deleted int `json:"deleted"`
	}
	req := c.newRequest().SetPathParam("stock", stock).SetResult(&result)
	if strategy != "" {
		req.SetQueryParam("strategy", strategy)
	}

	if _, err := c.doRequest(ctx, http.MethodDelete, "/api/v1/stocks/{stock}", req); err != nil {
		return 0, fmt.Errorf("failed to delete trades for %s: %w", stock, err)
	}
	return result.Deleted, nil
}

// StockNames fetches the stock-name registry, or autocomplete suggestions
// when prefix is set.
func (c *RestClient) StockNames(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	req := c.newRequest().SetResult(&names)
	if prefix != "" {
		req.SetQueryParam("prefix", prefix)
	}

	if _, err := c.doRequest(ctx, http.MethodGet, "/api/v1/stock-names", req); err != nil {
		return nil, fmt.Errorf("failed to get stock names: %w", err)
	}
	return names, nil
}
