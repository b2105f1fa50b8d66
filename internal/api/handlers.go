package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tickr-book/internal/ledger"
	"tickr-book/internal/models"
	"tickr-book/internal/summary"
)

// Handler holds dependencies for the API endpoints.
type Handler struct {
	log    *zap.Logger
	ledger *ledger.Ledger
}

// NewHandler creates a new Handler.
func NewHandler(log *zap.Logger, l *ledger.Ledger) *Handler {
	return &Handler{log: log, ledger: l}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListTrades handles GET /api/v1/trades.
func (h *Handler) ListTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.ledger.Trades(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trades)
}

// AddTrade handles POST /api/v1/trades.
func (h *Handler) AddTrade(w http.ResponseWriter, r *http.Request) {
	var in ledger.TradeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trade, err := h.ledger.AddTrade(r.Context(), in)
	if err != nil && trade.ID == "" {
		h.respondError(w, err)
		return
	}
	// A failed registry update still leaves the trade saved.
	respondJSON(w, http.StatusCreated, trade)
}

// DeleteTrade handles DELETE /api/v1/trades/{id}.
func (h *Handler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	id, ok := pathVar(w, r, "id")
	if !ok {
		return
	}
	if err := h.ledger.DeleteTrade(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListStocks handles GET /api/v1/stocks?strategy=&search=&sort=.
func (h *Handler) ListStocks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	strategy := q.Get("strategy")
	if err := models.ValidateStrategyFilter(strategy); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: []string{"strategy"}})
		return
	}
	sortMode, err := summary.ParseSortMode(q.Get("sort"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: []string{"sort"}})
		return
	}

	rows, err := h.ledger.Summaries(r.Context(), summary.Query{
		Strategy: strategy,
		Search:   q.Get("search"),
		Sort:     sortMode,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// StockTrades handles GET /api/v1/stocks/{stock}/trades?strategy=.
func (h *Handler) StockTrades(w http.ResponseWriter, r *http.Request) {
	stock, ok := pathVar(w, r, "stock")
	if !ok {
		return
	}
	strategy := r.URL.Query().Get("strategy")
	if err := models.ValidateStrategyFilter(strategy); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: []string{"strategy"}})
		return
	}

	trades, err := h.ledger.StockDetail(r.Context(), stock, strategy)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trades)
}

// DeleteStock handles DELETE /api/v1/stocks/{stock}?strategy=.
func (h *Handler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	stock, ok := pathVar(w, r, "stock")
	if !ok {
		return
	}
	strategy := r.URL.Query().Get("strategy")
	if err := models.ValidateStrategyFilter(strategy); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: []string{"strategy"}})
		return
	}

	removed, err := h.ledger.DeleteStockTrades(r.Context(), stock, strategy)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"deleted": removed})
}

// StockNames handles GET /api/v1/stock-names?prefix=.
func (h *Handler) StockNames(w http.ResponseWriter, r *http.Request) {
	var (
		names []string
		err   error
	)
	if prefix := r.URL.Query().Get("prefix"); prefix != "" {
		names, err = h.ledger.SuggestStockNames(r.Context(), prefix)
	} else {
		names, err = h.ledger.StockNames(r.Context())
	}
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, names)
}

// pathVar returns the unescaped route variable name. On a malformed escape
// it answers 400 and reports false.
func pathVar(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v, err := url.PathUnescape(mux.Vars(r)[name])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid " + name, Fields: []string{name}})
		return "", false
	}
	return v, true
}

// respondError maps ledger errors to HTTP statuses.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, ledger.ErrTradeNotFound):
		respondJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		h.log.Error("Request failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
