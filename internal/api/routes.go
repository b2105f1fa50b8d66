package api

import (
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SetupRoutes configures all API routes. limiter may be nil to disable
// rate limiting.
func SetupRoutes(handler *Handler, log *zap.Logger, limiter *rate.Limiter) *mux.Router {
	// Match on the escaped path so a stock name containing "/" stays one
	// segment. Handlers unescape vars through pathVar.
	r := mux.NewRouter().UseEncodedPath()
	r.Use(requestLogger(log))
	if limiter != nil {
		r.Use(rateLimit(limiter))
	}

	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/trades", handler.ListTrades).Methods("GET")
	api.HandleFunc("/trades", handler.AddTrade).Methods("POST")
	api.HandleFunc("/trades/{id}", handler.DeleteTrade).Methods("DELETE")
	api.HandleFunc("/stocks", handler.ListStocks).Methods("GET")
	api.HandleFunc("/stocks/{stock}", handler.DeleteStock).Methods("DELETE")
	api.HandleFunc("/stocks/{stock}/trades", handler.StockTrades).Methods("GET")
	api.HandleFunc("/stock-names", handler.StockNames).Methods("GET")

	return r
}
