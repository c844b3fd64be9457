package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/usecase/command"
	"github.com/tair/price-list/internal/catalog/usecase/query"
	"github.com/tair/price-list/pkg/logger"
)

// Pinger reports whether the backing database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// CommandHandlers holds all command handlers
type CommandHandlers struct {
	CreateProduct  *command.CreateProductHandler
	UpdateProduct  *command.UpdateProductHandler
	DeleteProduct  *command.DeleteProductHandler
	CreateCategory *command.CreateCategoryHandler
	UpdateCategory *command.UpdateCategoryHandler
	DeleteCategory *command.DeleteCategoryHandler
}

// QueryHandlers holds all query handlers
type QueryHandlers struct {
	GetProduct     *query.GetProductHandler
	ListProducts   *query.ListProductsHandler
	GetStats       *query.GetStatsHandler
	ListCategories *query.ListCategoriesHandler
}

// CatalogHandler handles HTTP requests for products and categories using CQRS pattern
type CatalogHandler struct {
	commands *CommandHandlers
	queries  *QueryHandlers
	catalog  domain.Catalog

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
	streamClients  prometheus.Gauge

	keepAlive time.Duration
	writes    *RateLimiter
}

// NewCatalogHandler creates a catalog handler and registers its metrics on reg
func NewCatalogHandler(commands *CommandHandlers, queries *QueryHandlers, catalog domain.Catalog, reg prometheus.Registerer) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// p50, p90, p95, p99
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	streamClients := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_stream_clients",
			Help: "Number of connected product stream clients",
		},
	)

	if reg != nil {
		reg.MustRegister(requestCounter, requestLatency, requestSummary, totalProducts, streamClients)
	}

	return &CatalogHandler{
		commands:       commands,
		queries:        queries,
		catalog:        catalog,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		totalProducts:  totalProducts,
		streamClients:  streamClients,
		keepAlive:      15 * time.Second,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// LimitWrites applies rl to every mutating route registered afterwards
func (h *CatalogHandler) LimitWrites(rl *RateLimiter) {
	h.writes = rl
}

func (h *CatalogHandler) write(next http.HandlerFunc) http.HandlerFunc {
	return h.writes.Middleware(next)
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc(StreamPath, h.StreamProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.write(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.write(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.write(h.DeleteProduct))).Methods("DELETE")

	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.write(h.CreateCategory))).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.metricsMiddleware("/api/categories/{id}", h.write(h.UpdateCategory))).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", h.metricsMiddleware("/api/categories/{id}", h.write(h.DeleteCategory))).Methods("DELETE")

	router.HandleFunc("/api/icons", h.metricsMiddleware("/api/icons", h.ListIcons)).Methods("GET")
}

func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db Pinger) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.Warn(r.Context()).Err(err).Msg("Health check failed")
				respondError(w, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// updateProductsMetric updates the total products gauge from the current snapshot
func (h *CatalogHandler) updateProductsMetric(ctx context.Context) {
	snap, err := h.catalog.Snapshot(ctx)
	if err == nil {
		h.totalProducts.Set(float64(len(snap.Products)))
	}
}

// respondFailure maps err onto a status code. Unknown errors are logged and hidden behind fallback.
func respondFailure(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg(fallback)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Helper function for error responses
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}
