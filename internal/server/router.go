package server

import (
	"net/http"
	"time"

	"github.com/searchlite/searchlite/internal/analytics"
	"github.com/searchlite/searchlite/pkg/health"
	"github.com/searchlite/searchlite/pkg/metrics"
	"github.com/searchlite/searchlite/pkg/middleware"
)

// RouterConfig carries the optional pieces the route table depends on.
// Nil or zero fields disable the corresponding routes or middleware.
type RouterConfig struct {
	Analytics *analytics.Handler
	Checker   *health.Checker
	Metrics   *metrics.Metrics
	Timeout   time.Duration
}

// NewRouter builds the service HTTP handler with all routes and middleware.
//
// Route table:
//
//	POST   /api/v1/documents           → index a document
//	GET    /api/v1/documents           → list document identifiers
//	GET    /api/v1/documents/{id}      → fetch stored content
//	GET    /api/v1/search              → exact word search
//	GET    /api/v1/autocomplete        → prefix suggestions
//	GET    /api/v1/words/{word}/vector → sparse frequency vector
//	GET    /api/v1/stats               → index statistics
//	GET    /api/v1/analytics           → aggregated query analytics
//	GET    /api/v1/cache/stats         → query cache counters
//	POST   /api/v1/cache/invalidate    → drop cached query responses
//	GET    /health/live                → liveness probe
//	GET    /health/ready               → readiness probe
//
// Middleware chain (outermost first):
//
//	RequestID → Metrics → Timeout → handler
func NewRouter(h *Handler, rc RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// Document API
	mux.HandleFunc("POST /api/v1/documents", h.AddDocument)
	mux.HandleFunc("GET /api/v1/documents", h.ListDocuments)
	mux.HandleFunc("GET /api/v1/documents/{id}", h.GetDocument)

	// Query API
	mux.HandleFunc("GET /api/v1/search", h.Search)
	mux.HandleFunc("GET /api/v1/autocomplete", h.Autocomplete)
	mux.HandleFunc("GET /api/v1/words/{word}/vector", h.WordVector)

	// Stats API
	mux.HandleFunc("GET /api/v1/stats", h.Stats)
	if rc.Analytics != nil {
		mux.HandleFunc("GET /api/v1/analytics", rc.Analytics.Stats)
	}

	// Cache API
	mux.HandleFunc("GET /api/v1/cache/stats", h.CacheStats)
	mux.HandleFunc("POST /api/v1/cache/invalidate", h.CacheInvalidate)

	// Health probes
	if rc.Checker != nil {
		mux.HandleFunc("GET /health/live", rc.Checker.LiveHandler())
		mux.HandleFunc("GET /health/ready", rc.Checker.ReadyHandler())
	}

	// Middleware chain, applied inside-out:
	// request → RequestID → Metrics → Timeout → mux
	var chain http.Handler = mux
	if rc.Timeout > 0 {
		chain = middleware.Timeout(rc.Timeout)(chain)
	}
	if rc.Metrics != nil {
		chain = middleware.Metrics(rc.Metrics)(chain)
	}
	chain = middleware.RequestID(chain)

	return chain
}
