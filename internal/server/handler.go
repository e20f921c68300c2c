// Package server exposes the index over HTTP. Handlers translate the core's
// empty-result semantics into JSON responses; the only errors the API
// produces are validation failures and unknown document identifiers.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/searchlite/searchlite/internal/analytics"
	"github.com/searchlite/searchlite/internal/index"
	"github.com/searchlite/searchlite/internal/indexer"
	"github.com/searchlite/searchlite/internal/search/cache"
	"github.com/searchlite/searchlite/pkg/config"
	apperrors "github.com/searchlite/searchlite/pkg/errors"
	"github.com/searchlite/searchlite/pkg/logger"
	"github.com/searchlite/searchlite/pkg/metrics"
)

// Handler serves the search API. Cache, collector, and metrics are all
// optional; a nil value disables that concern.
type Handler struct {
	ix        *indexer.Indexer
	cache     *cache.QueryCache
	collector *analytics.Collector
	metrics   *metrics.Metrics
	search    config.SearchConfig
	logger    *slog.Logger
}

// New creates a Handler around the indexer.
func New(ix *indexer.Indexer, queryCache *cache.QueryCache, collector *analytics.Collector, m *metrics.Metrics, search config.SearchConfig) *Handler {
	return &Handler{
		ix:        ix,
		cache:     queryCache,
		collector: collector,
		metrics:   m,
		search:    search,
		logger:    slog.Default().With("component", "api-handler"),
	}
}

type addDocumentResponse struct {
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`
}

type searchResponse struct {
	Word     string            `json:"word"`
	Postings index.PostingList `json:"postings"`
	Total    int               `json:"total"`
}

type autocompleteResponse struct {
	Prefix      string   `json:"prefix"`
	Suggestions []string `json:"suggestions"`
}

type vectorResponse struct {
	Word    string        `json:"word"`
	Entries []sparseEntry `json:"entries"`
	Length  int           `json:"length"`
}

type sparseEntry struct {
	Slot      int `json:"slot"`
	Frequency int `json:"frequency"`
}

// AddDocument indexes the posted content and returns the identifier used.
func (h *Handler) AddDocument(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req AddDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validateAddDocument(&req, h.search); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			h.writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "validation failed",
				"fields": validationErr.Fields,
			})
			return
		}
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	docID := h.ix.AddDocument(req.Content, req.DocumentID)
	h.afterIndex(ctx)

	latencyMs := time.Since(start).Milliseconds()
	log.Info("document indexed", "doc_id", docID, "latency_ms", latencyMs)

	if h.collector != nil {
		h.collector.Track(analytics.IndexEvent{
			Type:         analytics.EventIndexDoc,
			DocumentID:   docID,
			ContentBytes: len(req.Content),
			LatencyMs:    latencyMs,
			Timestamp:    time.Now().UTC(),
		})
	}

	h.writeJSON(w, http.StatusAccepted, addDocumentResponse{
		DocumentID: docID,
		Status:     "indexed",
	})
}

// Search returns the posting list for an exact word.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	log := logger.FromContext(ctx)

	word := r.URL.Query().Get("word")
	if word == "" {
		h.writeError(w, http.StatusBadRequest, "query parameter 'word' is required")
		return
	}

	body, cacheHit, err := h.cachedJSON(ctx, "search", word, 0, func() (any, error) {
		postings := h.ix.SearchExact(word)
		if postings == nil {
			postings = index.PostingList{}
		}
		return searchResponse{Word: word, Postings: postings, Total: len(postings)}, nil
	})
	if err != nil {
		log.Error("search failed", "word", word, "error", err)
		h.writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	hits := 0
	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err == nil {
		hits = decoded.Total
	}

	latencyMs := time.Since(start).Milliseconds()
	h.observeSearch(hits, cacheHit, start)
	log.Info("search completed",
		"word", word,
		"hits", hits,
		"cache_hit", cacheHit,
		"latency_ms", latencyMs,
	)
	if h.collector != nil {
		eventType := analytics.EventSearch
		if hits == 0 {
			eventType = analytics.EventZeroResult
		}
		h.collector.Track(analytics.SearchEvent{
			Type:      eventType,
			Word:      word,
			Hits:      hits,
			LatencyMs: latencyMs,
			CacheHit:  cacheHit,
			Timestamp: time.Now().UTC(),
			RequestID: logger.RequestID(ctx),
		})
	}

	h.writeRawJSON(w, http.StatusOK, body)
}

// Autocomplete returns up to limit suggestions for a prefix.
func (h *Handler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	log := logger.FromContext(ctx)

	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		h.writeError(w, http.StatusBadRequest, "query parameter 'prefix' is required")
		return
	}

	limit := h.search.DefaultAutocompleteLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if parsed > h.search.MaxAutocompleteLimit {
			parsed = h.search.MaxAutocompleteLimit
		}
		limit = parsed
	}

	body, cacheHit, err := h.cachedJSON(ctx, "autocomplete", prefix, limit, func() (any, error) {
		suggestions := h.ix.Autocomplete(prefix, limit)
		if suggestions == nil {
			suggestions = []string{}
		}
		return autocompleteResponse{Prefix: prefix, Suggestions: suggestions}, nil
	})
	if err != nil {
		log.Error("autocomplete failed", "prefix", prefix, "error", err)
		h.writeError(w, http.StatusInternalServerError, "autocomplete failed")
		return
	}

	hits := 0
	var decoded autocompleteResponse
	if err := json.Unmarshal(body, &decoded); err == nil {
		hits = len(decoded.Suggestions)
	}

	if h.metrics != nil {
		h.metrics.AutocompletesTotal.Inc()
	}
	latencyMs := time.Since(start).Milliseconds()
	log.Info("autocomplete completed",
		"prefix", prefix,
		"suggestions", hits,
		"cache_hit", cacheHit,
		"latency_ms", latencyMs,
	)
	if h.collector != nil {
		h.collector.Track(analytics.SearchEvent{
			Type:      analytics.EventAutocomplete,
			Prefix:    prefix,
			Hits:      hits,
			LatencyMs: latencyMs,
			CacheHit:  cacheHit,
			Timestamp: time.Now().UTC(),
			RequestID: logger.RequestID(ctx),
		})
	}

	h.writeRawJSON(w, http.StatusOK, body)
}

// WordVector returns the sparse frequency vector for a word. An unindexed
// word yields an empty vector, not an error.
func (h *Handler) WordVector(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	if word == "" {
		h.writeError(w, http.StatusBadRequest, "word path segment is required")
		return
	}

	vec := h.ix.WordVector(word)
	entries := make([]sparseEntry, 0, vec.Len())
	for _, item := range vec.Items() {
		entries = append(entries, sparseEntry{Slot: item.Index, Frequency: item.Value})
	}
	h.writeJSON(w, http.StatusOK, vectorResponse{
		Word:    word,
		Entries: entries,
		Length:  vec.Len(),
	})
}

// GetDocument returns the stored content for an identifier.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("id")
	if !h.ix.HasDocument(docID) {
		h.writeAppError(w, apperrors.Newf(apperrors.ErrDocumentNotFound, http.StatusNotFound, "document %q not found", docID))
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"document_id": docID,
		"content":     h.ix.Document(docID),
	})
}

// ListDocuments returns all known identifiers in insertion order.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ids := h.ix.Documents()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"documents": ids,
		"total":     len(ids),
	})
}

// Stats returns index statistics.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.ix.Statistics())
}

// CacheStats reports query cache hit/miss counters.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "disabled"})
		return
	}
	hits, misses := h.cache.Stats()
	total := hits + misses
	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"hits":     hits,
		"misses":   misses,
		"total":    total,
		"hit_rate": fmt.Sprintf("%.1f%%", hitRate),
	})
}

// CacheInvalidate drops every cached query response.
func (h *Handler) CacheInvalidate(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		h.writeAppError(w, apperrors.New(apperrors.ErrCacheDisabled, http.StatusServiceUnavailable, "caching is disabled"))
		return
	}
	if err := h.cache.Invalidate(r.Context()); err != nil {
		h.logger.Error("cache invalidation failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "cache invalidation failed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
}

// AfterIngest is the callback the Kafka ingest consumer fires after indexing
// a document off-HTTP.
func (h *Handler) AfterIngest(ctx context.Context, docID string) {
	h.afterIndex(ctx)
}

// afterIndex updates gauges and drops stale cache entries after any add.
func (h *Handler) afterIndex(ctx context.Context) {
	if h.metrics != nil {
		stats := h.ix.Statistics()
		h.metrics.DocsIndexedTotal.Inc()
		h.metrics.IndexedWords.Set(float64(stats.UniqueWordCount))
		h.metrics.IndexedDocuments.Set(float64(stats.DocumentCount))
	}
	if h.cache != nil {
		if err := h.cache.Invalidate(ctx); err != nil {
			h.logger.Error("cache invalidation after index failed", "error", err)
		}
	}
}

// cachedJSON runs computeFn through the query cache when one is configured,
// otherwise directly.
func (h *Handler) cachedJSON(ctx context.Context, kind, term string, limit int, computeFn func() (any, error)) ([]byte, bool, error) {
	if h.cache != nil {
		return h.cache.GetOrCompute(ctx, kind, term, limit, computeFn)
	}
	result, err := computeFn()
	if err != nil {
		return nil, false, err
	}
	body, err := json.Marshal(result)
	if err != nil {
		return nil, false, err
	}
	return body, false, nil
}

func (h *Handler) observeSearch(hits int, cacheHit bool, start time.Time) {
	if h.metrics == nil {
		return
	}
	resultType := "hit"
	if hits == 0 {
		resultType = "zero_result"
	}
	h.metrics.SearchesTotal.WithLabelValues(resultType).Inc()
	cacheStatus := "miss"
	if cacheHit {
		cacheStatus = "hit"
	}
	h.metrics.SearchLatency.WithLabelValues(cacheStatus).Observe(time.Since(start).Seconds())
	if cacheHit {
		h.metrics.CacheHitsTotal.Inc()
	} else if h.cache != nil {
		h.metrics.CacheMissesTotal.Inc()
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) writeAppError(w http.ResponseWriter, err error) {
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	h.writeError(w, apperrors.HTTPStatusCode(err), message)
}
