package analytics

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/searchlite/searchlite/pkg/kafka"
)

// AggregatedStats is the queryable summary of all analytics events seen so
// far.
type AggregatedStats struct {
	TotalSearches      int64       `json:"total_searches"`
	TotalAutocompletes int64       `json:"total_autocompletes"`
	TotalDocsIndexed   int64       `json:"total_docs_indexed"`
	CacheHits          int64       `json:"cache_hits"`
	CacheMisses        int64       `json:"cache_misses"`
	ZeroResultCount    int64       `json:"zero_result_count"`
	AvgLatencyMs       float64     `json:"avg_latency_ms"`
	P50LatencyMs       int64       `json:"p50_latency_ms"`
	P95LatencyMs       int64       `json:"p95_latency_ms"`
	P99LatencyMs       int64       `json:"p99_latency_ms"`
	TopWords           []WordCount `json:"top_words"`
	ZeroResultWords    []WordCount `json:"zero_result_words"`
	QueriesPerMinute   float64     `json:"queries_per_minute"`
}

// WordCount pairs a searched word with how often it was queried.
type WordCount struct {
	Word  string `json:"word"`
	Count int64  `json:"count"`
}

// Aggregator consumes analytics events from Kafka and keeps running
// aggregates in memory.
type Aggregator struct {
	mu              sync.RWMutex
	totalSearches   atomic.Int64
	totalAutocomps  atomic.Int64
	totalDocIndexed atomic.Int64
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
	zeroResults     atomic.Int64
	latencies       []int64
	wordCounts      map[string]int64
	zeroResultWords map[string]int64
	startTime       time.Time

	consumer *kafka.Consumer
	logger   *slog.Logger
}

// NewAggregator creates an Aggregator fed by the given consumer. The
// consumer may be nil when events are recorded directly (tests, console).
func NewAggregator(consumer *kafka.Consumer) *Aggregator {
	return &Aggregator{
		latencies:       make([]int64, 0, 10000),
		wordCounts:      make(map[string]int64),
		zeroResultWords: make(map[string]int64),
		startTime:       time.Now(),
		consumer:        consumer,
		logger:          slog.Default().With("component", "analytics-aggregator"),
	}
}

// SetConsumer installs the Kafka consumer Start will run. It exists so the
// consumer's handler can be built around the aggregator itself.
func (a *Aggregator) SetConsumer(consumer *kafka.Consumer) {
	a.consumer = consumer
}

// Start blocks consuming events until ctx is cancelled.
func (a *Aggregator) Start(ctx context.Context) error {
	a.logger.Info("analytics aggregator starting")
	return a.consumer.Start(ctx)
}

// HandleEvent returns a Kafka MessageHandler that decodes and records
// analytics events into agg.
func HandleEvent(agg *Aggregator) kafka.MessageHandler {
	return func(ctx context.Context, key []byte, value []byte) error {
		event, err := kafka.DecodeJSON[SearchEvent](value)
		if err == nil && event.Type != EventIndexDoc && event.Type != "" {
			agg.RecordSearchEvent(event)
			return nil
		}
		idxEvent, idxErr := kafka.DecodeJSON[IndexEvent](value)
		if idxErr != nil || idxEvent.Type != EventIndexDoc {
			agg.logger.Error("failed to decode analytics event", "error", err)
			return nil
		}
		agg.RecordIndexEvent(idxEvent)
		return nil
	}
}

// RecordSearchEvent folds one search or autocomplete event into the
// aggregates.
func (a *Aggregator) RecordSearchEvent(event SearchEvent) {
	word := event.Word
	if event.Type == EventAutocomplete {
		a.totalAutocomps.Add(1)
		word = event.Prefix
	} else {
		a.totalSearches.Add(1)
	}

	if event.CacheHit {
		a.cacheHits.Add(1)
	} else {
		a.cacheMisses.Add(1)
	}
	if event.Hits == 0 {
		a.zeroResults.Add(1)
	}

	a.mu.Lock()
	a.latencies = append(a.latencies, event.LatencyMs)
	a.wordCounts[word]++
	if event.Hits == 0 {
		a.zeroResultWords[word]++
	}
	a.mu.Unlock()
}

// RecordIndexEvent folds one document-add event into the aggregates.
func (a *Aggregator) RecordIndexEvent(event IndexEvent) {
	a.totalDocIndexed.Add(1)
}

// Stats snapshots the current aggregates.
func (a *Aggregator) Stats() AggregatedStats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stats := AggregatedStats{
		TotalSearches:      a.totalSearches.Load(),
		TotalAutocompletes: a.totalAutocomps.Load(),
		TotalDocsIndexed:   a.totalDocIndexed.Load(),
		CacheHits:          a.cacheHits.Load(),
		CacheMisses:        a.cacheMisses.Load(),
		ZeroResultCount:    a.zeroResults.Load(),
	}

	if len(a.latencies) > 0 {
		sorted := make([]int64, len(a.latencies))
		copy(sorted, a.latencies)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var total int64
		for _, l := range sorted {
			total += l
		}
		stats.AvgLatencyMs = float64(total) / float64(len(sorted))
		stats.P50LatencyMs = percentile(sorted, 0.50)
		stats.P95LatencyMs = percentile(sorted, 0.95)
		stats.P99LatencyMs = percentile(sorted, 0.99)
	}

	stats.TopWords = topCounts(a.wordCounts, 10)
	stats.ZeroResultWords = topCounts(a.zeroResultWords, 10)

	minutes := time.Since(a.startTime).Minutes()
	if minutes > 0 {
		stats.QueriesPerMinute = float64(stats.TotalSearches+stats.TotalAutocompletes) / minutes
	}
	return stats
}

func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

func topCounts(counts map[string]int64, n int) []WordCount {
	out := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
