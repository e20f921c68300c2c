package analytics

import (
	"testing"
	"time"
)

func searchEvent(word string, hits int, latency int64, cacheHit bool) SearchEvent {
	return SearchEvent{
		Type:      EventSearch,
		Word:      word,
		Hits:      hits,
		LatencyMs: latency,
		CacheHit:  cacheHit,
		Timestamp: time.Now().UTC(),
	}
}

func TestAggregatorCounts(t *testing.T) {
	agg := NewAggregator(nil)

	agg.RecordSearchEvent(searchEvent("python", 3, 2, false))
	agg.RecordSearchEvent(searchEvent("python", 3, 1, true))
	agg.RecordSearchEvent(searchEvent("missing", 0, 4, false))
	agg.RecordSearchEvent(SearchEvent{Type: EventAutocomplete, Prefix: "py", Hits: 2, LatencyMs: 1})
	agg.RecordIndexEvent(IndexEvent{Type: EventIndexDoc, DocumentID: "d1"})

	stats := agg.Stats()
	if stats.TotalSearches != 3 {
		t.Errorf("TotalSearches = %d, want 3", stats.TotalSearches)
	}
	if stats.TotalAutocompletes != 1 {
		t.Errorf("TotalAutocompletes = %d, want 1", stats.TotalAutocompletes)
	}
	if stats.TotalDocsIndexed != 1 {
		t.Errorf("TotalDocsIndexed = %d, want 1", stats.TotalDocsIndexed)
	}
	if stats.CacheHits != 1 || stats.CacheMisses != 3 {
		t.Errorf("cache hits/misses = %d/%d, want 1/3", stats.CacheHits, stats.CacheMisses)
	}
	if stats.ZeroResultCount != 1 {
		t.Errorf("ZeroResultCount = %d, want 1", stats.ZeroResultCount)
	}
	if len(stats.ZeroResultWords) != 1 || stats.ZeroResultWords[0].Word != "missing" {
		t.Errorf("ZeroResultWords = %v, want [missing]", stats.ZeroResultWords)
	}
	if stats.TopWords[0].Word != "python" || stats.TopWords[0].Count != 2 {
		t.Errorf("TopWords = %v, want python first with count 2", stats.TopWords)
	}
}

func TestAggregatorLatencyPercentiles(t *testing.T) {
	agg := NewAggregator(nil)
	for i := int64(1); i <= 100; i++ {
		agg.RecordSearchEvent(searchEvent("w", 1, i, false))
	}
	stats := agg.Stats()
	if stats.P50LatencyMs < 45 || stats.P50LatencyMs > 55 {
		t.Errorf("P50 = %d, want near 50", stats.P50LatencyMs)
	}
	if stats.P95LatencyMs < 90 || stats.P95LatencyMs > 100 {
		t.Errorf("P95 = %d, want near 95", stats.P95LatencyMs)
	}
	if stats.AvgLatencyMs != 50.5 {
		t.Errorf("Avg = %f, want 50.5", stats.AvgLatencyMs)
	}
}

func TestTopCountsTiesBrokenByWord(t *testing.T) {
	counts := map[string]int64{"b": 2, "a": 2, "c": 5}
	got := topCounts(counts, 10)
	if got[0].Word != "c" || got[1].Word != "a" || got[2].Word != "b" {
		t.Errorf("topCounts order = %v, want c, a, b", got)
	}
}

func TestStatsEmptyAggregator(t *testing.T) {
	agg := NewAggregator(nil)
	stats := agg.Stats()
	if stats.AvgLatencyMs != 0 || stats.P99LatencyMs != 0 {
		t.Errorf("empty aggregator latency stats = %+v, want zeros", stats)
	}
	if len(stats.TopWords) != 0 {
		t.Errorf("TopWords = %v, want empty", stats.TopWords)
	}
}
