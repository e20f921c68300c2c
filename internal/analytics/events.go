// Package analytics collects query and indexing events, ships them through
// Kafka, and aggregates them into serviceable statistics. The whole pipeline
// is optional; the engine works identically with it disabled.
package analytics

import "time"

type EventType string

const (
	EventSearch       EventType = "search"
	EventAutocomplete EventType = "autocomplete"
	EventZeroResult   EventType = "zero_result"
	EventIndexDoc     EventType = "index_document"
)

// SearchEvent describes one query against the index: either an exact-word
// search (Word set) or an autocompletion (Prefix set).
type SearchEvent struct {
	Type      EventType `json:"type"`
	Word      string    `json:"word,omitempty"`
	Prefix    string    `json:"prefix,omitempty"`
	Hits      int       `json:"hits"`
	LatencyMs int64     `json:"latency_ms"`
	CacheHit  bool      `json:"cache_hit"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
}

// IndexEvent describes one document add.
type IndexEvent struct {
	Type          EventType `json:"type"`
	DocumentID    string    `json:"document_id"`
	DistinctWords int       `json:"distinct_words"`
	ContentBytes  int       `json:"content_bytes"`
	LatencyMs     int64     `json:"latency_ms"`
	Timestamp     time.Time `json:"timestamp"`
}
