// Package ingest feeds the indexer from a Kafka document topic, so
// documents can arrive without going through the HTTP API.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/searchlite/searchlite/internal/indexer"
	"github.com/searchlite/searchlite/pkg/kafka"
)

// DocumentEvent is the Kafka message payload for one document to index.
type DocumentEvent struct {
	DocumentID  string    `json:"document_id"`
	Content     string    `json:"content"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Consumer wraps a Kafka consumer that drives the indexer.
type Consumer struct {
	consumer *kafka.Consumer
	logger   *slog.Logger
}

// New creates a Consumer backed by the given Kafka consumer.
func New(kafkaConsumer *kafka.Consumer) *Consumer {
	return &Consumer{
		consumer: kafkaConsumer,
		logger:   slog.Default().With("component", "ingest-consumer"),
	}
}

// Start begins consuming. It blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("ingest consumer starting")
	return c.consumer.Start(ctx)
}

// HandleMessage returns a Kafka MessageHandler that indexes every document
// event. An empty document_id gets a generated identifier, the same as the
// HTTP path. The onIndexed callback (may be nil) fires after each add so the
// caller can invalidate caches and update gauges.
func HandleMessage(ix *indexer.Indexer, onIndexed func(ctx context.Context, docID string)) kafka.MessageHandler {
	logger := slog.Default().With("component", "ingest-consumer")
	return func(ctx context.Context, key []byte, value []byte) error {
		event, err := kafka.DecodeJSON[DocumentEvent](value)
		if err != nil {
			logger.Error("failed to decode document event",
				"error", err,
				"key", string(key),
			)
			return nil
		}

		docID := ix.AddDocument(event.Content, event.DocumentID)
		logger.Info("document indexed from topic", "doc_id", docID)
		if onIndexed != nil {
			onIndexed(ctx, docID)
		}
		return nil
	}
}
