package analytics

import (
	"context"
	"log/slog"

	"github.com/searchlite/searchlite/pkg/kafka"
)

// Collector buffers analytics events in a channel and drains them from a
// background goroutine, either publishing to Kafka or folding them into a
// local aggregator. Track never blocks: when the buffer is full the event is
// dropped with a warning.
type Collector struct {
	producer *kafka.Producer
	local    *Aggregator
	eventCh  chan any
	logger   *slog.Logger
	done     chan struct{}
}

// NewCollector creates a Collector that publishes to Kafka.
func NewCollector(producer *kafka.Producer, bufferSize int) *Collector {
	return newCollector(producer, nil, bufferSize)
}

// NewLocalCollector creates a Collector that records events directly into
// agg, for running without Kafka.
func NewLocalCollector(agg *Aggregator, bufferSize int) *Collector {
	return newCollector(nil, agg, bufferSize)
}

func newCollector(producer *kafka.Producer, local *Aggregator, bufferSize int) *Collector {
	if bufferSize <= 0 {
		bufferSize = 10000
	}
	return &Collector{
		producer: producer,
		local:    local,
		eventCh:  make(chan any, bufferSize),
		logger:   slog.Default().With("component", "analytics-collector"),
		done:     make(chan struct{}),
	}
}

// Start launches the publish loop. It returns immediately; the loop runs
// until ctx is cancelled or Close is called.
func (c *Collector) Start(ctx context.Context) {
	go func() {
		defer close(c.done)
		for {
			select {
			case event, ok := <-c.eventCh:
				if !ok {
					return
				}
				c.dispatch(ctx, event)
			case <-ctx.Done():
				c.drainRemaining()
				return
			}
		}
	}()
	c.logger.Info("analytics collector started", "buffer_size", cap(c.eventCh))
}

// Track enqueues an event, dropping it when the buffer is full.
func (c *Collector) Track(event any) {
	select {
	case c.eventCh <- event:
	default:
		c.logger.Warn("analytics event dropped (buffer full)")
	}
}

// Close stops accepting events and waits for the publish loop to finish.
func (c *Collector) Close() {
	close(c.eventCh)
	<-c.done
}

func (c *Collector) drainRemaining() {
	for {
		select {
		case event, ok := <-c.eventCh:
			if !ok {
				return
			}
			c.dispatch(context.Background(), event)
		default:
			return
		}
	}
}

func (c *Collector) dispatch(ctx context.Context, event any) {
	if c.local != nil {
		switch e := event.(type) {
		case SearchEvent:
			c.local.RecordSearchEvent(e)
		case IndexEvent:
			c.local.RecordIndexEvent(e)
		default:
			c.logger.Warn("unknown analytics event type dropped")
		}
		return
	}
	if err := c.producer.Publish(ctx, kafka.Event{
		Key:   "analytics",
		Value: event,
	}); err != nil {
		c.logger.Error("failed to publish analytics event", "error", err)
	}
}
