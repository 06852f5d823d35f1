package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	"github.com/takweol/casematch/pkg/errors"
)

// WriterInterface abstracts kafka.Writer for testing.
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes JSON events.  A Producer built from an empty broker
// list is a no-op, so callers never branch on whether messaging is
// configured.
type Producer struct {
	writer WriterInterface
	logger logging.Logger
	closed atomic.Bool
	sent   atomic.Int64
	failed atomic.Int64
}

// NewProducer builds a producer from cfg.  With no brokers configured the
// returned producer silently drops events.
func NewProducer(cfg config.KafkaConfig, log logging.Logger) *Producer {
	if !cfg.Enabled() {
		log.Info("kafka disabled, events will be dropped")
		return &Producer{logger: log}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.Acks),
		MaxAttempts:  max(cfg.MaxRetries, 1),
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return &Producer{writer: writer, logger: log}
}

// newProducerWithWriter injects a writer, for tests.
func newProducerWithWriter(w WriterInterface, log logging.Logger) *Producer {
	return &Producer{writer: w, logger: log}
}

func requiredAcks(acks string) kafka.RequiredAcks {
	switch acks {
	case "none":
		return kafka.RequireNone
	case "all":
		return kafka.RequireAll
	default:
		return kafka.RequireOne
	}
}

// Publish encodes event as JSON and writes it to topic, keyed by key for
// per-entity ordering.
func (p *Producer) Publish(ctx context.Context, topic, key string, event interface{}) error {
	if p.closed.Load() {
		return errors.New(errors.CodeMessagingError, "producer closed")
	}
	if p.writer == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "failed to encode event")
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.failed.Add(1)
		return errors.Wrap(err, errors.CodeMessagingError, "failed to publish event").
			WithDetail("topic=" + topic)
	}

	p.sent.Add(1)
	p.logger.Debug("event published",
		logging.String("topic", topic),
		logging.String("key", key),
	)
	return nil
}

// Sent reports how many events were published.
func (p *Producer) Sent() int64 { return p.sent.Load() }

// Failed reports how many publish attempts failed.
func (p *Producer) Failed() int64 { return p.failed.Load() }

// Close flushes and shuts the writer down.  Idempotent.
func (p *Producer) Close() error {
	if p.closed.Swap(true) || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
