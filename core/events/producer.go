package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventCollectionCreated = "collection.created"
	EventCollectionUpdated = "collection.updated"
	EventCollectionBlocked = "collection.blocked"
)

// CollectionEvent describes the outcome of reconciling one collection.
type CollectionEvent struct {
	EventType  string    `json:"event_type"`
	RunID      string    `json:"run_id"`
	Seed       string    `json:"seed,omitempty"`
	Collection string    `json:"collection"`
	Mode       string    `json:"mode"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Warnings   []string  `json:"warnings,omitempty"`
	DryRun     bool      `json:"dry_run,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher emits reconciliation events.
type Publisher interface {
	Publish(ctx context.Context, events ...*CollectionEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes events to a Kafka topic.
type Producer struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

// New returns a Kafka producer, or a no-op publisher when publishing is disabled.
func New(cfg Config, logger *zap.Logger) Publisher {
	brokers := cfg.BrokerList()
	if !cfg.Enabled || len(brokers) == 0 {
		return NopPublisher{}
	}

	compression := kafka.Snappy
	switch cfg.Compression {
	case "gzip":
		compression = kafka.Gzip
	case "lz4":
		compression = kafka.Lz4
	case "zstd":
		compression = kafka.Zstd
	case "none":
		compression = 0
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           time.Duration(cfg.BatchTimeoutMs) * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		Compression:            compression,
		AllowAutoTopicCreation: true,
	}

	return newProducer(writer, cfg.Topic, logger)
}

func newProducer(writer messageWriter, topic string, logger *zap.Logger) *Producer {
	return &Producer{writer: writer, topic: topic, logger: logger}
}

// Publish writes events as one batch, keyed by collection so a collection's events stay ordered.
func (p *Producer) Publish(ctx context.Context, events ...*CollectionEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, len(events))
	for i, event := range events {
		if event.Timestamp.IsZero() {
			event.Timestamp = time.Now().UTC()
		}

		data, err := json.Marshal(event)
		if err != nil {
			return err
		}

		messages[i] = kafka.Message{
			Topic: p.topic,
			Key:   []byte(event.Collection),
			Value: data,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(event.EventType)},
				{Key: "run_id", Value: []byte(event.RunID)},
			},
		}
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error("Failed to publish reconcile events", zap.Int("batch_size", len(events)), zap.Error(err))
		return err
	}

	p.logger.Debug("Published reconcile events", zap.Int("batch_size", len(events)))
	return nil
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...*CollectionEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
