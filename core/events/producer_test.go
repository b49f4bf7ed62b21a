package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestConfig_BrokerList(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, Config{Brokers: " a:9092, ,b:9092 "}.BrokerList())
	assert.Empty(t, Config{}.BrokerList())
}

func TestNew(t *testing.T) {
	assert.IsType(t, NopPublisher{}, New(Config{Enabled: false, Brokers: "a:9092"}, zap.NewNop()))
	assert.IsType(t, NopPublisher{}, New(Config{Enabled: true}, zap.NewNop()))

	p := New(Config{Enabled: true, Brokers: "a:9092", Topic: "t", Compression: "none"}, zap.NewNop())
	assert.IsType(t, &Producer{}, p)
	assert.NoError(t, p.Close())
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "afmg.reconcile", zap.NewNop())

	err := p.Publish(context.Background(),
		&CollectionEvent{EventType: EventCollectionCreated, RunID: "r1", Collection: "Cultures", Mode: "create", Created: 2},
		&CollectionEvent{EventType: EventCollectionBlocked, RunID: "r1", Collection: "Burgs", Mode: "blocked", Warnings: []string{"Burgs: 3 materialized, 4 eligible"}},
	)
	require.NoError(t, err)
	require.Len(t, w.messages, 2)

	msg := w.messages[0]
	assert.Equal(t, "afmg.reconcile", msg.Topic)
	assert.Equal(t, "Cultures", string(msg.Key))
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, EventCollectionCreated, string(msg.Headers[0].Value))

	var decoded CollectionEvent
	require.NoError(t, json.Unmarshal(w.messages[1].Value, &decoded))
	assert.Equal(t, "Burgs", decoded.Collection)
	assert.Len(t, decoded.Warnings, 1)
	assert.False(t, decoded.Timestamp.IsZero())

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProducer_PublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newProducer(w, "t", zap.NewNop())

	assert.NoError(t, p.Publish(context.Background()))
	err := p.Publish(context.Background(), &CollectionEvent{Collection: "Burgs"})
	assert.ErrorContains(t, err, "broker down")
}
