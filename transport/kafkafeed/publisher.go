// Package kafkafeed publishes drained engine events onto a Kafka
// topic for downstream consumers outside this repository. It is
// strictly downstream of PollEvents: a publish failure never mutates
// engine state.
package kafkafeed

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
)

// Publisher writes one Kafka message per event, keyed by symbol so a
// downstream consumer can partition or filter by it.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher builds a Publisher writing to topic across brokers.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// Publish writes one message per event in batch, value = the same
// binary encoding the journal uses, key = symbol.
func (p *Publisher) Publish(ctx context.Context, symbol string, batch []events.Event) error {
	if len(batch) == 0 {
		return nil
	}
	if err := p.writer.WriteMessages(ctx, buildMessages(symbol, batch)...); err != nil {
		return fmt.Errorf("kafkafeed: publish %s: %w", symbol, err)
	}
	return nil
}

// buildMessages translates a drained batch into Kafka messages. Split
// out from Publish so the wire encoding can be tested without a
// broker.
func buildMessages(symbol string, batch []events.Event) []kafka.Message {
	msgs := make([]kafka.Message, len(batch))
	for i, e := range batch {
		msgs[i] = kafka.Message{
			Key:   []byte(symbol),
			Value: events.Encode(e),
		}
	}
	return msgs
}

// Close flushes and releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
