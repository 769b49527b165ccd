package replay

import (
	"fmt"

	"github.com/IBM/sarama"
)

// KafkaSource reads replay records from a single partition of a
// Kafka topic, reusing the CSV line schema as the message value so
// the same parser serves both file and topic replay. It consumes
// order-flow records only: the binary-encoded events that
// transport/kafkafeed publishes (with kafka-go) are not parsed here.
type KafkaSource struct {
	consumer sarama.Consumer
	partCons sarama.PartitionConsumer
}

// NewKafkaSource connects to brokers and starts consuming topic's
// partition 0 from the oldest retained offset.
func NewKafkaSource(brokers []string, topic string) (*KafkaSource, error) {
	cfg := sarama.NewConfig()
	cfg.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: kafka consumer: %w", err)
	}

	partCons, err := consumer.ConsumePartition(topic, 0, sarama.OffsetOldest)
	if err != nil {
		consumer.Close()
		return nil, fmt.Errorf("replay: consume partition: %w", err)
	}

	return &KafkaSource{consumer: consumer, partCons: partCons}, nil
}

// Next blocks until the next message arrives, or returns the
// consumer's reported error. Kafka topics have no natural EOF: Next
// never returns io.EOF, so Driver.Run over a KafkaSource returns only
// on a consume error or once the partition consumer is closed.
func (s *KafkaSource) Next() (Record, error) {
	select {
	case msg, ok := <-s.partCons.Messages():
		if !ok {
			return Record{}, fmt.Errorf("replay: kafka source closed")
		}
		return parseCSVLine(string(msg.Value))
	case err := <-s.partCons.Errors():
		return Record{}, fmt.Errorf("replay: kafka consume: %w", err)
	}
}

// Close releases the partition consumer and the underlying client.
func (s *KafkaSource) Close() error {
	if err := s.partCons.Close(); err != nil {
		return fmt.Errorf("replay: close partition consumer: %w", err)
	}
	return s.consumer.Close()
}
