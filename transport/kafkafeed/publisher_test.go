package kafkafeed

import (
	"testing"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

func TestBuildMessagesEncodeDecodeSymmetry(t *testing.T) {
	batch := []events.Event{
		events.NewAccept(1, 100),
		events.NewTrade(2, 1, price.Ticks(10000), 5, 200),
	}

	msgs := buildMessages("TEST", batch)
	if len(msgs) != len(batch) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(batch))
	}

	for i, msg := range msgs {
		if string(msg.Key) != "TEST" {
			t.Errorf("message %d key = %q, want TEST", i, msg.Key)
		}
		got, err := events.Decode(msg.Value)
		if err != nil {
			t.Fatalf("Decode message %d: %v", i, err)
		}
		if got != batch[i] {
			t.Errorf("message %d decoded = %+v, want %+v", i, got, batch[i])
		}
	}
}
