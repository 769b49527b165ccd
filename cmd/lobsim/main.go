// Command lobsim is a demo CLI wiring a replay source into a matching
// engine, optionally journaling drained events and republishing them
// to Kafka for downstream consumers.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/clock"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/config"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/persistence/journal"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/replay"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/router"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/transport/kafkafeed"
)

func main() {
	var (
		symbol     = flag.String("symbol", "TEST", "symbol to replay into")
		csvPath    = flag.String("csv", "", "path to a CSV replay file (ignored if -kafka-topic is set; stdin if neither is set)")
		kafkaTopic = flag.String("kafka-topic", "", "Kafka topic to replay from instead of a CSV file")
		brokersCSV = flag.String("kafka-brokers", "localhost:9092", "comma-separated Kafka broker addresses")
		journalDir = flag.String("journal-dir", "", "directory for the pebble event journal (disabled if empty)")
		publishTo  = flag.String("publish-topic", "", "Kafka topic to publish drained events to (disabled if empty)")
		envPath    = flag.String("env", ".env", "optional .env file for LOB_* configuration overrides")
	)
	flag.Parse()

	cfg := config.LoadEnv(*envPath)
	log.Printf("[lobsim] config: max_orders=%d ring_size=%d tick_size=%v", cfg.MaxOrders, cfg.RingSize, cfg.TickSize)

	clk := clock.NewSimulated(0)
	rt := router.New(cfg, clk)
	if !rt.AddSymbol(*symbol) {
		log.Fatalf("[lobsim] symbol %q already registered", *symbol)
	}

	var jrnl *journal.Journal
	if *journalDir != "" {
		var err error
		jrnl, err = journal.Open(*journalDir)
		if err != nil {
			log.Fatalf("[journal] open failed: %v", err)
		}
		defer jrnl.Close()
	}

	var pub *kafkafeed.Publisher
	if *publishTo != "" {
		pub = kafkafeed.NewPublisher(splitCSV(*brokersCSV), *publishTo)
		defer pub.Close()
	}

	src, err := openSource(*csvPath, *kafkaTopic, splitCSV(*brokersCSV))
	if err != nil {
		log.Fatalf("[replay] %v", err)
	}
	defer src.Close()

	conv := price.NewConverter(cfg.TickSize)
	driver := replay.NewDriver(src, rt, clk, conv, *symbol)

	drained := 0
	n, err := driver.Run(func(batch []events.Event) error {
		drained += len(batch)
		if jrnl != nil {
			if err := jrnl.AppendAll(batch); err != nil {
				return err
			}
		}
		if pub != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := pub.Publish(ctx, *symbol, batch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("[replay] run failed after %d records: %v", n, err)
	}
	log.Printf("[replay] replayed %d records, drained %d events", n, drained)

	depth := rt.GetDepth(*symbol, 5)
	log.Printf("[lobsim] final depth: %d bid levels, %d ask levels", len(depth.Bids), len(depth.Asks))
}

func openSource(csvPath, kafkaTopic string, brokers []string) (replay.Source, error) {
	switch {
	case kafkaTopic != "":
		return replay.NewKafkaSource(brokers, kafkaTopic)
	case csvPath != "":
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		return replay.NewCSVSource(f, f), nil
	default:
		return replay.NewCSVSource(os.Stdin, nil), nil
	}
}

func splitCSV(s string) []string {
	return strings.Split(s, ",")
}
