// Package replay translates an external order-flow stream into
// engine operations dispatched through a router: an external
// collaborator, never a core concern.
package replay

import (
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/orderbook"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

// Action identifies which router operation a Record drives.
type Action uint8

const (
	Add Action = iota
	CancelAction
	ReplaceAction
)

// Record is one line of recorded order flow: timestamp, the action to
// take, and enough of an order to take it.
type Record struct {
	TimestampNs int64
	Action      Action
	OrderID     uint64
	Side        orderbook.Side
	Price       float64 // real units; converter applies TickSize
	Qty         int64
	Type        orderbook.Type
}

// Source yields Records one at a time. Next returns io.EOF once
// exhausted, matching bufio.Scanner / io.Reader conventions so
// CSVSource and KafkaSource compose with the same Driver.
type Source interface {
	Next() (Record, error)
	Close() error
}

// toTicks converts a Record's real-valued price field using conv,
// leaving the sentinel alone for Market orders.
func toTicks(conv price.Converter, r Record) price.Ticks {
	if r.Type == orderbook.Market {
		return price.NoPrice
	}
	return conv.ToTicks(r.Price)
}
