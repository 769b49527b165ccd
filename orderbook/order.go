package orderbook

import "github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"

// Side is the direction of an order: the buy side rests in descending
// price order, the sell side in ascending order.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "Buy"
	}
	return "Sell"
}

// Type is the order's execution style.
type Type int

const (
	Limit Type = iota
	Market
	IOC
	FOK
)

func (t Type) String() string {
	switch t {
	case Limit:
		return "Limit"
	case Market:
		return "Market"
	case IOC:
		return "IOC"
	case FOK:
		return "FOK"
	default:
		return "Unknown"
	}
}

// Status tracks an order through its lifecycle:
// New -> (Rejected | Resting | Done); Resting -> (Filled | Canceled |
// Replaced -> Resting | Done). Only Resting orders are addressable by
// id in the Registry.
type Status int

const (
	Resting Status = iota
	Done
	Canceled
	Rejected
)

// Order is the engine's domain entity. It doubles as the intrusive
// FIFO node for the PriceLevel it rests in: next/prev are nil
// whenever the order is not currently linked into a level.
type Order struct {
	ID       uint64
	Side     Side
	Type     Type
	Price    price.Ticks // price.NoPrice for Market
	Qty      int64       // remaining quantity
	SubmitTs int64       // nanoseconds, stamped at submit and again when a replace re-queues it
	Status   Status

	level *PriceLevel
	next  *Order
	prev  *Order
}

// Remaining reports the order's unfilled quantity.
func (o *Order) Remaining() int64 { return o.Qty }

// Next returns the next-younger order at the same price level, or
// nil at the tail. Read-only traversal helper for snapshots.
func (o *Order) Next() *Order { return o.next }

// Level returns the PriceLevel the order currently rests in, or nil
// if it is not resting.
func (o *Order) Level() *PriceLevel { return o.level }
