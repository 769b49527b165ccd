package engine

import (
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/clock"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/config"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/orderbook"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

// bookTop caches the last-emitted top-of-book state so the engine can
// tell whether a BookTop event is warranted.
type bookTop struct {
	bidPrice price.Ticks
	bidQty   int64
	askPrice price.Ticks
	askQty   int64
}

func topOf(side *orderbook.SideBook) (price.Ticks, int64) {
	best := side.Best()
	if best == nil {
		return price.NoPrice, 0
	}
	return best.Price, best.TotalQty
}

// SubmitRequest is a fully-populated order as Submit expects it.
// Status and the FIFO pointers are the engine's concern, not the
// caller's.
type SubmitRequest struct {
	ID    uint64
	Side  orderbook.Side
	Type  orderbook.Type
	Price price.Ticks // ignored for Market
	Qty   int64
}

// Engine is the matching engine for a single symbol: a book, a
// registry for O(1) cancel/replace, an event ring, and the book-top
// cache. It allocates no Orders on the hot path: Submit reuses a
// pooled Order from its arena and only returns it to the pool once
// the order leaves the book for good.
type Engine struct {
	cfg   config.Config
	clock clock.Source

	bids *orderbook.SideBook
	asks *orderbook.SideBook
	reg  *orderbook.Registry
	ring *events.Ring

	top bookTop

	arena []orderbook.Order
	free  []*orderbook.Order
}

// New builds an Engine from cfg and a time source. cfg's zero fields
// are filled with defaults.
func New(cfg config.Config, clk clock.Source) *Engine {
	cfg = cfg.WithDefaults()
	e := &Engine{
		cfg:   cfg,
		clock: clk,
		bids:  orderbook.NewSideBook(orderbook.Buy),
		asks:  orderbook.NewSideBook(orderbook.Sell),
		reg:   orderbook.NewRegistry(cfg.MaxOrders),
		ring:  events.NewRing(cfg.RingSize),
		top:   bookTop{bidPrice: price.NoPrice, askPrice: price.NoPrice},
	}
	e.arena = make([]orderbook.Order, cfg.MaxOrders)
	e.free = make([]*orderbook.Order, cfg.MaxOrders)
	for i := range e.arena {
		e.free[i] = &e.arena[i]
	}
	return e
}

func (e *Engine) allocOrder() *orderbook.Order {
	if len(e.free) == 0 {
		return nil
	}
	o := e.free[len(e.free)-1]
	e.free = e.free[:len(e.free)-1]
	return o
}

func (e *Engine) freeOrder(o *orderbook.Order) {
	*o = orderbook.Order{}
	e.free = append(e.free, o)
}

func (e *Engine) sideBook(s orderbook.Side) *orderbook.SideBook {
	if s == orderbook.Buy {
		return e.bids
	}
	return e.asks
}

func (e *Engine) oppositeBook(s orderbook.Side) *orderbook.SideBook {
	if s == orderbook.Buy {
		return e.asks
	}
	return e.bids
}

// PollEvents drains every event queued since the last call, in FIFO
// order. A second call with no intervening operation returns empty.
func (e *Engine) PollEvents() []events.Event {
	return e.ring.Poll()
}

// BestBidAsk returns the cached top-of-book snapshot.
func (e *Engine) BestBidAsk() events.Event {
	return events.NewBookTop(e.top.bidPrice, e.top.bidQty, e.top.askPrice, e.top.askQty, e.clock.Now())
}

// GetDepth aggregates the top n levels per side. Read-only: no
// mutation, no events.
func (e *Engine) GetDepth(n int) orderbook.Depth {
	return orderbook.Depth{
		Bids: orderbook.Snapshot(e.bids, n),
		Asks: orderbook.Snapshot(e.asks, n),
	}
}

// maybeEmitBookTop compares the cached top-of-book to the current
// best on both sides and emits at most one BookTop event if either
// side's price or aggregate quantity changed; per-fill changes that
// return to the same best are collapsed into nothing.
func (e *Engine) maybeEmitBookTop(ts int64) {
	bidPrice, bidQty := topOf(e.bids)
	askPrice, askQty := topOf(e.asks)

	if bidPrice == e.top.bidPrice && bidQty == e.top.bidQty &&
		askPrice == e.top.askPrice && askQty == e.top.askQty {
		return
	}

	e.top = bookTop{bidPrice: bidPrice, bidQty: bidQty, askPrice: askPrice, askQty: askQty}
	e.ring.Push(events.NewBookTop(bidPrice, bidQty, askPrice, askQty, ts))
}
