// Package router fans a symbol string out to one independent Engine
// per symbol. There is no cross-symbol synchronization; order ids
// need not be unique across symbols, only within one.
package router

import (
	"sync"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/clock"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/config"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/engine"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/orderbook"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

// Router owns a map from symbol to engine instance. It adds no
// concurrency of its own beyond guarding the map: callers still must
// serialize access to any one symbol's engine, per the single-threaded
// discipline each Engine assumes.
type Router struct {
	mu   sync.RWMutex
	cfg  config.Config
	clk  clock.Source
	book map[string]*engine.Engine
}

// New builds an empty Router. cfg and clk are the defaults every
// symbol added via AddSymbol will use.
func New(cfg config.Config, clk clock.Source) *Router {
	return &Router{
		cfg:  cfg,
		clk:  clk,
		book: make(map[string]*engine.Engine),
	}
}

// AddSymbol registers a fresh engine for symbol. Returns false if the
// symbol is already registered.
func (r *Router) AddSymbol(symbol string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.book[symbol]; ok {
		return false
	}
	r.book[symbol] = engine.New(r.cfg, r.clk)
	return true
}

// GetSymbols lists every registered symbol, in no particular order.
func (r *Router) GetSymbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.book))
	for s := range r.book {
		out = append(out, s)
	}
	return out
}

func (r *Router) lookup(symbol string) *engine.Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.book[symbol]
}

// Submit dispatches to symbol's engine. Returns false if symbol is
// unregistered; this is a router-level failure distinct from any
// Reject event the engine itself might emit.
func (r *Router) Submit(symbol string, req engine.SubmitRequest) bool {
	e := r.lookup(symbol)
	if e == nil {
		return false
	}
	return e.Submit(req)
}

// Cancel dispatches to symbol's engine.
func (r *Router) Cancel(symbol string, id uint64) bool {
	e := r.lookup(symbol)
	if e == nil {
		return false
	}
	return e.Cancel(id)
}

// Replace dispatches to symbol's engine.
func (r *Router) Replace(symbol string, id uint64, newPrice price.Ticks, newQty int64) bool {
	e := r.lookup(symbol)
	if e == nil {
		return false
	}
	return e.Replace(id, newPrice, newQty)
}

// PollEvents drains symbol's event ring. Returns nil if symbol is
// unregistered.
func (r *Router) PollEvents(symbol string) []events.Event {
	e := r.lookup(symbol)
	if e == nil {
		return nil
	}
	return e.PollEvents()
}

// GetDepth reads symbol's top-n aggregated levels. Returns a zero
// Depth if symbol is unregistered.
func (r *Router) GetDepth(symbol string, n int) orderbook.Depth {
	e := r.lookup(symbol)
	if e == nil {
		return orderbook.Depth{}
	}
	return e.GetDepth(n)
}

// BestBidAsk reads symbol's cached top-of-book. Returns the zero
// Event if symbol is unregistered.
func (r *Router) BestBidAsk(symbol string) events.Event {
	e := r.lookup(symbol)
	if e == nil {
		return events.Event{}
	}
	return e.BestBidAsk()
}
