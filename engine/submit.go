package engine

import (
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/orderbook"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

// crosses reports whether a taker on takerSide with takerPrice can
// trade against a resting level priced at levelPrice. Buy crosses an
// ask at or below its limit; sell crosses a bid at or above its
// limit. Callers handling Market orders skip this check entirely:
// Market crosses anything.
func crosses(takerSide orderbook.Side, takerPrice, levelPrice price.Ticks) bool {
	if takerSide == orderbook.Buy {
		return takerPrice >= levelPrice
	}
	return takerPrice <= levelPrice
}

// min returns the smaller of two quantities.
func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// availableLiquidity sums resting quantity on the opposite side that
// the taker could reach, stopping as soon as a level no longer
// crosses or the requested quantity is already covered. Used by the
// FOK precheck (a pure read, no mutation).
func availableLiquidity(opposite *orderbook.SideBook, takerSide orderbook.Side, takerPrice price.Ticks, want int64) int64 {
	var available int64
	opposite.ForEachBestFirst(func(lvl *orderbook.PriceLevel) bool {
		if !crosses(takerSide, takerPrice, lvl.Price) {
			return false
		}
		available += lvl.TotalQty
		return available < want
	})
	return available
}

// Submit processes a fully-populated order through validation,
// matching, and post-processing. It always returns true:
// the bool reports whether the *operation* was accepted by the
// engine, not whether the order itself rested or traded; a rejected
// order still returns true at this level, with the rejection visible
// only as a Reject event.
func (e *Engine) Submit(req SubmitRequest) bool {
	ts := e.clock.Now()

	if e.reg.Contains(req.ID) {
		e.ring.Push(events.NewReject(req.ID, events.DuplicateID, ts))
		return true
	}
	if req.Qty <= 0 {
		e.ring.Push(events.NewReject(req.ID, events.InvalidOrder, ts))
		return true
	}
	if req.Type != orderbook.Market && req.Price == price.NoPrice {
		e.ring.Push(events.NewReject(req.ID, events.InvalidOrder, ts))
		return true
	}
	if e.reg.Len() >= e.cfg.MaxOrders {
		e.ring.Push(events.NewReject(req.ID, events.CapacityExceeded, ts))
		return true
	}

	limitPrice := req.Price
	if req.Type == orderbook.Market {
		limitPrice = price.NoPrice
	}

	opposite := e.oppositeBook(req.Side)

	if req.Type == orderbook.FOK {
		if availableLiquidity(opposite, req.Side, limitPrice, req.Qty) < req.Qty {
			e.ring.Push(events.NewReject(req.ID, events.UnfillableFOK, ts))
			return true
		}
	}

	taker := e.allocOrder()
	if taker == nil {
		// Unreachable under the Len() >= MaxOrders guard above: the
		// arena holds MaxOrders slots and at most MaxOrders-1 are
		// resting at that check, leaving room for this one taker.
		// Kept as a hard stop rather than a panic in case that
		// invariant ever drifts.
		e.ring.Push(events.NewReject(req.ID, events.CapacityExceeded, ts))
		return true
	}
	*taker = orderbook.Order{
		ID:       req.ID,
		Side:     req.Side,
		Type:     req.Type,
		Price:    limitPrice,
		Qty:      req.Qty,
		SubmitTs: ts,
		Status:   orderbook.Resting,
	}

	e.ring.Push(events.NewAccept(req.ID, ts))

	e.match(taker, opposite, ts)

	switch taker.Type {
	case orderbook.Limit:
		if taker.Qty > 0 {
			own := e.sideBook(taker.Side)
			lvl := own.GetOrCreate(taker.Price)
			lvl.Enqueue(taker)
			e.reg.Insert(taker)
		} else {
			e.freeOrder(taker)
		}
	default: // Market, IOC, FOK never rest; residual is dropped silently
		e.freeOrder(taker)
	}

	e.maybeEmitBookTop(ts)
	return true
}

// match runs the price-time-priority loop: while the taker has
// remaining quantity and the best opposite level crosses, the head of
// that level (the oldest resting order, the maker) fills against the
// taker at the maker's price (price improvement for the taker).
func (e *Engine) match(taker *orderbook.Order, opposite *orderbook.SideBook, ts int64) {
	for taker.Qty > 0 {
		best := opposite.Best()
		if best == nil {
			return
		}
		if taker.Type != orderbook.Market && !crosses(taker.Side, taker.Price, best.Price) {
			return
		}

		maker := best.Head()
		fill := min(taker.Qty, maker.Qty)
		tradePrice := best.Price

		best.Fill(maker, fill)
		taker.Qty -= fill

		e.ring.Push(events.NewTrade(taker.ID, maker.ID, tradePrice, fill, ts))

		if maker.Qty == 0 {
			best.PopHead()
			e.reg.Remove(maker.ID)
			e.freeOrder(maker)
			if best.Empty() {
				opposite.DropIfEmpty(best.Price)
			}
		}
	}
}
