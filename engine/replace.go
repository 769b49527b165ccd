package engine

import (
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

// Replace changes a resting order's price and/or quantity in place
// under the same id. Two paths:
//
//   - Same price, new qty no larger than the current remainder: the
//     order shrinks without leaving the queue, preserving its time
//     priority.
//   - Anything else (new price, or a larger qty): the order leaves its
//     current level and re-enters at the back of the new one, losing
//     priority. If the new price now crosses, it matches immediately
//     just like a fresh submit.
//
// Returns false and emits nothing if id is unknown.
func (e *Engine) Replace(id uint64, newPrice price.Ticks, newQty int64) bool {
	o := e.reg.Lookup(id)
	if o == nil {
		return false
	}
	ts := e.clock.Now()

	if newPrice == o.Price && newQty > 0 && newQty <= o.Qty {
		o.Level().ReduceInPlace(o, newQty)
		e.ring.Push(events.NewReplace(id, newPrice, newQty, ts))
		e.maybeEmitBookTop(ts)
		return true
	}

	side := o.Side
	oldLevel := o.Level()
	oldLevel.Remove(o)
	if oldLevel.Empty() {
		e.sideBook(side).DropIfEmpty(oldLevel.Price)
	}
	e.reg.Remove(id)

	e.ring.Push(events.NewReplace(id, newPrice, newQty, ts))

	o.Price = newPrice
	o.Qty = newQty
	o.SubmitTs = ts

	if o.Qty > 0 {
		e.match(o, e.oppositeBook(side), ts)
	}

	if o.Qty > 0 {
		lvl := e.sideBook(side).GetOrCreate(o.Price)
		lvl.Enqueue(o)
		e.reg.Insert(o)
	} else {
		e.freeOrder(o)
	}

	e.maybeEmitBookTop(ts)
	return true
}
