package engine

import "github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"

// Cancel removes a resting order by id. Returns false and emits
// nothing if id is unknown.
func (e *Engine) Cancel(id uint64) bool {
	o := e.reg.Lookup(id)
	if o == nil {
		return false
	}
	ts := e.clock.Now()

	remaining := o.Qty
	lvl := o.Level()
	side := o.Side
	lvl.Remove(o)
	if lvl.Empty() {
		e.sideBook(side).DropIfEmpty(lvl.Price)
	}
	e.reg.Remove(id)

	e.ring.Push(events.NewCancel(id, remaining, ts))
	e.freeOrder(o)

	e.maybeEmitBookTop(ts)
	return true
}
