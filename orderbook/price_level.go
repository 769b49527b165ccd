package orderbook

import "github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"

// PriceLevel is a FIFO queue of resting orders at one price. Head is
// the oldest order (fills first under price-time priority); tail is
// where new arrivals enqueue.
type PriceLevel struct {
	Price      price.Ticks
	head       *Order
	tail       *Order
	TotalQty   int64
	OrderCount int
}

// Head returns the oldest resting order, or nil if the level is empty.
func (p *PriceLevel) Head() *Order { return p.head }

// Empty reports whether the level has no resting orders.
func (p *PriceLevel) Empty() bool { return p.head == nil }

// Enqueue appends an order to the tail, preserving arrival order,
// the time-priority half of price-time priority.
func (p *PriceLevel) Enqueue(o *Order) {
	o.level = p
	o.next = nil
	o.prev = p.tail
	if p.head == nil {
		p.head = o
	} else {
		p.tail.next = o
	}
	p.tail = o
	p.TotalQty += o.Qty
	p.OrderCount++
}

// PopHead removes and returns the oldest order. Used when a maker is
// fully filled during matching.
func (p *PriceLevel) PopHead() *Order {
	o := p.head
	if o == nil {
		return nil
	}
	p.remove(o)
	return o
}

// Remove detaches an order from the level given only a handle to the
// order itself (O(1), no scan); used by cancel and by replace when
// the order leaves its current level. The order's remaining quantity
// is subtracted from the level's aggregate before unlinking.
func (p *PriceLevel) Remove(o *Order) {
	p.remove(o)
}

func (p *PriceLevel) remove(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	p.TotalQty -= o.Qty
	p.OrderCount--
	o.next, o.prev, o.level = nil, nil, nil
}

// Fill decrements a resting order's quantity by qty, keeping the
// level's aggregate in sync. The caller pops the order separately once
// it reaches zero; Fill alone never unlinks it.
func (p *PriceLevel) Fill(o *Order, qty int64) {
	o.Qty -= qty
	p.TotalQty -= qty
}

// ReduceInPlace lowers the order's resting quantity without touching
// its position in the queue, used by replace-in-place, which must
// preserve time priority.
func (p *PriceLevel) ReduceInPlace(o *Order, newQty int64) {
	p.TotalQty -= o.Qty - newQty
	o.Qty = newQty
}
