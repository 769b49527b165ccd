package orderbook

import "github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"

// Level is a read-only aggregate snapshot of one price level.
type Level struct {
	Price price.Ticks
	Qty   int64
	Count int
}

// Depth aggregates the top N levels per side. Produced by
// get_depth; never mutates the book and emits no events.
type Depth struct {
	Bids []Level
	Asks []Level
}

// Snapshot walks at most n levels from the best outward and collects
// them into a Level slice.
func Snapshot(b *SideBook, n int) []Level {
	if n <= 0 {
		return nil
	}
	out := make([]Level, 0, n)
	b.ForEachBestFirst(func(pl *PriceLevel) bool {
		out = append(out, Level{Price: pl.Price, Qty: pl.TotalQty, Count: pl.OrderCount})
		return len(out) < n
	})
	return out
}
