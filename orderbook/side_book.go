package orderbook

import "github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"

// SideBook is one side (bids or asks) of the order book: an RBTree of
// price levels plus the knowledge of which end of the tree is "best"
// for this side. Bids are best-high, asks are best-low.
type SideBook struct {
	Side Side
	tree *RBTree
}

// NewSideBook builds an empty side book for the given side.
func NewSideBook(side Side) *SideBook {
	return &SideBook{Side: side, tree: NewRBTree()}
}

// Best returns the best level on this side, or nil if the side is
// empty.
func (b *SideBook) Best() *PriceLevel {
	if b.Side == Buy {
		return b.tree.MaxLevel()
	}
	return b.tree.MinLevel()
}

// Level returns the level at price, or nil.
func (b *SideBook) Level(p price.Ticks) *PriceLevel {
	return b.tree.FindLevel(p)
}

// GetOrCreate returns the level at price, creating it if absent.
func (b *SideBook) GetOrCreate(p price.Ticks) *PriceLevel {
	return b.tree.UpsertLevel(p)
}

// DropIfEmpty removes the level at price if it has no resting orders.
func (b *SideBook) DropIfEmpty(p price.Ticks) {
	if lvl := b.tree.FindLevel(p); lvl != nil && lvl.Empty() {
		b.tree.DeleteLevel(p)
	}
}

// ForEachBestFirst visits levels starting from the best, walking away
// from it, until fn returns false. This is the order both get_depth
// and the FOK liquidity precheck need.
func (b *SideBook) ForEachBestFirst(fn func(*PriceLevel) bool) {
	if b.Side == Buy {
		b.tree.ForEachDescending(fn)
	} else {
		b.tree.ForEachAscending(fn)
	}
}

// Size reports the number of distinct price levels resting on this
// side.
func (b *SideBook) Size() int { return b.tree.Size() }
