package orderbook

// Registry maps an order id to the order itself, which carries its own
// side and PriceLevel pointer (Order.level). There's no separate
// locator struct because the intrusive FIFO node already is one: O(1)
// lookup by id, and the node's own prev/next pointers give O(1)
// removal from its level without a scan.
type Registry struct {
	byID map[uint64]*Order
}

// NewRegistry builds an empty registry sized for cap resting orders.
func NewRegistry(cap int) *Registry {
	return &Registry{byID: make(map[uint64]*Order, cap)}
}

// Contains reports whether id is currently resting.
func (r *Registry) Contains(id uint64) bool {
	_, ok := r.byID[id]
	return ok
}

// Lookup returns the resting order for id, or nil if unknown.
func (r *Registry) Lookup(id uint64) *Order {
	return r.byID[id]
}

// Insert registers a newly-resting order. Callers must have already
// rejected duplicate ids before reaching this point.
func (r *Registry) Insert(o *Order) {
	r.byID[o.ID] = o
}

// Remove unregisters id. No-op if unknown.
func (r *Registry) Remove(id uint64) {
	delete(r.byID, id)
}

// Len reports the number of resting orders.
func (r *Registry) Len() int {
	return len(r.byID)
}
