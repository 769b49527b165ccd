// Package orderbook implements the core data model of the matching
// engine: the fixed-point Order record, per-price FIFO queues, and a
// red-black tree keyed by price ticks for each side of the book. It
// has no notion of matching, events, or time; those live in the
// engine package, which composes two SideBooks (one per side) plus a
// Registry for O(1) id lookup on top of this package's types.
package orderbook
