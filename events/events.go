// Package events defines the matching engine's output schema: a single
// tagged-variant record type, read back through one drain function
// (Ring.Poll). Consumers switch on Kind rather than walking a class
// hierarchy, per the engine's design notes.
package events

import "github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"

// Kind tags which fields of an Event are meaningful.
type Kind uint8

const (
	Accept Kind = iota
	Reject
	Trade
	Cancel
	Replace
	BookTop
)

func (k Kind) String() string {
	switch k {
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	case Trade:
		return "Trade"
	case Cancel:
		return "Cancel"
	case Replace:
		return "Replace"
	case BookTop:
		return "BookTop"
	default:
		return "Unknown"
	}
}

// Reason is the taxonomy of Reject causes.
type Reason uint8

const (
	ReasonNone Reason = iota
	DuplicateID
	CapacityExceeded
	InvalidOrder
	UnfillableFOK
	MarketOnEmptyBook
)

func (r Reason) String() string {
	switch r {
	case DuplicateID:
		return "DuplicateId"
	case CapacityExceeded:
		return "CapacityExceeded"
	case InvalidOrder:
		return "InvalidOrder"
	case UnfillableFOK:
		return "UnfillableFOK"
	case MarketOnEmptyBook:
		return "MarketOnEmptyBook"
	default:
		return "None"
	}
}

// Event is the one shape every emitted record takes. Only the fields
// relevant to Kind are populated; the rest are zero.
type Event struct {
	Kind Kind
	Ts   int64

	// Accept, Reject, Cancel, Replace: the order the event is about.
	// Trade: the taker's id.
	OrderID uint64

	// Trade only: the resting maker's id.
	MakerID uint64

	// Trade: execution price (the maker's resting price).
	// Replace: the order's new price.
	Price price.Ticks

	// Trade: filled quantity.
	// Cancel: quantity that was still resting.
	// Replace: the order's new quantity.
	Qty int64

	// Reject only.
	Reason Reason

	// BookTop only.
	BestBid price.Ticks
	BidQty  int64
	BestAsk price.Ticks
	AskQty  int64
}

// NewAccept builds an Accept event.
func NewAccept(id uint64, ts int64) Event {
	return Event{Kind: Accept, Ts: ts, OrderID: id}
}

// NewReject builds a Reject event.
func NewReject(id uint64, reason Reason, ts int64) Event {
	return Event{Kind: Reject, Ts: ts, OrderID: id, Reason: reason}
}

// NewTrade builds a Trade event.
func NewTrade(takerID, makerID uint64, p price.Ticks, qty int64, ts int64) Event {
	return Event{Kind: Trade, Ts: ts, OrderID: takerID, MakerID: makerID, Price: p, Qty: qty}
}

// NewCancel builds a Cancel event.
func NewCancel(id uint64, remaining int64, ts int64) Event {
	return Event{Kind: Cancel, Ts: ts, OrderID: id, Qty: remaining}
}

// NewReplace builds a Replace event.
func NewReplace(id uint64, newPrice price.Ticks, newQty int64, ts int64) Event {
	return Event{Kind: Replace, Ts: ts, OrderID: id, Price: newPrice, Qty: newQty}
}

// NewBookTop builds a BookTop event.
func NewBookTop(bestBid price.Ticks, bidQty int64, bestAsk price.Ticks, askQty int64, ts int64) Event {
	return Event{Kind: BookTop, Ts: ts, BestBid: bestBid, BidQty: bidQty, BestAsk: bestAsk, AskQty: askQty}
}
