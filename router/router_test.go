package router

import (
	"testing"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/clock"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/config"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/engine"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/orderbook"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

func TestAddSymbolIsolatesEngines(t *testing.T) {
	r := New(config.Config{MaxOrders: 16, RingSize: 64, TickSize: 0.01}, clock.NewSimulated(0))

	if !r.AddSymbol("AAA") {
		t.Fatal("AddSymbol(AAA) returned false")
	}
	if !r.AddSymbol("BBB") {
		t.Fatal("AddSymbol(BBB) returned false")
	}
	if r.AddSymbol("AAA") {
		t.Error("re-adding AAA should return false")
	}

	if !r.Submit("AAA", engine.SubmitRequest{ID: 1, Side: orderbook.Buy, Type: orderbook.Limit, Price: price.Ticks(100), Qty: 5}) {
		t.Fatal("submit into AAA failed")
	}

	depthA := r.GetDepth("AAA", 5)
	if len(depthA.Bids) != 1 {
		t.Errorf("AAA depth = %+v, want one resting bid", depthA)
	}
	depthB := r.GetDepth("BBB", 5)
	if len(depthB.Bids) != 0 {
		t.Errorf("BBB depth = %+v, want empty (symbols must not share state)", depthB)
	}
}

func TestUnknownSymbolOperationsFail(t *testing.T) {
	r := New(config.Config{}, clock.NewSimulated(0))

	if r.Submit("GHOST", engine.SubmitRequest{ID: 1}) {
		t.Error("submit to unregistered symbol should return false")
	}
	if r.Cancel("GHOST", 1) {
		t.Error("cancel on unregistered symbol should return false")
	}
	if r.Replace("GHOST", 1, 0, 0) {
		t.Error("replace on unregistered symbol should return false")
	}
	if evs := r.PollEvents("GHOST"); evs != nil {
		t.Errorf("poll_events on unregistered symbol = %v, want nil", evs)
	}
}

func TestGetSymbols(t *testing.T) {
	r := New(config.Config{}, clock.NewSimulated(0))
	r.AddSymbol("AAA")
	r.AddSymbol("BBB")

	got := map[string]bool{}
	for _, s := range r.GetSymbols() {
		got[s] = true
	}
	if !got["AAA"] || !got["BBB"] || len(got) != 2 {
		t.Errorf("GetSymbols = %v, want {AAA, BBB}", got)
	}
}
