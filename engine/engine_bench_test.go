package engine

import (
	"testing"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/clock"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/config"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/orderbook"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

func BenchmarkSubmitNonCrossing(b *testing.B) {
	clk := clock.NewSimulated(0)
	e := New(config.Config{MaxOrders: b.N + 1, RingSize: 1 << 12, TickSize: 0.01}, clk)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		side := orderbook.Buy
		if i%2 == 1 {
			side = orderbook.Sell
		}
		p := price.Ticks(9000 - i%50)
		if side == orderbook.Sell {
			p = price.Ticks(11000 + i%50)
		}
		e.Submit(SubmitRequest{ID: uint64(i + 1), Side: side, Type: orderbook.Limit, Price: p, Qty: 10})
		if e.ring.Len() > e.ring.Cap()-8 {
			e.PollEvents()
		}
	}
}

func BenchmarkSubmitCrossing(b *testing.B) {
	clk := clock.NewSimulated(0)
	e := New(config.Config{MaxOrders: b.N + 1, RingSize: 1 << 12, TickSize: 0.01}, clk)

	for i := 0; i < b.N; i++ {
		e.Submit(SubmitRequest{ID: uint64(i + 1), Side: orderbook.Sell, Type: orderbook.Limit, Price: price.Ticks(10000), Qty: 10})
		if e.ring.Len() > e.ring.Cap()-8 {
			e.PollEvents()
		}
	}
	e.PollEvents()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Submit(SubmitRequest{ID: uint64(b.N + i + 1), Side: orderbook.Buy, Type: orderbook.Limit, Price: price.Ticks(10000), Qty: 10})
		if e.ring.Len() > e.ring.Cap()-8 {
			e.PollEvents()
		}
	}
}

func BenchmarkCancel(b *testing.B) {
	clk := clock.NewSimulated(0)
	e := New(config.Config{MaxOrders: b.N + 1, RingSize: 1 << 12, TickSize: 0.01}, clk)

	for i := 0; i < b.N; i++ {
		e.Submit(SubmitRequest{ID: uint64(i + 1), Side: orderbook.Buy, Type: orderbook.Limit, Price: price.Ticks(9000 - i%1000), Qty: 10})
		if e.ring.Len() > e.ring.Cap()-8 {
			e.PollEvents()
		}
	}
	e.PollEvents()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Cancel(uint64(i + 1))
		if e.ring.Len() > e.ring.Cap()-8 {
			e.PollEvents()
		}
	}
}

func BenchmarkGetDepth(b *testing.B) {
	clk := clock.NewSimulated(0)
	e := New(config.Config{MaxOrders: 1 << 16, RingSize: 1 << 16, TickSize: 0.01}, clk)

	for i := 0; i < 1<<14; i++ {
		side := orderbook.Buy
		p := price.Ticks(9000 - i%1000)
		if i%2 == 1 {
			side = orderbook.Sell
			p = price.Ticks(11000 + i%1000)
		}
		e.Submit(SubmitRequest{ID: uint64(i + 1), Side: side, Type: orderbook.Limit, Price: p, Qty: 10})
	}
	e.PollEvents()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.GetDepth(10)
	}
}
