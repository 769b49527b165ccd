package replay

import (
	"fmt"
	"io"
	"log"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/clock"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/engine"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/router"
)

// Driver pulls Records from a Source, advances a simulated clock to
// each record's timestamp, and issues the corresponding router
// operation against symbol.
type Driver struct {
	src    Source
	rt     *router.Router
	clk    *clock.Simulated
	conv   price.Converter
	symbol string
}

// NewDriver builds a Driver reading from src and dispatching into
// rt's symbol, converting real prices with conv.
func NewDriver(src Source, rt *router.Router, clk *clock.Simulated, conv price.Converter, symbol string) *Driver {
	return &Driver{src: src, rt: rt, clk: clk, conv: conv, symbol: symbol}
}

// Run replays every record from src until it reports io.EOF, logging
// and skipping any record router rejects at the dispatch level (an
// unknown symbol, or a cancel/replace whose order id is not resting).
// After each record it drains the symbol's
// event ring and, if onBatch is non-nil and the drain is non-empty,
// hands the batch to onBatch. onBatch's error aborts the replay. This
// keeps the ring drained between bursts rather than letting a long
// replay accumulate past its capacity and hit a fatal overflow; pass
// a nil onBatch only when the caller drains some other way.
func (d *Driver) Run(onBatch func([]events.Event) error) (int, error) {
	count := 0
	for {
		rec, err := d.src.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("replay: read record %d: %w", count, err)
		}

		d.clk.Set(rec.TimestampNs)

		if !d.dispatch(rec) {
			log.Printf("[replay] record %d (order %d) rejected at dispatch", count, rec.OrderID)
		}
		count++

		if onBatch != nil {
			if batch := d.rt.PollEvents(d.symbol); len(batch) > 0 {
				if err := onBatch(batch); err != nil {
					return count, fmt.Errorf("replay: handle batch after record %d: %w", count, err)
				}
			}
		}
	}
}

func (d *Driver) dispatch(rec Record) bool {
	switch rec.Action {
	case Add:
		return d.rt.Submit(d.symbol, engine.SubmitRequest{
			ID:    rec.OrderID,
			Side:  rec.Side,
			Type:  rec.Type,
			Price: toTicks(d.conv, rec),
			Qty:   rec.Qty,
		})
	case CancelAction:
		return d.rt.Cancel(d.symbol, rec.OrderID)
	case ReplaceAction:
		return d.rt.Replace(d.symbol, rec.OrderID, d.conv.ToTicks(rec.Price), rec.Qty)
	default:
		return false
	}
}
