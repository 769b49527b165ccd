package events

import (
	"encoding/binary"
	"errors"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

// EncodedLen is the fixed wire size of one Event: [kind:1][ts:8]
// [orderID:8][makerID:8][price:8][qty:8][reason:1][bestBid:8][bidQty:8]
// [bestAsk:8][askQty:8]. Every Event encodes to the same length
// regardless of Kind (unused fields are zero), the same fixed-width
// record shape infra/wal/exit uses for its own entries.
const EncodedLen = 1 + 8 + 8 + 8 + 8 + 8 + 1 + 8 + 8 + 8 + 8

// Encode serializes an Event for the journal and the Kafka publisher,
// both of which need the same durable representation.
func Encode(e Event) []byte {
	buf := make([]byte, EncodedLen)
	buf[0] = byte(e.Kind)
	binary.BigEndian.PutUint64(buf[1:9], uint64(e.Ts))
	binary.BigEndian.PutUint64(buf[9:17], e.OrderID)
	binary.BigEndian.PutUint64(buf[17:25], e.MakerID)
	binary.BigEndian.PutUint64(buf[25:33], uint64(e.Price))
	binary.BigEndian.PutUint64(buf[33:41], uint64(e.Qty))
	buf[41] = byte(e.Reason)
	binary.BigEndian.PutUint64(buf[42:50], uint64(e.BestBid))
	binary.BigEndian.PutUint64(buf[50:58], uint64(e.BidQty))
	binary.BigEndian.PutUint64(buf[58:66], uint64(e.BestAsk))
	binary.BigEndian.PutUint64(buf[66:74], uint64(e.AskQty))
	return buf
}

// Decode reverses Encode. Returns an error if b is not exactly
// EncodedLen bytes.
func Decode(b []byte) (Event, error) {
	if len(b) != EncodedLen {
		return Event{}, errors.New("events: invalid encoded length")
	}
	return Event{
		Kind:    Kind(b[0]),
		Ts:      int64(binary.BigEndian.Uint64(b[1:9])),
		OrderID: binary.BigEndian.Uint64(b[9:17]),
		MakerID: binary.BigEndian.Uint64(b[17:25]),
		Price:   price.Ticks(binary.BigEndian.Uint64(b[25:33])),
		Qty:     int64(binary.BigEndian.Uint64(b[33:41])),
		Reason:  Reason(b[41]),
		BestBid: price.Ticks(binary.BigEndian.Uint64(b[42:50])),
		BidQty:  int64(binary.BigEndian.Uint64(b[50:58])),
		BestAsk: price.Ticks(binary.BigEndian.Uint64(b[58:66])),
		AskQty:  int64(binary.BigEndian.Uint64(b[66:74])),
	}, nil
}
