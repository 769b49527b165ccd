// Package journal durably appends drained engine events to an
// embedded key-value store, keyed by a monotonically increasing
// sequence number. It is write-only from the engine's perspective:
// nothing in this repository rehydrates a book from journal contents;
// rehydration is explicitly out of scope.
package journal

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
)

// Journal wraps a pebble database holding one key per event, in
// sequence order.
type Journal struct {
	db  *pebble.DB
	seq sequencer
}

// Open opens (creating if absent) a pebble database rooted at dir.
func Open(dir string) (*Journal, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // durability is the point
	})
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", dir, err)
	}
	j := &Journal{db: db}
	if err := j.recoverNext(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: recover sequence: %w", err)
	}
	return j, nil
}

// Close releases the underlying database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append encodes e and writes it under the next sequence number,
// synchronously, with pebble.Sync durability on every write.
func (j *Journal) Append(e events.Event) error {
	seq := j.seq.Next()
	if err := j.db.Set(keyFor(seq), events.Encode(e), pebble.Sync); err != nil {
		return fmt.Errorf("journal: append seq %d: %w", seq, err)
	}
	return nil
}

// AppendAll appends a batch of events in order, the shape PollEvents
// hands back after a drain.
func (j *Journal) AppendAll(batch []events.Event) error {
	for _, e := range batch {
		if err := j.Append(e); err != nil {
			return err
		}
	}
	return nil
}

// ScanFrom iterates every journaled event with sequence >= seq, in
// key order, calling fn for each. fn's error stops the scan and is
// returned to the caller (the persistence analogue of PollEvents).
func (j *Journal) ScanFrom(seq uint64, fn func(seq uint64, e events.Event) error) error {
	iter, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: keyFor(seq),
		UpperBound: keyFor(j.seq.Current()),
	})
	if err != nil {
		return fmt.Errorf("journal: scan from %d: %w", seq, err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		s := parseKey(iter.Key())
		e, err := events.Decode(iter.Value())
		if err != nil {
			return fmt.Errorf("journal: decode seq %d: %w", s, err)
		}
		if err := fn(s, e); err != nil {
			return err
		}
	}
	return iter.Error()
}

// recoverNext positions the next sequence number one past the
// highest key already present, so a reopened journal keeps appending
// without clobbering prior entries.
func (j *Journal) recoverNext() error {
	iter, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: keyFor(0),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	if iter.Last() {
		j.seq.Reset(parseKey(iter.Key()) + 1)
	}
	return iter.Error()
}

func keyFor(seq uint64) []byte {
	buf := make([]byte, len("event/")+8)
	copy(buf, "event/")
	binary.BigEndian.PutUint64(buf[len("event/"):], seq)
	return buf
}

func parseKey(k []byte) uint64 {
	return binary.BigEndian.Uint64(k[len("event/"):])
}
