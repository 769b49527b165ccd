package journal

import (
	"testing"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/events"
	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

func TestAppendScanRoundTrip(t *testing.T) {
	j, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	want := []events.Event{
		events.NewAccept(1, 100),
		events.NewTrade(2, 1, price.Ticks(10000), 5, 200),
		events.NewCancel(3, 8, 300),
	}
	if err := j.AppendAll(want); err != nil {
		t.Fatalf("AppendAll: %v", err)
	}

	var got []events.Event
	err = j.ScanFrom(0, func(seq uint64, e events.Event) error {
		if seq != uint64(len(got)) {
			t.Errorf("scan seq = %d, want %d", seq, len(got))
		}
		got = append(got, e)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanFrom: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("scanned %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScanFromMidSequence(t *testing.T) {
	j, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	for i := uint64(0); i < 5; i++ {
		if err := j.Append(events.NewAccept(i, int64(i))); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	var seqs []uint64
	err = j.ScanFrom(3, func(seq uint64, e events.Event) error {
		seqs = append(seqs, seq)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanFrom: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 3 || seqs[1] != 4 {
		t.Errorf("seqs = %v, want [3 4]", seqs)
	}
}

func TestReopenResumesSequence(t *testing.T) {
	dir := t.TempDir()

	j1, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := j1.Append(events.NewAccept(1, 100)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := j1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	j2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j2.Close()

	if err := j2.Append(events.NewAccept(2, 200)); err != nil {
		t.Fatalf("Append after reopen: %v", err)
	}

	var ids []uint64
	err = j2.ScanFrom(0, func(seq uint64, e events.Event) error {
		ids = append(ids, e.OrderID)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanFrom: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("ids = %v, want [1 2]", ids)
	}
}
