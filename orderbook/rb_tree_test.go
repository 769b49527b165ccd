package orderbook

import (
	"testing"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"
)

func TestRBTreeInsertFindDelete(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(100)
	if pl1 == nil {
		t.Fatal("UpsertLevel failed")
	}
	if pl2 := tree.FindLevel(100); pl2 != pl1 {
		t.Error("FindLevel did not return same PriceLevel")
	}

	tree.UpsertLevel(200)
	if tree.MinLevel().Price != price.Ticks(100) {
		t.Error("expected min=100")
	}
	if tree.MaxLevel().Price != price.Ticks(200) {
		t.Error("expected max=200")
	}

	if !tree.DeleteLevel(100) {
		t.Error("DeleteLevel failed")
	}
	if tree.FindLevel(100) != nil {
		t.Error("expected level 100 to be gone")
	}
}

func TestDeleteNonExistentLevel(t *testing.T) {
	tree := NewRBTree()
	if tree.DeleteLevel(123) {
		t.Error("expected false when deleting non-existent level")
	}
}

func TestEmptyTreeMinMax(t *testing.T) {
	tree := NewRBTree()
	if tree.MinLevel() != nil || tree.MaxLevel() != nil {
		t.Error("expected nil for min/max on empty tree")
	}
}

func TestUpsertDuplicateLevel(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(150)
	pl2 := tree.UpsertLevel(150)
	if pl1 != pl2 {
		t.Error("Upsert should return the same node for duplicate level")
	}
}

func TestForEachOrderingAndBalance(t *testing.T) {
	tree := NewRBTree()
	prices := []price.Ticks{500, 100, 900, 300, 700, 200, 800, 400, 600}
	for _, p := range prices {
		tree.UpsertLevel(p)
	}
	if tree.Size() != len(prices) {
		t.Fatalf("expected size %d, got %d", len(prices), tree.Size())
	}

	var asc []price.Ticks
	tree.ForEachAscending(func(pl *PriceLevel) bool {
		asc = append(asc, pl.Price)
		return true
	})
	for i := 1; i < len(asc); i++ {
		if asc[i] <= asc[i-1] {
			t.Fatalf("ascending walk out of order at %d: %v", i, asc)
		}
	}

	var desc []price.Ticks
	tree.ForEachDescending(func(pl *PriceLevel) bool {
		desc = append(desc, pl.Price)
		return true
	})
	for i := 1; i < len(desc); i++ {
		if desc[i] >= desc[i-1] {
			t.Fatalf("descending walk out of order at %d: %v", i, desc)
		}
	}

	for _, p := range prices {
		if !tree.DeleteLevel(p) {
			t.Fatalf("expected to delete level %d", p)
		}
	}
	if tree.Size() != 0 {
		t.Fatalf("expected empty tree after deleting all levels, got size %d", tree.Size())
	}
}
