package inventory

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want StockStatus
	}{
		{"below min", Item{Quantity: 3, MinThreshold: 10}, StockLow},
		{"at min is low", Item{Quantity: 10, MinThreshold: 10}, StockLow},
		{"just above min", Item{Quantity: 11, MinThreshold: 10}, StockNormal},
		{"above max", Item{Quantity: 101, MinThreshold: 10, MaxThreshold: 100}, StockOverstocked},
		{"at max is normal", Item{Quantity: 100, MinThreshold: 10, MaxThreshold: 100}, StockNormal},
		{"no max never overstocked", Item{Quantity: 100000, MinThreshold: 10}, StockNormal},
		{"default min applies", Item{Quantity: 10}, StockLow},
		{"default min boundary", Item{Quantity: 11}, StockNormal},
		{"zero quantity", Item{Quantity: 0, MinThreshold: 5}, StockLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.item); got != tc.want {
				t.Errorf("Classify(qty=%d, min=%d, max=%d) = %s, want %s",
					tc.item.Quantity, tc.item.MinThreshold, tc.item.MaxThreshold, got, tc.want)
			}
		})
	}
}

func TestClassifyPartition(t *testing.T) {
	// Every quantity maps to exactly one status.
	for qty := 0; qty <= 150; qty++ {
		it := Item{Quantity: qty, MinThreshold: 20, MaxThreshold: 100}
		st := Classify(it)
		if st != StockLow && st != StockNormal && st != StockOverstocked {
			t.Fatalf("qty %d: unknown status %q", qty, st)
		}
		if (st == StockLow) != (qty <= 20) {
			t.Fatalf("qty %d: low = %v, want %v", qty, st == StockLow, qty <= 20)
		}
		if (st == StockOverstocked) != (qty > 100) {
			t.Fatalf("qty %d: overstocked = %v, want %v", qty, st == StockOverstocked, qty > 100)
		}
	}
}

func TestExpiringSoon(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	in29 := now.Add(29 * 24 * time.Hour)
	in30 := now.Add(30 * 24 * time.Hour)
	in31 := now.Add(31 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name   string
		expiry *time.Time
		want   bool
	}{
		{"no expiry", nil, false},
		{"29 days out", &in29, true},
		{"exactly 30 days is not soon", &in30, false},
		{"31 days out", &in31, false},
		{"already expired", &past, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := Item{ExpiryDate: tc.expiry}
			if got := ExpiringSoon(it, now); got != tc.want {
				t.Errorf("ExpiringSoon = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if !Expired(Item{ExpiryDate: &past}, now) {
		t.Error("past expiry should be expired")
	}
	if Expired(Item{ExpiryDate: &future}, now) {
		t.Error("future expiry should not be expired")
	}
	if Expired(Item{}, now) {
		t.Error("nil expiry should not be expired")
	}
}
