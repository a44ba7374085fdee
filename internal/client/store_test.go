package client

import (
	"testing"
	"time"

	"zoo-ops/internal/domain/animals"
	"zoo-ops/internal/domain/inventory"
)

func TestStoreUpdateMergesByID(t *testing.T) {
	s := NewStore()
	s.SetAnimals([]Animal{
		{ID: "a1", Name: "Luna", Status: animals.StatusHealthy},
		{ID: "a2", Name: "Rex", Status: animals.StatusHealthy},
	})

	s.UpdateAnimal(Animal{ID: "a2", Name: "Rex", Status: animals.StatusSick})

	got := s.Animals()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1].Status != animals.StatusSick {
		t.Errorf("a2 status = %s, want sick", got[1].Status)
	}
	if got[0].Status != animals.StatusHealthy {
		t.Errorf("a1 status = %s, should be untouched", got[0].Status)
	}
}

func TestStoreUpdateMissingIsNoOp(t *testing.T) {
	s := NewStore()
	s.SetAnimals([]Animal{{ID: "a1", Name: "Luna"}})

	s.UpdateAnimal(Animal{ID: "ghost", Name: "Ghost"})

	got := s.Animals()
	if len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("collection = %+v, want only a1", got)
	}
}

func TestStoreRemoveThenUpdateDoesNotResurrect(t *testing.T) {
	s := NewStore()
	s.SetAnimals([]Animal{{ID: "a1", Name: "Luna"}})
	s.SetInventory([]InventoryItem{{ID: "i1", Name: "hay", Quantity: 50}})

	s.RemoveAnimal("a1")
	s.UpdateAnimal(Animal{ID: "a1", Name: "Luna", Status: animals.StatusSick})
	if got := s.Animals(); len(got) != 0 {
		t.Errorf("stale animal update resurrected the row: %+v", got)
	}

	s.RemoveInventoryItem("i1")
	s.UpdateInventoryItem(InventoryItem{ID: "i1", Name: "hay", Quantity: 99})
	if got := s.Inventory(); len(got) != 0 {
		t.Errorf("stale inventory update resurrected the row: %+v", got)
	}
}

func TestStoreAddAndRemoveInventory(t *testing.T) {
	s := NewStore()
	s.AddInventoryItem(InventoryItem{ID: "i1", Name: "hay"})
	s.AddInventoryItem(InventoryItem{ID: "i2", Name: "syringes"})

	s.RemoveInventoryItem("i1")

	got := s.Inventory()
	if len(got) != 1 || got[0].ID != "i2" {
		t.Errorf("inventory = %+v, want only i2", got)
	}

	// removing an uncached id changes nothing
	s.RemoveInventoryItem("ghost")
	if got := s.Inventory(); len(got) != 1 {
		t.Errorf("inventory = %+v, want still one item", got)
	}
}

func TestStoreLowStockReclassifies(t *testing.T) {
	s := NewStore()
	s.SetInventory([]InventoryItem{
		{ID: "i1", Name: "hay", Quantity: 2, MinThreshold: 5},
		{ID: "i2", Name: "pellets", Quantity: 50, MinThreshold: 5},
		{ID: "i3", Name: "gauze", Quantity: 10}, // default threshold
	})

	low := s.LowStock()
	if len(low) != 2 {
		t.Fatalf("LowStock = %+v, want i1 and i3", low)
	}
	if low[0].ID != "i1" || low[1].ID != "i3" {
		t.Errorf("LowStock ids = %s, %s, want i1, i3", low[0].ID, low[1].ID)
	}

	// a local restock merge changes the classification without a refetch
	s.UpdateInventoryItem(InventoryItem{ID: "i1", Name: "hay", Quantity: 40, MinThreshold: 5})
	if low := s.LowStock(); len(low) != 1 || low[0].ID != "i3" {
		t.Errorf("LowStock after merge = %+v, want only i3", low)
	}
}

func TestStoreStockStatus(t *testing.T) {
	s := NewStore()
	s.SetInventory([]InventoryItem{
		{ID: "i1", Quantity: 2, MinThreshold: 5},
		{ID: "i2", Quantity: 200, MinThreshold: 5, MaxThreshold: 100},
	})

	if st, ok := s.StockStatus("i1"); !ok || st != inventory.StockLow {
		t.Errorf("StockStatus(i1) = %s, %v, want low, true", st, ok)
	}
	if st, ok := s.StockStatus("i2"); !ok || st != inventory.StockOverstocked {
		t.Errorf("StockStatus(i2) = %s, %v, want overstocked, true", st, ok)
	}
	if _, ok := s.StockStatus("ghost"); ok {
		t.Error("StockStatus(ghost) should report not cached")
	}
}

func TestStoreExpiringSoon(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	soon := now.Add(10 * 24 * time.Hour)
	far := now.Add(60 * 24 * time.Hour)

	s := NewStore()
	s.SetInventory([]InventoryItem{
		{ID: "i1", ExpiryDate: &soon},
		{ID: "i2", ExpiryDate: &far},
		{ID: "i3"},
	})

	got := s.ExpiringSoon(now)
	if len(got) != 1 || got[0].ID != "i1" {
		t.Errorf("ExpiringSoon = %+v, want only i1", got)
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	s := NewStore()
	s.SetAnimals([]Animal{{ID: "a1", Name: "Luna"}})

	got := s.Animals()
	got[0].Name = "mutated"

	if s.Animals()[0].Name != "Luna" {
		t.Error("mutating a returned slice must not affect the cache")
	}
}
