package stats

import (
	"testing"
	"time"

	"zoo-ops/internal/domain/animals"
	"zoo-ops/internal/domain/feeding"
	"zoo-ops/internal/domain/inventory"
	"zoo-ops/internal/domain/medical"
)

func TestComputeAnimalBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	as := []animals.Animal{
		{Status: animals.StatusHealthy, Category: animals.CategoryMammals},
		{Status: animals.StatusHealthy, Category: animals.CategoryMammals},
		{Status: animals.StatusSick, Category: animals.CategoryBirds},
		{Status: animals.StatusInjured, Category: animals.CategoryReptiles},
		{Status: animals.StatusRecovering, Category: animals.CategoryBirds},
		{Status: animals.StatusDeceased},
	}

	d := Compute(as, 3, nil, nil, nil, now)

	if d.TotalAnimals != 6 {
		t.Fatalf("TotalAnimals = %d, want 6", d.TotalAnimals)
	}
	if d.HealthyAnimals != 2 {
		t.Errorf("HealthyAnimals = %d, want 2", d.HealthyAnimals)
	}
	if d.SickAnimals != 2 {
		t.Errorf("SickAnimals = %d, want 2 (sick + injured)", d.SickAnimals)
	}
	if d.HealthyAnimals+d.SickAnimals > d.TotalAnimals {
		t.Errorf("healthy (%d) + sick (%d) exceeds total (%d)", d.HealthyAnimals, d.SickAnimals, d.TotalAnimals)
	}
	if d.TotalEnclosures != 3 {
		t.Errorf("TotalEnclosures = %d, want 3", d.TotalEnclosures)
	}
	if d.CategoryCounts[animals.CategoryMammals] != 2 || d.CategoryCounts[animals.CategoryBirds] != 2 {
		t.Errorf("CategoryCounts = %v", d.CategoryCounts)
	}
}

func TestComputeInventory(t *testing.T) {
	now := time.Now()
	items := []inventory.Item{
		{Category: inventory.CategoryFood, Quantity: 5, MinThreshold: 10},
		{Category: inventory.CategoryFood, Quantity: 50, MinThreshold: 10},
		{Category: inventory.CategoryMedicine, Quantity: 8}, // default threshold applies
	}

	d := Compute(nil, 0, items, nil, nil, now)

	if d.LowInventoryItems != 2 {
		t.Errorf("LowInventoryItems = %d, want 2", d.LowInventoryItems)
	}
	if d.InventoryByCategory[inventory.CategoryFood] != 2 {
		t.Errorf("InventoryByCategory = %v", d.InventoryByCategory)
	}
}

func TestComputeUpcomingCheckups(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	in3 := now.Add(3 * 24 * time.Hour)
	in10 := now.Add(10 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	records := []medical.Record{
		{NextCheckup: &in3},
		{NextCheckup: &in10},
		{NextCheckup: &past},
		{NextCheckup: nil},
	}

	d := Compute(nil, 0, nil, records, nil, now)
	if d.UpcomingCheckups != 1 {
		t.Errorf("UpcomingCheckups = %d, want 1 (only within next 7 days)", d.UpcomingCheckups)
	}
}

func TestComputeFeedingsDue(t *testing.T) {
	now := time.Now()
	stale := now.Add(-30 * time.Hour)
	fresh := now.Add(-2 * time.Hour)

	schedules := []feeding.Schedule{
		{IsActive: true, Frequency: feeding.FrequencyDaily, LastFed: &stale},
		{IsActive: true, Frequency: feeding.FrequencyDaily, LastFed: &fresh},
		{IsActive: false, Frequency: feeding.FrequencyDaily, LastFed: &stale},
	}

	d := Compute(nil, 0, nil, nil, schedules, now)
	if d.FeedingsDue != 1 {
		t.Errorf("FeedingsDue = %d, want 1 (inactive never due)", d.FeedingsDue)
	}
}

func TestComputeEmpty(t *testing.T) {
	d := Compute(nil, 0, nil, nil, nil, time.Now())
	if d.TotalAnimals != 0 || d.LowInventoryItems != 0 || d.FeedingsDue != 0 {
		t.Errorf("empty compute produced non-zero counters: %+v", d)
	}
	if d.CategoryCounts == nil || d.InventoryByCategory == nil {
		t.Error("maps must be initialized so they encode as {} not null")
	}
}
