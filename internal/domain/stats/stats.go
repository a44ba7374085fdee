// Package stats derives the dashboard snapshot from the live collections.
// Nothing here is persisted; every number is recomputed per request.
package stats

import (
	"time"

	"zoo-ops/internal/domain/animals"
	"zoo-ops/internal/domain/feeding"
	"zoo-ops/internal/domain/inventory"
	"zoo-ops/internal/domain/medical"
)

// CheckupWindow is how far ahead a scheduled next checkup counts as upcoming.
const CheckupWindow = 7 * 24 * time.Hour

type Dashboard struct {
	TotalAnimals      int `json:"totalAnimals"`
	HealthyAnimals    int `json:"healthyAnimals"`
	SickAnimals       int `json:"sickAnimals"`
	TotalEnclosures   int `json:"totalEnclosures"`
	LowInventoryItems int `json:"lowInventoryItems"`
	UpcomingCheckups  int `json:"upcomingCheckups"`
	FeedingsDue       int `json:"feedingsDue"`

	CategoryCounts      map[animals.Category]int   `json:"categoryCounts"`
	InventoryByCategory map[inventory.Category]int `json:"inventoryByCategory"`
}

// Compute builds the dashboard from full snapshots of each collection.
// Sick counts sick and injured animals; recovering, quarantine and deceased
// fall into neither bucket.
func Compute(
	as []animals.Animal,
	enclosureCount int,
	items []inventory.Item,
	records []medical.Record,
	schedules []feeding.Schedule,
	now time.Time,
) Dashboard {
	d := Dashboard{
		TotalAnimals:        len(as),
		TotalEnclosures:     enclosureCount,
		CategoryCounts:      make(map[animals.Category]int),
		InventoryByCategory: make(map[inventory.Category]int),
	}

	for _, a := range as {
		switch a.Status {
		case animals.StatusHealthy:
			d.HealthyAnimals++
		case animals.StatusSick, animals.StatusInjured:
			d.SickAnimals++
		}
		if a.Category != "" {
			d.CategoryCounts[a.Category]++
		}
	}

	for _, it := range items {
		if inventory.IsLowStock(it) {
			d.LowInventoryItems++
		}
		if it.Category != "" {
			d.InventoryByCategory[it.Category]++
		}
	}

	for _, rec := range records {
		if upcomingCheckup(rec, now) {
			d.UpcomingCheckups++
		}
	}

	for _, s := range schedules {
		if feeding.IsOverdue(s, now) {
			d.FeedingsDue++
		}
	}

	return d
}

// upcomingCheckup reports a next-checkup date inside the next week.
// Past-due checkups are excluded; they surface through the medical views.
func upcomingCheckup(rec medical.Record, now time.Time) bool {
	if rec.NextCheckup == nil {
		return false
	}
	diff := rec.NextCheckup.Sub(now)
	return diff >= 0 && diff <= CheckupWindow
}
