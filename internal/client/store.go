package client

import (
	"sync"
	"time"

	"zoo-ops/internal/domain/inventory"
)

// Store is a client-side cache of fetched collections. Mutations merge by id
// so a stale update cannot resurrect a removed entity; updating or removing
// an id that is not cached is a no-op.
type Store struct {
	mu        sync.RWMutex
	animals   []Animal
	inventory []InventoryItem
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetAnimals(items []Animal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals = append([]Animal(nil), items...)
}

func (s *Store) Animals() []Animal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Animal(nil), s.animals...)
}

func (s *Store) AddAnimal(a Animal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals = append(s.animals, a)
}

func (s *Store) UpdateAnimal(a Animal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.animals {
		if s.animals[i].ID == a.ID {
			s.animals[i] = a
			return
		}
	}
}

func (s *Store) RemoveAnimal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.animals {
		if s.animals[i].ID == id {
			s.animals = append(s.animals[:i], s.animals[i+1:]...)
			return
		}
	}
}

func (s *Store) SetInventory(items []InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = append([]InventoryItem(nil), items...)
}

func (s *Store) Inventory() []InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]InventoryItem(nil), s.inventory...)
}

func (s *Store) AddInventoryItem(it InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = append(s.inventory, it)
}

func (s *Store) UpdateInventoryItem(it InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID == it.ID {
			s.inventory[i] = it
			return
		}
	}
}

func (s *Store) RemoveInventoryItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			return
		}
	}
}

// StockStatus classifies a cached item locally. The second return is false
// when the id is not cached.
func (s *Store) StockStatus(id string) (inventory.StockStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.inventory {
		if it.ID == id {
			return inventory.Classify(it.ToDomain()), true
		}
	}
	return "", false
}

// LowStock reclassifies cached items locally with the same rules the server
// uses, so the view stays right between refreshes.
func (s *Store) LowStock() []InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]InventoryItem, 0)
	for _, it := range s.inventory {
		if inventory.IsLowStock(it.ToDomain()) {
			out = append(out, it)
		}
	}
	return out
}

// ExpiringSoon filters cached items whose expiry is inside the 30-day window.
func (s *Store) ExpiringSoon(now time.Time) []InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]InventoryItem, 0)
	for _, it := range s.inventory {
		if inventory.ExpiringSoon(it.ToDomain(), now) {
			out = append(out, it)
		}
	}
	return out
}
