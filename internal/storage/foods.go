package storage

import (
	"fmt"
	"strings"
	"sync"
)

// FoodStore handles file-based food catalog persistence. The catalog is held
// in memory for the process lifetime and rewritten to disk on every mutation.
// Insertion order is preserved for display.
type FoodStore struct {
	path  string
	mu    sync.RWMutex
	items []FoodItem
}

// NewFoodStore loads the catalog from path. If the file is malformed, the
// returned store is empty and the error is a *MalformedFileError the caller
// should surface as a warning and otherwise keep going.
func NewFoodStore(path string) (*FoodStore, error) {
	s := &FoodStore{path: path}
	if err := loadRecords(path, &s.items); err != nil {
		s.items = nil
		return s, err
	}
	return s, nil
}

func validateFood(item FoodItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("food name is required: %w", ErrInvalidInput)
	}
	if item.CaloriesPer100g < 0 {
		return fmt.Errorf("calories per 100g must be >= 0: %w", ErrInvalidInput)
	}
	if item.ProteinPer100g < 0 {
		return fmt.Errorf("protein per 100g must be >= 0: %w", ErrInvalidInput)
	}
	return nil
}

func (s *FoodStore) indexOf(name string) int {
	for i := range s.items {
		if s.items[i].Name == name {
			return i
		}
	}
	return -1
}

// Add inserts a new catalog entry and persists.
func (s *FoodStore) Add(item FoodItem) error {
	if err := validateFood(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(item.Name) >= 0 {
		return fmt.Errorf("food %q: %w", item.Name, ErrDuplicateKey)
	}
	s.items = append(s.items, item)
	return s.save()
}

// Update replaces the entry stored under name. Renaming is allowed as long
// as the new name does not collide with another entry.
func (s *FoodStore) Update(name string, item FoodItem) error {
	if err := validateFood(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("food %q: %w", name, ErrNotFound)
	}
	if item.Name != name && s.indexOf(item.Name) >= 0 {
		return fmt.Errorf("food %q: %w", item.Name, ErrDuplicateKey)
	}
	s.items[idx] = item
	return s.save()
}

// Delete removes the entry stored under name. Meal entries referencing the
// food are left in place (weak reference by name).
func (s *FoodStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("food %q: %w", name, ErrNotFound)
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return s.save()
}

// Get returns the catalog entry for name.
func (s *FoodStore) Get(name string) (*FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return nil, fmt.Errorf("food %q: %w", name, ErrNotFound)
	}
	item := s.items[idx]
	return &item, nil
}

// ListAll returns all catalog entries in insertion order.
func (s *FoodStore) ListAll() []FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]FoodItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *FoodStore) save() error {
	items := s.items
	if items == nil {
		items = []FoodItem{}
	}
	return saveRecords(s.path, items)
}
