package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// MaxMealDates is the nutrition log retention window: meals for at most this
// many distinct calendar dates are kept, oldest pruned first.
const MaxMealDates = 7

// MealStore handles file-based nutrition log persistence. Entries form a
// flat list; a date may carry any number of meals. Every mutation rewrites
// the backing file and then applies the retention window.
//
// Food-reference validation is not done here: the tracker service checks the
// catalog before appending, so the store stays a dumb record list.
type MealStore struct {
	path    string
	mu      sync.RWMutex
	entries []MealEntry
}

// NewMealStore loads the nutrition log from path. A malformed file yields an
// empty store plus a *MalformedFileError for the caller to surface.
func NewMealStore(path string) (*MealStore, error) {
	s := &MealStore{path: path}
	if err := loadRecords(path, &s.entries); err != nil {
		s.entries = nil
		return s, err
	}
	return s, nil
}

// Append adds a meal entry and prunes dates beyond the retention window.
func (s *MealStore) Append(entry MealEntry) error {
	if _, err := ParseDate(string(entry.Date)); err != nil {
		return err
	}
	if strings.TrimSpace(entry.FoodName) == "" {
		return fmt.Errorf("food name is required: %w", ErrInvalidInput)
	}
	if entry.GramsConsumed <= 0 {
		return fmt.Errorf("grams consumed must be > 0: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	s.prune()
	return s.save()
}

// DeleteMeal removes the index-th meal (insertion order) logged on date.
func (s *MealStore) DeleteMeal(date Date, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := -1
	for i := range s.entries {
		if s.entries[i].Date != date {
			continue
		}
		seen++
		if seen == index {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("meal #%d on %s: %w", index, date, ErrNotFound)
}

// ListMeals returns the meals logged on date in insertion order.
func (s *MealStore) ListMeals(date Date) []MealEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []MealEntry
	for i := range s.entries {
		if s.entries[i].Date == date {
			out = append(out, s.entries[i])
		}
	}
	return out
}

// ListDates returns the distinct dates with logged meals, ascending.
func (s *MealStore) ListDates() []Date {
	s.mu.RLock()
	defer s.mu.RUnlock()

	distinct := map[Date]bool{}
	for i := range s.entries {
		distinct[s.entries[i].Date] = true
	}
	out := make([]Date, 0, len(distinct))
	for d := range distinct {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// All returns every stored meal entry.
func (s *MealStore) All() []MealEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MealEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *MealStore) prune() {
	dates := make([]Date, 0, len(s.entries))
	for i := range s.entries {
		dates = append(dates, s.entries[i].Date)
	}
	keep := recentDates(dates, MaxMealDates)
	if keep == nil {
		return
	}

	kept := s.entries[:0]
	pruned := 0
	for i := range s.entries {
		if keep[s.entries[i].Date] {
			kept = append(kept, s.entries[i])
		} else {
			pruned++
		}
	}
	s.entries = kept
	if pruned > 0 {
		log.WithFields(log.Fields{"store": "nutrition", "pruned": pruned}).
			Info("dropped meals outside retention window")
	}
}

func (s *MealStore) save() error {
	entries := s.entries
	if entries == nil {
		entries = []MealEntry{}
	}
	return saveRecords(s.path, entries)
}
