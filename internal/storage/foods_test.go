package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFoodStore(t *testing.T) (*FoodStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foods.json")
	s, err := NewFoodStore(path)
	require.NoError(t, err)
	return s, path
}

func TestFoodStoreAddGetList(t *testing.T) {
	s, _ := newTestFoodStore(t)

	require.NoError(t, s.Add(FoodItem{Name: "Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31}))
	require.NoError(t, s.Add(FoodItem{Name: "Rice", CaloriesPer100g: 130, ProteinPer100g: 2.7}))

	got, err := s.Get("Chicken Breast")
	require.NoError(t, err)
	assert.Equal(t, 165.0, got.CaloriesPer100g)
	assert.Equal(t, 31.0, got.ProteinPer100g)

	// Insertion order is preserved for display.
	names := []string{}
	for _, item := range s.ListAll() {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Chicken Breast", "Rice"}, names)
}

func TestFoodStoreDuplicateKey(t *testing.T) {
	s, _ := newTestFoodStore(t)

	require.NoError(t, s.Add(FoodItem{Name: "Rice", CaloriesPer100g: 130, ProteinPer100g: 2.7}))
	err := s.Add(FoodItem{Name: "Rice", CaloriesPer100g: 111, ProteinPer100g: 1})
	require.ErrorIs(t, err, ErrDuplicateKey)

	items := s.ListAll()
	require.Len(t, items, 1)
	assert.Equal(t, 130.0, items[0].CaloriesPer100g)
}

func TestFoodStoreUpdate(t *testing.T) {
	s, _ := newTestFoodStore(t)

	require.NoError(t, s.Add(FoodItem{Name: "Oats", CaloriesPer100g: 380, ProteinPer100g: 13}))
	require.NoError(t, s.Add(FoodItem{Name: "Rice", CaloriesPer100g: 130, ProteinPer100g: 2.7}))

	require.NoError(t, s.Update("Oats", FoodItem{Name: "Rolled Oats", CaloriesPer100g: 389, ProteinPer100g: 13.2}))
	_, err := s.Get("Oats")
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := s.Get("Rolled Oats")
	require.NoError(t, err)
	assert.Equal(t, 389.0, got.CaloriesPer100g)

	// Renaming onto another entry is rejected.
	err = s.Update("Rolled Oats", FoodItem{Name: "Rice", CaloriesPer100g: 1, ProteinPer100g: 1})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	err = s.Update("Quinoa", FoodItem{Name: "Quinoa", CaloriesPer100g: 120, ProteinPer100g: 4.4})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFoodStoreDelete(t *testing.T) {
	s, _ := newTestFoodStore(t)

	require.NoError(t, s.Add(FoodItem{Name: "Rice", CaloriesPer100g: 130, ProteinPer100g: 2.7}))
	require.NoError(t, s.Delete("Rice"))
	assert.ErrorIs(t, s.Delete("Rice"), ErrNotFound)
	assert.Empty(t, s.ListAll())
}

func TestFoodStoreValidation(t *testing.T) {
	s, _ := newTestFoodStore(t)

	assert.ErrorIs(t, s.Add(FoodItem{Name: "  "}), ErrInvalidInput)
	assert.ErrorIs(t, s.Add(FoodItem{Name: "Rice", CaloriesPer100g: -1}), ErrInvalidInput)
	assert.ErrorIs(t, s.Add(FoodItem{Name: "Rice", ProteinPer100g: -0.1}), ErrInvalidInput)
}

func TestFoodStoreRoundTrip(t *testing.T) {
	s, path := newTestFoodStore(t)

	want := FoodItem{Name: "Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31}
	require.NoError(t, s.Add(want))

	reloaded, err := NewFoodStore(path)
	require.NoError(t, err)
	got, err := reloaded.Get("Chicken Breast")
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestFoodStoreMalformedFileFallsBackEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := NewFoodStore(path)
	var malformed *MalformedFileError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, path, malformed.Path)
	assert.Empty(t, s.ListAll())

	// The store stays usable after the fallback.
	require.NoError(t, s.Add(FoodItem{Name: "Rice", CaloriesPer100g: 130, ProteinPer100g: 2.7}))
}
