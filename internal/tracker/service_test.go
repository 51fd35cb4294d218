package tracker

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()

	foods, err := storage.NewFoodStore(filepath.Join(dir, "foods.json"))
	require.NoError(t, err)
	workouts, err := storage.NewWorkoutStore(filepath.Join(dir, "workouts.json"))
	require.NoError(t, err)
	meals, err := storage.NewMealStore(filepath.Join(dir, "nutrition.json"))
	require.NoError(t, err)

	return NewService(foods, workouts, meals)
}

func TestLogMealValidatesFoodEagerly(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.LogMeal("2025-08-29", "Chicken Breast", 200)
	require.ErrorIs(t, err, storage.ErrUnknownFood)
	assert.Empty(t, svc.Meals().ListMeals("2025-08-29"))

	require.NoError(t, svc.Foods().Add(storage.FoodItem{Name: "Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31}))

	entry, err := svc.LogMeal("2025-08-29", "Chicken Breast", 200)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.NotEmpty(t, entry.Time)
	assert.Equal(t, storage.Date("2025-08-29"), entry.Date)

	day := svc.Meals().ListMeals("2025-08-29")
	require.Len(t, day, 1)
	assert.Equal(t, *entry, day[0])
}

func TestLogMealRejectsInvalidGrams(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Foods().Add(storage.FoodItem{Name: "Rice", CaloriesPer100g: 130, ProteinPer100g: 2.7}))

	_, err := svc.LogMeal("2025-08-29", "Rice", 0)
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
	_, err = svc.LogMeal("2025-08-29", "Rice", -50)
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
}
