package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
)

// Service ties the three stores together and owns the rules that span them:
// eager food-reference validation when logging meals, and the trend report.
// One Service is constructed at startup and passed explicitly to the
// presentation layer.
type Service struct {
	foods    *storage.FoodStore
	workouts *storage.WorkoutStore
	meals    *storage.MealStore
}

func NewService(foods *storage.FoodStore, workouts *storage.WorkoutStore, meals *storage.MealStore) *Service {
	return &Service{
		foods:    foods,
		workouts: workouts,
		meals:    meals,
	}
}

func (s *Service) Foods() *storage.FoodStore       { return s.foods }
func (s *Service) Workouts() *storage.WorkoutStore { return s.workouts }
func (s *Service) Meals() *storage.MealStore       { return s.meals }

// LogMeal appends a meal for date. The food must exist in the catalog at
// insertion time; validating here avoids silently zero-valued report rows
// later when the name was simply mistyped.
func (s *Service) LogMeal(date storage.Date, foodName string, grams float64) (*storage.MealEntry, error) {
	if _, err := s.foods.Get(foodName); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("food %q: %w", foodName, storage.ErrUnknownFood)
		}
		return nil, err
	}

	entry := storage.MealEntry{
		ID:            uuid.NewString(),
		Date:          date,
		Time:          time.Now().Format("15:04:05"),
		FoodName:      foodName,
		GramsConsumed: grams,
	}
	if err := s.meals.Append(entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
