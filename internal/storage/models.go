package storage

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is an ISO-8601 calendar date ("2025-08-29"). Lexicographic order on
// valid Dates matches chronological order, so stores compare them directly.
type Date string

// ParseDate validates s and returns it as a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("date %q must be YYYY-MM-DD: %w", s, ErrInvalidInput)
	}
	return Date(t.Format(dateLayout)), nil
}

// Today returns the current calendar date in local time.
func Today() Date {
	return Date(time.Now().Format(dateLayout))
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return d
	}
	return Date(t.AddDate(0, 0, n).Format(dateLayout))
}

func (d Date) Before(other Date) bool { return d < other }

func (d Date) String() string { return string(d) }

// FoodItem is a catalog entry with nutrition values per 100 grams.
type FoodItem struct {
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
	ProteinPer100g  float64 `json:"proteinPer100g"`
}

// ExerciseSet is the single best set for one exercise on one day.
type ExerciseSet struct {
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
}

// WorkoutSession is one day of training. Date is the unique key within the
// workout log.
type WorkoutSession struct {
	ID        string        `json:"id"`
	Date      Date          `json:"date"`
	Name      string        `json:"name"`
	Exercises []ExerciseSet `json:"exercises"`
}

// MealEntry references a FoodItem by name. The reference is weak: deleting
// the food leaves the entry dangling (reports treat it as zero).
type MealEntry struct {
	ID            string  `json:"id"`
	Date          Date    `json:"date"`
	Time          string  `json:"time"` // "15:04:05"
	FoodName      string  `json:"foodName"`
	GramsConsumed float64 `json:"gramsConsumed"`
}
