package tracker

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
)

// TrendDays is the width of the report window.
const TrendDays = 7

// DailyTotals is one point of the trend series. Derived on every report
// view, never persisted.
type DailyTotals struct {
	Date          storage.Date
	TotalCalories float64
	TotalProtein  float64
}

// ComputeTrend returns exactly TrendDays points covering the consecutive
// calendar days ending at now (inclusive), ascending by date. Days without
// meals are zero-filled, never omitted, so both chart series share the same
// 7-date axis. A meal whose food has since been deleted from the catalog
// contributes zero rather than failing the report.
func (s *Service) ComputeTrend(now storage.Date) ([]DailyTotals, error) {
	if _, err := storage.ParseDate(string(now)); err != nil {
		return nil, err
	}

	byDate := map[storage.Date]*DailyTotals{}
	series := make([]DailyTotals, TrendDays)
	for i := 0; i < TrendDays; i++ {
		series[i] = DailyTotals{Date: now.AddDays(i - TrendDays + 1)}
		byDate[series[i].Date] = &series[i]
	}

	for _, entry := range s.meals.All() {
		day, ok := byDate[entry.Date]
		if !ok {
			continue
		}
		food, err := s.foods.Get(entry.FoodName)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.WithFields(log.Fields{"date": entry.Date, "food": entry.FoodName}).
					Warn("meal references a deleted food, counting zero")
				continue
			}
			return nil, err
		}
		factor := entry.GramsConsumed / 100
		day.TotalCalories += food.CaloriesPer100g * factor
		day.TotalProtein += food.ProteinPer100g * factor
	}

	return series, nil
}

// DayTotals resolves the calorie and protein totals for a single date, with
// the same dangling-reference leniency as ComputeTrend.
func (s *Service) DayTotals(date storage.Date) (DailyTotals, error) {
	totals := DailyTotals{Date: date}
	for _, entry := range s.meals.ListMeals(date) {
		food, err := s.foods.Get(entry.FoodName)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return totals, err
		}
		factor := entry.GramsConsumed / 100
		totals.TotalCalories += food.CaloriesPer100g * factor
		totals.TotalProtein += food.ProteinPer100g * factor
	}
	return totals, nil
}
