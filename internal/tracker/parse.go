package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
)

// ParseExerciseSpec parses a command-line exercise spec of the form
// "Name:WEIGHTxREPS", e.g. "Bench Press:80x5" or "Pull-up:0x12".
// Weight is in kilograms and may be fractional.
func ParseExerciseSpec(spec string) (storage.ExerciseSet, error) {
	var set storage.ExerciseSet

	name, rest, ok := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return set, fmt.Errorf("exercise spec %q must be Name:WEIGHTxREPS: %w", spec, storage.ErrInvalidInput)
	}

	weightStr, repsStr, ok := strings.Cut(strings.TrimSpace(rest), "x")
	if !ok {
		return set, fmt.Errorf("exercise spec %q must be Name:WEIGHTxREPS: %w", spec, storage.ErrInvalidInput)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
	if err != nil || weight < 0 {
		return set, fmt.Errorf("exercise spec %q: weight must be a number >= 0: %w", spec, storage.ErrInvalidInput)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(repsStr))
	if err != nil || reps < 0 {
		return set, fmt.Errorf("exercise spec %q: reps must be an integer >= 0: %w", spec, storage.ErrInvalidInput)
	}

	set.ExerciseName = name
	set.Weight = weight
	set.Reps = reps
	return set, nil
}
