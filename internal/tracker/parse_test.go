package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
)

func TestParseExerciseSpec(t *testing.T) {
	tests := []struct {
		spec string
		want storage.ExerciseSet
	}{
		{"Bench Press:80x5", storage.ExerciseSet{ExerciseName: "Bench Press", Weight: 80, Reps: 5}},
		{"Squat: 102.5x3", storage.ExerciseSet{ExerciseName: "Squat", Weight: 102.5, Reps: 3}},
		{"Pull-up:0x12", storage.ExerciseSet{ExerciseName: "Pull-up", Weight: 0, Reps: 12}},
		{"  Deadlift :140 x 1", storage.ExerciseSet{ExerciseName: "Deadlift", Weight: 140, Reps: 1}},
	}
	for _, tt := range tests {
		got, err := ParseExerciseSpec(tt.spec)
		require.NoError(t, err, "spec %q", tt.spec)
		assert.Equal(t, tt.want, got, "spec %q", tt.spec)
	}
}

func TestParseExerciseSpecErrors(t *testing.T) {
	for _, spec := range []string{
		"",
		"Bench Press",
		":80x5",
		"Bench Press:80",
		"Bench Press:heavyx5",
		"Bench Press:80xmany",
		"Bench Press:-80x5",
		"Bench Press:80x-5",
	} {
		_, err := ParseExerciseSpec(spec)
		assert.ErrorIs(t, err, storage.ErrInvalidInput, "spec %q", spec)
	}
}
