package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkoutStore(t *testing.T) (*WorkoutStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workouts.json")
	s, err := NewWorkoutStore(path)
	require.NoError(t, err)
	return s, path
}

func bench(weight float64, reps int) []ExerciseSet {
	return []ExerciseSet{{ExerciseName: "Bench Press", Weight: weight, Reps: reps}}
}

func TestWorkoutStoreUpsertReplacesByDate(t *testing.T) {
	s, _ := newTestWorkoutStore(t)

	first, err := s.UpsertSession("2025-08-20", "Push", bench(80, 5))
	require.NoError(t, err)

	second, err := s.UpsertSession("2025-08-20", "Push B", bench(82.5, 3))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert must keep the session identity")

	got, err := s.GetSession("2025-08-20")
	require.NoError(t, err)
	assert.Equal(t, "Push B", got.Name)
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, 82.5, got.Exercises[0].Weight)

	assert.Len(t, s.ListRecent(-1), 1)
}

func TestWorkoutStoreRetentionKeeps14MostRecent(t *testing.T) {
	s, _ := newTestWorkoutStore(t)

	var dates []Date
	for i := 0; i < 20; i++ {
		d := Date("2025-08-01").AddDays(i)
		dates = append(dates, d)
		_, err := s.UpsertSession(d, fmt.Sprintf("day %d", i), bench(60, 8))
		require.NoError(t, err)
	}

	remaining := s.ListRecent(-1)
	require.Len(t, remaining, MaxWorkoutDates)

	// Exactly the 14 chronologically newest dates survive.
	for _, d := range dates[:6] {
		_, err := s.GetSession(d)
		assert.ErrorIs(t, err, ErrNotFound, "date %s should be pruned", d)
	}
	for _, d := range dates[6:] {
		_, err := s.GetSession(d)
		assert.NoError(t, err, "date %s should be retained", d)
	}
}

func TestWorkoutStoreBackdatedInsertIsPrunedFirst(t *testing.T) {
	s, _ := newTestWorkoutStore(t)

	for i := 0; i < MaxWorkoutDates; i++ {
		_, err := s.UpsertSession(Date("2025-08-10").AddDays(i), "", bench(60, 8))
		require.NoError(t, err)
	}

	// A back-dated session is the chronological oldest, so it is the one
	// dropped — it never displaces newer data.
	_, err := s.UpsertSession("2025-07-01", "old", bench(50, 10))
	require.NoError(t, err)

	_, err = s.GetSession("2025-07-01")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.ListRecent(-1), MaxWorkoutDates)
}

func TestWorkoutStoreListRecentOrder(t *testing.T) {
	s, _ := newTestWorkoutStore(t)

	for _, d := range []Date{"2025-08-20", "2025-08-18", "2025-08-19"} {
		_, err := s.UpsertSession(d, "", nil)
		require.NoError(t, err)
	}

	recent := s.ListRecent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, Date("2025-08-20"), recent[0].Date)
	assert.Equal(t, Date("2025-08-19"), recent[1].Date)
}

func TestWorkoutStoreDelete(t *testing.T) {
	s, _ := newTestWorkoutStore(t)

	_, err := s.UpsertSession("2025-08-20", "", bench(80, 5))
	require.NoError(t, err)
	require.NoError(t, s.DeleteSession("2025-08-20"))
	assert.ErrorIs(t, s.DeleteSession("2025-08-20"), ErrNotFound)
}

func TestWorkoutStoreValidation(t *testing.T) {
	s, _ := newTestWorkoutStore(t)

	_, err := s.UpsertSession("not-a-date", "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.UpsertSession("2025-08-20", "", []ExerciseSet{{ExerciseName: ""}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.UpsertSession("2025-08-20", "", []ExerciseSet{{ExerciseName: "Squat", Weight: -1}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.UpsertSession("2025-08-20", "", []ExerciseSet{{ExerciseName: "Squat", Reps: -1}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWorkoutStoreRoundTrip(t *testing.T) {
	s, path := newTestWorkoutStore(t)

	want, err := s.UpsertSession("2025-08-20", "Push", []ExerciseSet{
		{ExerciseName: "Bench Press", Weight: 80, Reps: 5},
		{ExerciseName: "Overhead Press", Weight: 50, Reps: 8},
	})
	require.NoError(t, err)

	reloaded, err := NewWorkoutStore(path)
	require.NoError(t, err)
	got, err := reloaded.GetSession("2025-08-20")
	require.NoError(t, err)
	assert.Equal(t, *want, *got)
}
