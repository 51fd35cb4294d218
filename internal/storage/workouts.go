package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// MaxWorkoutDates is the workout log retention window: sessions for at most
// this many distinct calendar dates are kept, oldest pruned first.
const MaxWorkoutDates = 14

// WorkoutStore handles file-based workout log persistence. Sessions are
// keyed by date; every mutation rewrites the backing file and then applies
// the retention window.
type WorkoutStore struct {
	path     string
	mu       sync.RWMutex
	sessions []WorkoutSession
}

// NewWorkoutStore loads the workout log from path. A malformed file yields
// an empty store plus a *MalformedFileError for the caller to surface.
func NewWorkoutStore(path string) (*WorkoutStore, error) {
	s := &WorkoutStore{path: path}
	if err := loadRecords(path, &s.sessions); err != nil {
		s.sessions = nil
		return s, err
	}
	return s, nil
}

func validateExercises(exercises []ExerciseSet) error {
	for _, ex := range exercises {
		if strings.TrimSpace(ex.ExerciseName) == "" {
			return fmt.Errorf("exercise name is required: %w", ErrInvalidInput)
		}
		if ex.Weight < 0 {
			return fmt.Errorf("exercise %q: weight must be >= 0: %w", ex.ExerciseName, ErrInvalidInput)
		}
		if ex.Reps < 0 {
			return fmt.Errorf("exercise %q: reps must be >= 0: %w", ex.ExerciseName, ErrInvalidInput)
		}
	}
	return nil
}

// UpsertSession replaces the session stored for date, or inserts a new one,
// then prunes dates beyond the retention window.
func (s *WorkoutStore) UpsertSession(date Date, name string, exercises []ExerciseSet) (*WorkoutSession, error) {
	if _, err := ParseDate(string(date)); err != nil {
		return nil, err
	}
	if err := validateExercises(exercises); err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []ExerciseSet{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var session *WorkoutSession
	for i := range s.sessions {
		if s.sessions[i].Date == date {
			s.sessions[i].Name = name
			s.sessions[i].Exercises = exercises
			session = &s.sessions[i]
			break
		}
	}
	if session == nil {
		s.sessions = append(s.sessions, WorkoutSession{
			ID:        uuid.NewString(),
			Date:      date,
			Name:      name,
			Exercises: exercises,
		})
		session = &s.sessions[len(s.sessions)-1]
	}

	out := *session
	s.prune()
	if err := s.save(); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSession removes the session stored for date.
func (s *WorkoutStore) DeleteSession(date Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		if s.sessions[i].Date == date {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("workout session on %s: %w", date, ErrNotFound)
}

// GetSession returns the session stored for date.
func (s *WorkoutStore) GetSession(date Date) (*WorkoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sessions {
		if s.sessions[i].Date == date {
			session := s.sessions[i]
			return &session, nil
		}
	}
	return nil, fmt.Errorf("workout session on %s: %w", date, ErrNotFound)
}

// ListRecent returns up to n sessions ordered by date descending.
func (s *WorkoutStore) ListRecent(n int) []WorkoutSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]WorkoutSession, len(s.sessions))
	copy(out, s.sessions)
	sort.Slice(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// prune drops sessions on dates beyond the MaxWorkoutDates most recent
// distinct dates. Recency is calendar order, not insertion order, so a
// back-dated session never extends retention of older data.
func (s *WorkoutStore) prune() {
	dates := make([]Date, 0, len(s.sessions))
	for i := range s.sessions {
		dates = append(dates, s.sessions[i].Date)
	}
	keep := recentDates(dates, MaxWorkoutDates)
	if keep == nil {
		return
	}

	kept := s.sessions[:0]
	pruned := 0
	for i := range s.sessions {
		if keep[s.sessions[i].Date] {
			kept = append(kept, s.sessions[i])
		} else {
			pruned++
		}
	}
	s.sessions = kept
	if pruned > 0 {
		log.WithFields(log.Fields{"store": "workouts", "pruned": pruned}).
			Info("dropped sessions outside retention window")
	}
}

func (s *WorkoutStore) save() error {
	sessions := s.sessions
	if sessions == nil {
		sessions = []WorkoutSession{}
	}
	return saveRecords(s.path, sessions)
}

// recentDates returns the set of the max most recent distinct dates, or nil
// when no pruning is needed.
func recentDates(dates []Date, max int) map[Date]bool {
	distinct := map[Date]bool{}
	for _, d := range dates {
		distinct[d] = true
	}
	if len(distinct) <= max {
		return nil
	}

	ordered := make([]Date, 0, len(distinct))
	for d := range distinct {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[j].Before(ordered[i]) })

	keep := make(map[Date]bool, max)
	for _, d := range ordered[:max] {
		keep[d] = true
	}
	return keep
}
