package root

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/rob-by06/workout-nutrition-tracker/internal/config"
	"github.com/rob-by06/workout-nutrition-tracker/internal/logging"
	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
	"github.com/rob-by06/workout-nutrition-tracker/internal/tracker"
	"github.com/rob-by06/workout-nutrition-tracker/internal/ui"
)

// openApp loads configuration, wires logging and constructs the service over
// the three stores. A malformed store file degrades to an empty store with a
// visible warning; it never aborts the command.
func openApp() (*tracker.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogPath(), cfg.LogLevel)

	foods, err := storage.NewFoodStore(cfg.FoodsPath())
	if err := warnMalformed(err); err != nil {
		return nil, err
	}
	workouts, err := storage.NewWorkoutStore(cfg.WorkoutsPath())
	if err := warnMalformed(err); err != nil {
		return nil, err
	}
	meals, err := storage.NewMealStore(cfg.NutritionPath())
	if err := warnMalformed(err); err != nil {
		return nil, err
	}

	return tracker.NewService(foods, workouts, meals), nil
}

func warnMalformed(err error) error {
	if err == nil {
		return nil
	}
	var malformed *storage.MalformedFileError
	if !errors.As(err, &malformed) {
		return err
	}
	log.WithField("path", malformed.Path).WithError(malformed.Err).
		Warn("store file malformed, starting empty")
	fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" "+malformed.Error()+" (starting with an empty store)"))
	return nil
}

// dateArg resolves an optional date flag/argument, defaulting to today.
func dateArg(s string) (storage.Date, error) {
	if s == "" {
		return storage.Today(), nil
	}
	return storage.ParseDate(s)
}
