package logging

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logrus logger to write JSON lines to a
// rotating file. Logs never go to the terminal: the TUI owns it, and the
// CLI commands keep stdout for their own output.
func Setup(path string, level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	})
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
	}
}
