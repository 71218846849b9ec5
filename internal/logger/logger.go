// Package logger holds the application-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It writes to stderr at info level until Init is called.
var Log = logrus.New()

// Init configures the global logger from the environment and returns a
// function that closes the log file, if one was opened.
//
//   - LOG_LEVEL: logrus level name, "info" by default
//   - LOG_FORMAT: "json" for machine-readable output, text otherwise
//   - LOG_FILE: append to this file instead of writing to fallback
//
// Passing io.Discard as fallback silences logging unless LOG_FILE is set.
func Init(fallback io.Writer) (func() error, error) {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	path := os.Getenv("LOG_FILE")
	if path == "" {
		Log.SetOutput(fallback)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Log.SetOutput(fallback)
		return func() error { return nil }, fmt.Errorf("open log file %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f.Close, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
