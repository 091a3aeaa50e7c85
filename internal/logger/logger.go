// Package logger owns the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. It is usable before Init, with defaults.
var Log = logrus.New()

// Init configures Log from the environment and writes to out (stdout if nil).
//
// LOG_LEVEL picks the level (default "info"); LOG_FORMAT=json switches to
// JSON output, anything else uses the text formatter.
func Init(out io.Writer) *logrus.Logger {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
	return Log
}

// Component returns a logger tagged with a component name
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
