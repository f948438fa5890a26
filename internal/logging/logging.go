// Package logging adapts logrus to the engine's Logger interface.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/sirupsen/logrus"
)

// New returns a logrus logger writing to stderr at the named level. An
// unrecognized level falls back to info.
func New(level string, jsonFormat bool) *logrus.Logger {
	return NewWithWriter(os.Stderr, level, jsonFormat)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string, jsonFormat bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// EngineLogger lets a logrus entry serve as the projection engine's logger.
type EngineLogger struct {
	entry *logrus.Entry
}

var _ calculation.Logger = (*EngineLogger)(nil)

// ForEngine wraps a logger, tagging every line with component=engine and any
// extra fields.
func ForEngine(logger *logrus.Logger, fields logrus.Fields) *EngineLogger {
	entry := logger.WithField("component", "engine")
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	return &EngineLogger{entry: entry}
}

func (l *EngineLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *EngineLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *EngineLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *EngineLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
