// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package logger

import (
	"fmt"
	"log/slog"
	"os"
)

const defaultTimeFormat = "2006/01/02 15:04:05"

var (
	logLevel = new(slog.LevelVar)

	isDebugMode bool
)

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				t := a.Value.Time()
				a.Value = slog.StringValue(t.Format(defaultTimeFormat))
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

// EnableDebugMode method enables verbose mode for the whole application.
func EnableDebugMode() {
	logLevel.Set(slog.LevelDebug)
	isDebugMode = true
	Debug("Enable verbose logging")
}

// IsDebugMode method checks if the debug mode is enabled.
func IsDebugMode() bool {
	return isDebugMode
}

// Debug method logs message with "debug" level.
func Debug(a ...interface{}) {
	slog.Debug(fmt.Sprint(a...))
}

// Debugf method logs message with "debug" level and formats it.
func Debugf(format string, a ...interface{}) {
	slog.Debug(fmt.Sprintf(format, a...))
}

// Info method logs message with "info" level.
func Info(a ...interface{}) {
	slog.Info(fmt.Sprint(a...))
}

// Infof method logs message with "info" level and formats it.
func Infof(format string, a ...interface{}) {
	slog.Info(fmt.Sprintf(format, a...))
}

// Warn method logs message with "warn" level.
func Warn(a ...interface{}) {
	slog.Warn(fmt.Sprint(a...))
}

// Warnf method logs message with "warn" level and formats it.
func Warnf(format string, a ...interface{}) {
	slog.Warn(fmt.Sprintf(format, a...))
}

// Error method logs message with "error" level.
func Error(a ...interface{}) {
	slog.Error(fmt.Sprint(a...))
}

// Errorf method logs message with "error" level and formats it.
func Errorf(format string, a ...interface{}) {
	slog.Error(fmt.Sprintf(format, a...))
}
