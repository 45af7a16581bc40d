// Package logging builds the structured loggers used across the toolbelt.
//
// Loggers write human-friendly console output to stderr. The level is taken
// from TOOLBELT_LOG_LEVEL, and when TOOLBELT_LOG_FILE is set entries are also
// appended to a size-rotated log file.
package logging

import (
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger tagged with the given component name.
func New(component string) zerolog.Logger {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	if fileWriter := fileWriterFromEnv(); fileWriter != nil {
		writers = append(writers, fileWriter)
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(levelFromEnv()).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// levelFromEnv parses TOOLBELT_LOG_LEVEL, defaulting to info.
func levelFromEnv() zerolog.Level {
	raw := os.Getenv("TOOLBELT_LOG_LEVEL")
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// fileWriterFromEnv creates a rotating file writer when TOOLBELT_LOG_FILE is set.
// Rotation knobs come from environment variables with conservative defaults.
func fileWriterFromEnv() io.Writer {
	logFilePath := os.Getenv("TOOLBELT_LOG_FILE")
	if logFilePath == "" {
		return nil
	}

	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,  // old files kept
		MaxAge:     30, // days
	}

	if maxSizeStr := os.Getenv("TOOLBELT_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("TOOLBELT_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("TOOLBELT_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}
