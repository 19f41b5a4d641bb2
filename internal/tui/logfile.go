package tui

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLogFilePath returns the path to the diagnostic log file.
// If SMARTPUSH_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.smartpush/logs/smartpush.log
func DefaultLogFilePath() string {
	if customPath := os.Getenv("SMARTPUSH_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "smartpush.log"
	}

	return filepath.Join(homeDir, ".smartpush", "logs", "smartpush.log")
}

// rotatingFile creates the lumberjack writer, sized from SMARTPUSH_LOG_* variables
func rotatingFile(path string) *lumberjack.Logger {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}

	if v, err := strconv.Atoi(os.Getenv("SMARTPUSH_LOG_MAX_SIZE")); err == nil && v > 0 {
		lj.MaxSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("SMARTPUSH_LOG_MAX_BACKUPS")); err == nil && v >= 0 {
		lj.MaxBackups = v
	}
	if v, err := strconv.Atoi(os.Getenv("SMARTPUSH_LOG_MAX_AGE")); err == nil && v > 0 {
		lj.MaxAge = v
	}

	return lj
}
