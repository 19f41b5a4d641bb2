// Package audit writes the append-only record of every command smartpush runs.
//
// Each line has the form "[YYYY-MM-DD HH:MM:SS] <text>". The file is opened in
// append mode, written, and closed around every entry, so no handle is held
// between commands and the file survives across runs without rotation.
package audit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is the layout used for the bracketed entry prefix.
const TimestampLayout = "2006-01-02 15:04:05"

// CommandPrefix marks the line recording an invoked command.
const CommandPrefix = ">>> "

// Log appends timestamped lines to a file.
type Log struct {
	path string
	now  func() time.Time
}

// New creates a Log that appends to path. The file is created on first write.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// NewWithClock creates a Log stamped by now, so a session can share one clock.
func NewWithClock(path string, now func() time.Time) *Log {
	return &Log{path: path, now: now}
}

// Path returns the file the log appends to.
func (l *Log) Path() string {
	return l.path
}

// Append writes a single entry. Multi-line text is written as-is after the prefix.
func (l *Log) Append(text string) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create audit log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}

	line := fmt.Sprintf("[%s] %s\n", l.now().Format(TimestampLayout), text)
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return f.Close()
}

// Command records the invocation of a command.
func (l *Log) Command(command string) error {
	return l.Append(CommandPrefix + command)
}

// Entry is one parsed audit record.
type Entry struct {
	Timestamp time.Time
	Text      string
}

// IsCommand reports whether the entry records a command invocation.
func (e Entry) IsCommand() bool {
	return strings.HasPrefix(e.Text, CommandPrefix)
}

// Command returns the invoked command for command entries, or "".
func (e Entry) Command() string {
	if !e.IsCommand() {
		return ""
	}
	return strings.TrimPrefix(e.Text, CommandPrefix)
}

// ReadEntries parses the log file. Lines without a timestamp prefix belong to
// the previous entry (multi-line command output).
func ReadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if ts, text, ok := parseLine(line); ok {
			entries = append(entries, Entry{Timestamp: ts, Text: text})
			continue
		}
		if len(entries) > 0 {
			entries[len(entries)-1].Text += "\n" + line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	return entries, nil
}

// Tail returns the last n entries of the log.
func Tail(path string, n int) ([]Entry, error) {
	entries, err := ReadEntries(path)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n >= len(entries) {
		return entries, nil
	}
	return entries[len(entries)-n:], nil
}

func parseLine(line string) (time.Time, string, bool) {
	// "[" + layout + "] "
	const prefixLen = len(TimestampLayout) + 3
	if len(line) < prefixLen-1 || line[0] != '[' || line[len(TimestampLayout)+1] != ']' {
		return time.Time{}, "", false
	}
	ts, err := time.ParseInLocation(TimestampLayout, line[1:len(TimestampLayout)+1], time.Local)
	if err != nil {
		return time.Time{}, "", false
	}
	text := ""
	if len(line) > prefixLen {
		text = line[prefixLen:]
	}
	return ts, text, true
}
