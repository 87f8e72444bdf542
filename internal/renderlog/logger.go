// Package renderlog writes a structured JSONL trace of the render
// loop: events received, frames emitted, config reloads.
package renderlog

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Logger appends JSONL entries to a log file. All methods are safe for
// concurrent use. When disabled (w is nil), all methods are no-ops.
type Logger struct {
	mu      sync.Mutex
	w       *os.File
	session string
}

// New creates a Logger that appends to logPath, tagging every entry
// with the given session ID. If enabled is false or the file cannot be
// opened, returns a no-op logger (safe to call methods on).
func New(enabled bool, logPath, session string) *Logger {
	if !enabled {
		return &Logger{}
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Logger{}
	}
	return &Logger{w: f, session: session}
}

// Nop returns a disabled logger. All methods are no-ops.
func Nop() *Logger {
	return &Logger{}
}

// entry is the common envelope for all log lines.
type entry struct {
	Timestamp string `json:"ts"`
	Session   string `json:"session"`
	Event     string `json:"event"`
}

// EventReceived logs one host event arriving on the stream.
func (l *Logger) EventReceived(eventType string, redraw bool) {
	l.log(struct {
		entry
		EventType string `json:"event_type"`
		Redraw    bool   `json:"redraw"`
	}{
		entry:     l.entry("event_received"),
		EventType: eventType,
		Redraw:    redraw,
	})
}

// FrameRendered logs one emitted status-line frame.
func (l *Logger) FrameRendered(visibleLen int, truncated bool) {
	l.log(struct {
		entry
		VisibleLen int  `json:"visible_len"`
		Truncated  bool `json:"truncated,omitempty"`
	}{
		entry:      l.entry("frame_rendered"),
		VisibleLen: visibleLen,
		Truncated:  truncated,
	})
}

// ConfigReloaded logs a live config reload.
func (l *Logger) ConfigReloaded(path string) {
	l.log(struct {
		entry
		Path string `json:"path"`
	}{
		entry: l.entry("config_reloaded"),
		Path:  path,
	})
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l.w == nil {
		return nil
	}
	return l.w.Close()
}

func (l *Logger) entry(event string) entry {
	return entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Session:   l.session,
		Event:     event,
	}
}

func (l *Logger) log(v any) {
	if l.w == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	data = append(data, '\n')
	l.mu.Lock()
	l.w.Write(data)
	l.mu.Unlock()
}
