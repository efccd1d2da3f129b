// Package logs writes editor events as JSON lines.
package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes one JSON object per event with a timestamp and the event
// name. A nil or disabled Logger discards everything.
type Logger struct {
	mu sync.Mutex
	w  *bufio.Writer
	c  io.Closer
}

// New returns a logger writing to w. If w is also an io.Closer, Close
// closes it.
func New(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

// Disabled returns a logger that discards events.
func Disabled() *Logger { return &Logger{} }

// Open returns a logger appending to the file at path.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return New(f), nil
}

// FromEnv resolves logging from NEU_LOG / NEU_LOG_FILE, falling back to the
// enabled flag and file given by configuration. When enabled without a file
// it writes to ./neu.log. A file that cannot be opened disables logging.
func FromEnv(enabled bool, file string) *Logger {
	if v := os.Getenv("NEU_LOG"); v != "" {
		enabled = v != "0" && v != "false"
	}
	if lf := os.Getenv("NEU_LOG_FILE"); lf != "" {
		file = lf
		enabled = true
	}
	if !enabled {
		return Disabled()
	}
	if file == "" {
		file = filepath.Join(".", "neu.log")
	}
	l, err := Open(file)
	if err != nil {
		return Disabled()
	}
	return l
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool { return l != nil && l.w != nil }

// Close flushes and closes the underlying writer.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
}

// Event writes a JSON line with the event name and fields.
// Common fields: token, mode, action, count, cursor, file, error.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		rec[k] = v
	}
	rec["time"] = time.Now().Format(time.RFC3339Nano)
	rec["event"] = event
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.w).Encode(rec)
	_ = l.w.Flush()
}
