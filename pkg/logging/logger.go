// Package logging provides leveled operational logging and an event journal.
//   - A leveled slog.Logger for stderr (scheduling, failures, diagnostics)
//   - A Journal writing one JSON line per published interaction event
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LevelTrace sits below Debug and covers per-activity scheduling and every
// move of the simulated clock.
const LevelTrace = slog.LevelDebug - 4

// verbosities lists the accepted level names from quietest to chattiest.
var verbosities = []struct {
	name  string
	level slog.Level
}{
	{"info", slog.LevelInfo},
	{"debug", slog.LevelDebug},
	{"trace", LevelTrace},
}

// LevelNames returns the accepted level names
func LevelNames() []string {
	names := make([]string, 0, len(verbosities))
	for _, v := range verbosities {
		names = append(names, v.name)
	}
	return names
}

// ParseLevel resolves a verbosity name, ignoring case. An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	for _, v := range verbosities {
		if strings.EqualFold(v.name, name) {
			return v.level, nil
		}
	}
	return slog.LevelInfo, fmt.Errorf("unknown level %q (valid: %s)", name, strings.Join(LevelNames(), ", "))
}

// NewLogger returns a text logger on w. Unknown level names log at info;
// configuration is expected to have rejected them already.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: labelTrace,
	}))
}

func labelTrace(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}

// Journal appends interaction events to a JSONL file.
// It is safe for concurrent use. A nil Journal is safe to use;
// all methods are no-ops on nil receiver.
type Journal struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// OpenJournal opens path for append, creating parent directories as needed.
func OpenJournal(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	return &Journal{file: f, now: time.Now}, nil
}

// Log writes an entry as a single JSON line.
// A "recorded_at" field is added; the caller's map is not mutated.
func (j *Journal) Log(entry map[string]any) {
	if j == nil || j.file == nil {
		return
	}

	line := make(map[string]any, len(entry)+1)
	for k, v := range entry {
		line[k] = v
	}
	line["recorded_at"] = j.now().UTC().Format(time.RFC3339Nano)

	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := json.Marshal(line)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = j.file.Write(data)
}

// Close closes the underlying file. Safe to call on nil receiver.
func (j *Journal) Close() error {
	if j == nil || j.file == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	err := j.file.Close()
	j.file = nil
	return err
}
