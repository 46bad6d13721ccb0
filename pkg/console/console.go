// Package console provides the log sinks the simulation narrates into.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Sink receives narration lines
type Sink interface {
	Log(message string)
	Clear()
}

// Buffer is an in-memory, append-only sink. It is safe for concurrent use.
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

// NewBuffer creates an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Log appends a line
func (b *Buffer) Log(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, message)
}

// Clear discards every line
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

// Lines returns a copy of the buffered lines
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// String joins the buffered lines with newlines
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Writer renders each line to an io.Writer prefixed with the simulated time.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Duration
}

// NewWriter creates a sink writing to w. now may be nil.
func NewWriter(w io.Writer, now func() time.Duration) *Writer {
	return &Writer{w: w, now: now}
}

// Log writes a line
func (w *Writer) Log(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.now == nil {
		fmt.Fprintln(w.w, message)
		return
	}
	fmt.Fprintf(w.w, "[t=%s] %s\n", FormatTime(w.now()), message)
}

// Clear is a no-op: written lines cannot be taken back.
func (w *Writer) Clear() {}

// Tee fans every call out to several sinks
type Tee []Sink

// Log writes the line to every sink
func (t Tee) Log(message string) {
	for _, s := range t {
		s.Log(message)
	}
}

// Clear clears every sink
func (t Tee) Clear() {
	for _, s := range t {
		s.Clear()
	}
}

// FormatTime renders simulated time in seconds with one decimal
func FormatTime(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
