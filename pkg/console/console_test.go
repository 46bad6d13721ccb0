package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBufferClearDiscardsPriorContent(t *testing.T) {
	b := NewBuffer()
	b.Log("first")
	b.Log("second")

	b.Clear()
	b.Log("x")

	assert.Equal(t, "x", b.String())
	assert.Equal(t, []string{"x"}, b.Lines())
}

func TestBufferClearIsIdempotent(t *testing.T) {
	b := NewBuffer()
	b.Log("a")
	b.Clear()
	b.Clear()

	assert.Empty(t, b.Lines())
	assert.Equal(t, "", b.String())
}

func TestWriterPrefixesSimulatedTime(t *testing.T) {
	var out bytes.Buffer
	now := 7500 * time.Millisecond
	w := NewWriter(&out, func() time.Duration { return now })

	w.Log("hello")
	w.Clear()

	assert.Equal(t, "[t=7.5s] hello\n", out.String())
}

func TestWriterWithoutClock(t *testing.T) {
	var out bytes.Buffer
	NewWriter(&out, nil).Log("plain")

	assert.Equal(t, "plain\n", out.String())
}

func TestTee(t *testing.T) {
	a, b := NewBuffer(), NewBuffer()
	tee := Tee{a, b}

	tee.Log("line")
	assert.Equal(t, []string{"line"}, a.Lines())
	assert.Equal(t, []string{"line"}, b.Lines())

	tee.Clear()
	assert.Empty(t, a.Lines())
	assert.Empty(t, b.Lines())
}

func TestWriterClearKeepsStreamedLines(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, nil)

	w.Log("before")
	w.Clear()
	w.Log("after")

	assert.Equal(t, "before\nafter\n", out.String())
}
