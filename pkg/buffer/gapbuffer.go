package buffer

import (
	"errors"
	"strings"
)

// ErrOutOfRange is returned when a position or range falls outside the text.
var ErrOutOfRange = errors.New("position out of range")

// GapBuffer is a gap buffer of runes. Text lives in buf[:gapStart] and
// buf[gapEnd:]; the runes in between are free space for insertion.
type GapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int

	cacheString string
	cacheValid  bool
}

// NewGapBuffer creates an empty GapBuffer with an initial capacity.
func NewGapBuffer(capacity int) *GapBuffer {
	if capacity < 1 {
		capacity = 64
	}
	return &GapBuffer{buf: make([]rune, capacity), gapEnd: capacity}
}

// NewGapBufferFromString initializes a GapBuffer holding s.
func NewGapBufferFromString(s string) *GapBuffer {
	runes := []rune(s)
	g := NewGapBuffer(len(runes) + 64)
	copy(g.buf, runes)
	g.gapStart = len(runes)
	return g
}

// Len returns the number of runes stored.
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

func (g *GapBuffer) grow(n int) {
	if g.gapEnd-g.gapStart >= n {
		return
	}
	newCap := len(g.buf)*2 + n
	next := make([]rune, newCap)
	copy(next, g.buf[:g.gapStart])
	tail := len(g.buf) - g.gapEnd
	copy(next[newCap-tail:], g.buf[g.gapEnd:])
	g.gapEnd = newCap - tail
	g.buf = next
}

// moveGap places the gap so that it starts at pos.
func (g *GapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= d
		g.gapEnd -= d
	case pos > g.gapStart:
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
	}
}

// Insert inserts runes at pos (0..Len()).
func (g *GapBuffer) Insert(pos int, s []rune) error {
	if pos < 0 || pos > g.Len() {
		return ErrOutOfRange
	}
	if len(s) == 0 {
		return nil
	}
	g.moveGap(pos)
	g.grow(len(s))
	copy(g.buf[g.gapStart:], s)
	g.gapStart += len(s)
	g.cacheValid = false
	return nil
}

// Delete removes the runes in [start,end).
func (g *GapBuffer) Delete(start, end int) error {
	if start < 0 || end < start || end > g.Len() {
		return ErrOutOfRange
	}
	if start == end {
		return nil
	}
	g.moveGap(start)
	g.gapEnd += end - start
	g.cacheValid = false
	return nil
}

// Slice returns a copy of the runes in [start,end). Out of range bounds are
// clamped.
func (g *GapBuffer) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []rune{}
	}
	out := make([]rune, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) + (g.gapEnd - g.gapStart)
		to := end + (g.gapEnd - g.gapStart)
		out = append(out, g.buf[from:to]...)
	}
	return out
}

// RuneAt returns the rune at index i, or 0 when i is out of bounds.
func (g *GapBuffer) RuneAt(i int) rune {
	if i < 0 || i >= g.Len() {
		return 0
	}
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[g.gapEnd+(i-g.gapStart)]
}

// String returns the stored text. The result is cached until the next edit.
func (g *GapBuffer) String() string {
	if g.cacheValid {
		return g.cacheString
	}
	var sb strings.Builder
	sb.Grow(g.Len())
	for _, r := range g.buf[:g.gapStart] {
		sb.WriteRune(r)
	}
	for _, r := range g.buf[g.gapEnd:] {
		sb.WriteRune(r)
	}
	g.cacheString = sb.String()
	g.cacheValid = true
	return g.cacheString
}
