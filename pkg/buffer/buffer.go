// Package buffer holds the text being edited and answers the row/column,
// offset and word-boundary questions the editor asks about it.
//
// Rows are separated by '\n'. An empty buffer has a single empty row, so
// LineCount is never zero. Columns and offsets count runes.
package buffer

import "strings"

// Buffer is a row/column view over a rune Storage.
type Buffer struct {
	s Storage

	starts []int // rune offset of each row start
	lines  []string
	valid  bool
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{s: NewGapBuffer(0)}
}

// FromString returns a Buffer holding text.
func FromString(text string) *Buffer {
	return &Buffer{s: NewGapBufferFromString(text)}
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	return FromString(b.String())
}

func (b *Buffer) index() {
	if b.valid {
		return
	}
	text := b.s.String()
	b.lines = strings.Split(text, "\n")
	b.starts = b.starts[:0]
	off := 0
	for _, l := range b.lines {
		b.starts = append(b.starts, off)
		off += len([]rune(l)) + 1
	}
	b.valid = true
}

func (b *Buffer) touch() { b.valid = false }

// String returns the whole text.
func (b *Buffer) String() string { return b.s.String() }

// Len returns the text length in runes.
func (b *Buffer) Len() int { return b.s.Len() }

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool { return b.s.Len() == 0 }

// EndsWithLineBreak reports whether the text ends in '\n'. A register value
// that does is line-shaped.
func (b *Buffer) EndsWithLineBreak() bool {
	n := b.s.Len()
	return n > 0 && b.s.RuneAt(n-1) == '\n'
}

// Lines returns the rows of the buffer. The slice is shared with the buffer
// and must not be modified.
func (b *Buffer) Lines() []string {
	b.index()
	return b.lines
}

// LineCount returns the number of rows.
func (b *Buffer) LineCount() int {
	b.index()
	return len(b.lines)
}

// Line returns row, or "" if row does not exist.
func (b *Buffer) Line(row int) string {
	b.index()
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// RowLen returns the rune length of row, excluding its line break.
func (b *Buffer) RowLen(row int) int {
	return len([]rune(b.Line(row)))
}

// RowStart returns the offset of the first rune of row. Rows past the end map
// to the end of the text.
func (b *Buffer) RowStart(row int) int {
	b.index()
	if row < 0 {
		return 0
	}
	if row >= len(b.starts) {
		return b.s.Len()
	}
	return b.starts[row]
}

// RowEnd returns the offset just past the last rune of row, before its line
// break.
func (b *Buffer) RowEnd(row int) int {
	if row >= b.LineCount() {
		return b.s.Len()
	}
	return b.RowStart(row) + b.RowLen(row)
}

// Offset returns the absolute offset of (col,row). Both are clamped to the
// text.
func (b *Buffer) Offset(col, row int) int {
	row = clamp(row, 0, b.LineCount()-1)
	return b.RowStart(row) + clamp(col, 0, b.RowLen(row))
}

// Position is the inverse of Offset.
func (b *Buffer) Position(offset int) (col, row int) {
	b.index()
	offset = clamp(offset, 0, b.s.Len())
	row = len(b.starts) - 1
	for i, st := range b.starts {
		if st > offset {
			row = i - 1
			break
		}
	}
	return offset - b.starts[row], row
}

// IndentHead returns the column of the first non-blank rune of row, or the
// row length when the row is blank.
func (b *Buffer) IndentHead(row int) int {
	for i, r := range []rune(b.Line(row)) {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return b.RowLen(row)
}

// InsertChar inserts c at (col,row).
func (b *Buffer) InsertChar(col, row int, c rune) {
	b.insertAt(b.Offset(col, row), []rune{c})
}

// InsertString inserts s at (col,row).
func (b *Buffer) InsertString(col, row int, s string) {
	b.insertAt(b.Offset(col, row), []rune(s))
}

// Insert inserts the contents of other at (col,row). A line-shaped value
// inserted at row LineCount() becomes a new last row.
func (b *Buffer) Insert(col, row int, other *Buffer) {
	text := other.String()
	if row >= b.LineCount() && other.EndsWithLineBreak() {
		b.insertAt(b.s.Len(), []rune("\n"+strings.TrimSuffix(text, "\n")))
		return
	}
	b.insertAt(b.Offset(col, row), []rune(text))
}

func (b *Buffer) insertAt(pos int, rs []rune) {
	if len(rs) == 0 {
		return
	}
	_ = b.s.Insert(pos, rs)
	b.touch()
}

// RemoveRange removes [start,end) and returns the removed text. The range is
// clamped to the text.
func (b *Buffer) RemoveRange(start, end int) *Buffer {
	start = clamp(start, 0, b.s.Len())
	end = clamp(end, start, b.s.Len())
	removed := string(b.s.Slice(start, end))
	if start < end {
		_ = b.s.Delete(start, end)
		b.touch()
	}
	return FromString(removed)
}

// RemoveChars removes up to count runes of row starting at col. The removal
// never crosses the end of the row.
func (b *Buffer) RemoveChars(col, row, count int) *Buffer {
	start := b.Offset(col, row)
	end := min(start+max(count, 0), b.RowEnd(row))
	return b.RemoveRange(start, end)
}

// RemoveLines removes count rows starting at row and returns them
// line-shaped. Removing the last row also removes the line break before it,
// and an emptied buffer keeps one empty row.
func (b *Buffer) RemoveLines(row, count int) *Buffer {
	row, count = b.lineSpan(row, count)
	if count == 0 {
		return New()
	}
	start := b.RowStart(row)
	end := b.RowStart(row + count)
	last := row+count >= b.LineCount()
	if last {
		end = b.s.Len()
		if row > 0 {
			start--
		}
	}
	text := b.RemoveRange(start, end).String()
	if last && row > 0 {
		text = strings.TrimPrefix(text, "\n")
	}
	return FromString(asLines(text))
}

// SubseqLines returns count rows starting at row, line-shaped, without
// modifying the buffer.
func (b *Buffer) SubseqLines(row, count int) *Buffer {
	row, count = b.lineSpan(row, count)
	if count == 0 {
		return New()
	}
	end := b.RowStart(row + count)
	if row+count >= b.LineCount() {
		end = b.s.Len()
	}
	return FromString(asLines(string(b.s.Slice(b.RowStart(row), end))))
}

// Extract returns the text in [start,end) without modifying the buffer.
func (b *Buffer) Extract(start, end int) *Buffer {
	return FromString(string(b.s.Slice(start, end)))
}

func (b *Buffer) lineSpan(row, count int) (int, int) {
	n := b.LineCount()
	if row < 0 || row >= n || count <= 0 {
		return row, 0
	}
	return row, min(count, n-row)
}

func asLines(text string) string {
	if strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
