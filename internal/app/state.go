package app

import (
	"github.com/TheRakeshPurohit/neu/pkg/action"
	"github.com/TheRakeshPurohit/neu/pkg/buffer"
	"github.com/TheRakeshPurohit/neu/pkg/logs"
	"github.com/TheRakeshPurohit/neu/pkg/register"
)

// Mode is the editor's input mode.
type Mode interface{ isMode() }

// Normal decodes keys as commands. Pending holds the keys of a command
// that is not complete yet.
type Normal struct{ Pending string }

// Insert types keys into the buffer.
type Insert struct{}

// CmdLine collects a ':' command line in Pending.
type CmdLine struct{ Pending string }

func (Normal) isMode()  {}
func (Insert) isMode()  {}
func (CmdLine) isMode() {}

// ModeName returns the label shown in the status line.
func ModeName(m Mode) string {
	switch m.(type) {
	case Insert:
		return "INSERT"
	case CmdLine:
		return "COMMAND"
	}
	return "NORMAL"
}

// Cursor is a (column,row) position in runes. Both are zero-based.
type Cursor struct {
	Row int
	Col int
}

// Signal tells the input loop whether to keep going.
type Signal int

const (
	Continue Signal = iota
	Quit
)

// change is the last buffer-changing command, kept for '.'. For commands
// that end in Insert mode, keys holds what was typed before leaving it.
type change struct {
	act  action.Action
	keys []string
}

// EditorState is everything the input loop mutates. It is owned by a
// single goroutine; the renderer only ever sees Snapshots of it.
type EditorState struct {
	Mode   Mode
	Cursor Cursor
	Buf    *buffer.Buffer
	Yank   register.Register

	// Viewport in screen cells. RowOffset is the first buffer row shown.
	Width     int
	Height    int
	RowOffset int
	ScrollOff int

	FilePath string
	Dirty    bool

	// Status is a one-shot message shown until the next key.
	Status    string
	StatusErr bool

	Logger *logs.Logger

	last      *change
	recording *change
}

// NewState returns a state for an empty buffer in Normal mode.
func NewState() *EditorState {
	return &EditorState{
		Mode:   Normal{},
		Buf:    buffer.New(),
		Width:  80,
		Height: 24,
	}
}

// Resize sets the viewport size and keeps the cursor on screen.
func (s *EditorState) Resize(w, h int) {
	s.Width, s.Height = w, h
	s.scrollToCursor()
}

// textHeight is the number of rows available for buffer text: the screen
// minus the status and command lines.
func (s *EditorState) textHeight() int {
	return max(s.Height-2, 1)
}

func (s *EditorState) offset() int {
	return s.Buf.Offset(s.Cursor.Col, s.Cursor.Row)
}

func (s *EditorState) moveTo(offset int) {
	col, row := s.Buf.Position(offset)
	s.Cursor = Cursor{Row: row, Col: col}
}

// clampCursor keeps the row inside the buffer and the column inside
// [0, len(row)].
func (s *EditorState) clampCursor() {
	s.Cursor.Row = min(max(s.Cursor.Row, 0), s.Buf.LineCount()-1)
	s.Cursor.Col = min(max(s.Cursor.Col, 0), s.Buf.RowLen(s.Cursor.Row))
}

// scrollToCursor moves RowOffset the least amount that puts the cursor row
// on screen with ScrollOff rows of context where possible.
func (s *EditorState) scrollToCursor() {
	rows := s.textHeight()
	margin := min(max(s.ScrollOff, 0), (rows-1)/2)
	row := s.Cursor.Row
	if row < s.RowOffset+margin {
		s.RowOffset = row - margin
	}
	if row >= s.RowOffset+rows-margin {
		s.RowOffset = row - rows + 1 + margin
	}
	s.RowOffset = min(max(s.RowOffset, 0), s.Buf.LineCount()-1)
}

func (s *EditorState) setStatus(msg string, isErr bool) {
	s.Status, s.StatusErr = msg, isErr
}

func (s *EditorState) log(event string, fields map[string]any) {
	s.Logger.Event(event, fields)
}

func satSub(a, b int) int {
	return max(a-b, 0)
}
