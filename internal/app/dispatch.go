package app

import (
	"strings"

	"github.com/TheRakeshPurohit/neu/pkg/action"
	"github.com/TheRakeshPurohit/neu/pkg/buffer"
)

// Dispatch applies a parsed command to the state. Each command runs to
// completion; the caller clamps the cursor afterwards.
func (s *EditorState) Dispatch(a action.Action) {
	s.log("action", map[string]any{
		"action": action.Name(a.Kind),
		"count":  a.Count,
		"cursor": []int{s.Cursor.Col, s.Cursor.Row},
	})
	switch k := a.Kind.(type) {
	case action.Movement:
		s.move(k.Motion, a.Count)
	case action.Edit:
		s.edit(k.Op, a.Count)
		s.last = &change{act: a}
	case action.Yank:
		s.yank(k.Selection, a.Count)
	case action.Change:
		s.change(k.Selection, a.Count)
		s.startInsert(a)
	case action.EnterInsertMode:
		s.startInsert(a)
	case action.EnterAppendMode:
		s.Cursor.Col = min(s.Cursor.Col+1, s.Buf.RowLen(s.Cursor.Row))
		s.startInsert(a)
	case action.EnterCmdLineMode:
		s.Mode = CmdLine{}
	case action.RepeatLast:
		s.repeat(a.Count)
	case action.CancelPending:
	}
}

func (s *EditorState) startInsert(a action.Action) {
	s.Mode = Insert{}
	s.recording = &change{act: a}
}

func (s *EditorState) move(m action.MovementKind, n int) {
	c := &s.Cursor
	switch m {
	case action.CursorLeft:
		c.Col = satSub(c.Col, n)
	case action.CursorRight:
		c.Col += n
	case action.CursorUp:
		c.Row = satSub(c.Row, n)
	case action.CursorDown:
		c.Row += n
	case action.ScrollScreenDown:
		d := action.MulCount(s.textHeight(), n)
		c.Row += d
		s.RowOffset = min(s.RowOffset+d, s.Buf.LineCount()-1)
	case action.ScrollScreenUp:
		d := action.MulCount(s.textHeight(), n)
		c.Row = satSub(c.Row, d)
		s.RowOffset = satSub(s.RowOffset, d)
	case action.LineIndentHead:
		c.Col = s.Buf.IndentHead(c.Row)
	case action.LineTail:
		c.Row = min(c.Row+n-1, s.Buf.LineCount()-1)
		c.Col = satSub(s.Buf.RowLen(c.Row), 1)
	case action.DocumentHead:
		c.Row = min(n-1, s.Buf.LineCount()-1)
		c.Col = s.Buf.IndentHead(c.Row)
	case action.DocumentTail:
		c.Row = s.Buf.LineCount() - 1
		c.Col = s.Buf.IndentHead(c.Row)
	case action.WordForward:
		off := s.offset()
		s.moveTo(off + s.Buf.CountForwardWord(off, n))
	case action.WordBack:
		off := s.offset()
		s.moveTo(off - s.Buf.CountBackWord(off, n))
	}
}

func (s *EditorState) edit(op action.EditKind, n int) {
	switch op := op.(type) {
	case action.RemoveSelection:
		s.remove(op.Selection, n)
	case action.RemoveChar:
		s.Yank.Set(s.Buf.RemoveChars(s.Cursor.Col, s.Cursor.Row, n))
		s.Dirty = true
	case action.AppendYank:
		s.paste(true, n)
	case action.InsertYank:
		s.paste(false, n)
	}
}

// remove cuts the selection into the register.
func (s *EditorState) remove(sel action.Selection, n int) {
	sp := s.measure(sel, n)
	if sp.linewise {
		s.Yank.Set(s.Buf.RemoveLines(sp.row, sp.rows))
		row := min(sp.row, s.Buf.LineCount()-1)
		s.Cursor = Cursor{Row: row, Col: s.Buf.IndentHead(row)}
	} else {
		s.Yank.Set(s.Buf.RemoveRange(sp.start, sp.end))
		s.moveTo(sp.start)
	}
	s.Dirty = true
}

// change cuts the selection like remove. Linewise selections keep one empty
// row where the removed rows were.
func (s *EditorState) change(sel action.Selection, n int) {
	if !sel.Kind.Linewise() {
		s.remove(sel, n)
		return
	}
	sp := s.measure(sel, n)
	s.Yank.Set(s.Buf.SubseqLines(sp.row, sp.rows))
	last := min(sp.row+sp.rows, s.Buf.LineCount()) - 1
	s.Buf.RemoveRange(s.Buf.RowStart(sp.row), s.Buf.RowEnd(last))
	s.Cursor = Cursor{Row: sp.row, Col: 0}
	s.Dirty = true
}

// yank copies the selection into the register. A characterwise yank moves
// the cursor to the start of what was copied.
func (s *EditorState) yank(sel action.Selection, n int) {
	sp := s.measure(sel, n)
	if sp.linewise {
		s.Yank.Set(s.Buf.SubseqLines(sp.row, sp.rows))
		return
	}
	s.Yank.Set(s.Buf.Extract(sp.start, sp.end))
	s.moveTo(sp.start)
}

// paste inserts the register n times, after the cursor or before it.
// Line-shaped values go below or above the cursor row.
func (s *EditorState) paste(after bool, n int) {
	if !s.Yank.HasData() {
		return
	}
	text := buffer.FromString(strings.Repeat(s.Yank.String(), n))
	row, col := s.Cursor.Row, s.Cursor.Col
	if s.Yank.Linewise() {
		if after {
			row++
		}
		s.Buf.Insert(0, row, text)
		s.Cursor = Cursor{Row: row, Col: 0}
	} else {
		if after {
			col = min(col+1, s.Buf.RowLen(row))
		}
		s.Buf.Insert(col, row, text)
		s.Cursor.Col = col
	}
	s.Dirty = true
}

// repeat replays the last change. A count above one replaces the recorded
// count.
func (s *EditorState) repeat(n int) {
	if s.last == nil {
		return
	}
	c := *s.last
	if n > 1 {
		c.act.Count = n
	}
	s.Dispatch(c.act)
	if _, ok := s.Mode.(Insert); !ok {
		return
	}
	for _, tok := range c.keys {
		s.typeKey(tok)
		s.clampCursor()
	}
	s.Mode = Normal{}
	s.recording = nil
	s.last = &c
}
