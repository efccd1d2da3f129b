package app

import (
	"errors"

	"github.com/TheRakeshPurohit/neu/pkg/grammar"
	"github.com/TheRakeshPurohit/neu/pkg/keys"
)

// HandleKey feeds one key token to the current mode. Every key leaves the
// cursor inside the buffer and on screen, whatever the mode did.
func (s *EditorState) HandleKey(tok string) Signal {
	s.setStatus("", false)
	sig := Continue
	switch m := s.Mode.(type) {
	case Normal:
		s.normalKey(m.Pending + tok)
	case Insert:
		s.insertModeKey(tok)
	case CmdLine:
		sig = s.cmdLineKey(m, tok)
	}
	s.clampCursor()
	s.scrollToCursor()
	return sig
}

// normalKey parses the pending keys. A complete command clears Pending
// before it runs, so a command that switches modes decides the new mode.
func (s *EditorState) normalKey(pending string) {
	act, _, err := grammar.Parse(pending)
	if errors.Is(err, grammar.ErrIncomplete) {
		s.Mode = Normal{Pending: pending}
		return
	}
	s.Mode = Normal{}
	s.Dispatch(act)
}

func (s *EditorState) insertModeKey(tok string) {
	if keys.IsCancel(tok) {
		s.leaveInsert()
		return
	}
	if s.recording != nil {
		s.recording.keys = append(s.recording.keys, tok)
	}
	s.typeKey(tok)
}

// leaveInsert returns to Normal mode and files the finished insert session
// as the last change.
func (s *EditorState) leaveInsert() {
	s.Mode = Normal{}
	if s.recording != nil {
		s.last = s.recording
		s.recording = nil
	}
}

// typeKey applies one Insert-mode key to the buffer.
func (s *EditorState) typeKey(tok string) {
	c := &s.Cursor
	switch tok {
	case keys.Enter:
		s.Buf.InsertChar(c.Col, c.Row, '\n')
		c.Row++
		c.Col = 0
	case keys.Tab:
		s.Buf.InsertChar(c.Col, c.Row, '\t')
		c.Col++
	case keys.Backspace:
		off := s.offset()
		if off == 0 {
			return
		}
		s.Buf.RemoveRange(off-1, off)
		s.moveTo(off - 1)
	case keys.Delete:
		s.Buf.RemoveRange(s.offset(), s.offset()+1)
	case keys.Left:
		c.Col = satSub(c.Col, 1)
		return
	case keys.Right:
		c.Col++
		return
	case keys.Up:
		c.Row = satSub(c.Row, 1)
		return
	case keys.Down:
		c.Row++
		return
	default:
		if !keys.IsPrintable(tok) {
			return
		}
		s.Buf.InsertString(c.Col, c.Row, tok)
		c.Col++
	}
	s.Dirty = true
}

func (s *EditorState) cmdLineKey(m CmdLine, tok string) Signal {
	switch {
	case keys.IsCancel(tok):
		s.Mode = Normal{}
	case tok == keys.Enter:
		s.Mode = Normal{}
		return s.execute(m.Pending)
	case tok == keys.Backspace:
		r := []rune(m.Pending)
		if len(r) > 0 {
			r = r[:len(r)-1]
		}
		s.Mode = CmdLine{Pending: string(r)}
	case keys.IsPrintable(tok):
		s.Mode = CmdLine{Pending: m.Pending + tok}
	}
	return Continue
}
