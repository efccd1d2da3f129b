// Package keys encodes terminal key events as the textual tokens the
// grammars operate on. Printable runes map to themselves; control
// combinations and named keys map to bracketed names such as "<C-c>",
// "<Esc>" or "<Left>".
package keys

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Named key tokens.
const (
	Esc       = "<Esc>"
	CtrlC     = "<C-c>"
	Enter     = "<CR>"
	Backspace = "<BS>"
	Tab       = "<Tab>"
	Delete    = "<Del>"
	Left      = "<Left>"
	Right     = "<Right>"
	Up        = "<Up>"
	Down      = "<Down>"
	Home      = "<Home>"
	End       = "<End>"
	PageUp    = "<PageUp>"
	PageDown  = "<PageDown>"
	Insert    = "<Insert>"
)

var named = map[tcell.Key]string{
	tcell.KeyEscape:     Esc,
	tcell.KeyEnter:      Enter,
	tcell.KeyBackspace:  Backspace,
	tcell.KeyBackspace2: Backspace,
	tcell.KeyTab:        Tab,
	tcell.KeyDelete:     Delete,
	tcell.KeyLeft:       Left,
	tcell.KeyRight:      Right,
	tcell.KeyUp:         Up,
	tcell.KeyDown:       Down,
	tcell.KeyHome:       Home,
	tcell.KeyEnd:        End,
	tcell.KeyPgUp:       PageUp,
	tcell.KeyPgDn:       PageDown,
	tcell.KeyInsert:     Insert,
}

// Ctrl returns the token for Ctrl plus the lower-case letter c.
func Ctrl(c rune) string {
	return fmt.Sprintf("<C-%c>", c)
}

// FromEvent returns the token for ev. It reports false for events that have
// no textual form.
func FromEvent(ev *tcell.EventKey) (string, bool) {
	k := ev.Key()
	if k == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case ev.Modifiers()&tcell.ModCtrl != 0:
			return Ctrl(lower(r)), true
		case ev.Modifiers()&tcell.ModAlt != 0:
			return fmt.Sprintf("<A-%c>", r), true
		}
		return string(r), true
	}
	if tok, ok := named[k]; ok {
		return tok, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Ctrl(rune('a' + int(k-tcell.KeyCtrlA))), true
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return fmt.Sprintf("<F%d>", int(k-tcell.KeyF1)+1), true
	}
	return "", false
}

// IsCancel reports whether tok aborts pending input or leaves a mode.
func IsCancel(tok string) bool {
	return tok == Esc || tok == CtrlC
}

// IsPrintable reports whether tok is a single literal rune rather than a
// bracketed key name.
func IsPrintable(tok string) bool {
	rs := []rune(tok)
	return len(rs) == 1
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
