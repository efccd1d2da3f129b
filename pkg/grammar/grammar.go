// Package grammar decodes pending normal-mode input into actions.
//
// The grammar is a list of ordered alternatives: the first alternative that
// matches wins, even when a later one would match more input, and nothing is
// retried once an alternative has been chosen. Multi-rune tokens ("dd",
// "gg", "<C-f>") are therefore listed before any shorter token that is a
// textual prefix of them.
//
//	[count] movement              h j k l <Left> … w b ^ $ gg G <C-f> <C-b>
//	[count] x | i | a | : | p | P | .
//	[count] dd | d [count] selection | D
//	[count] cc | c [count] selection | C
//	[count] yy | Y | y [count] selection
//	[count] <anything> (<Esc> | <C-c>)
//
// Parse is pure. An input that matches nothing yet reports ErrIncomplete and
// the caller keeps accumulating keys; any input can be abandoned with a
// cancel token, which always completes as CancelPending.
package grammar

import (
	"errors"

	"github.com/TheRakeshPurohit/neu/pkg/action"
	"github.com/TheRakeshPurohit/neu/pkg/keys"
)

// ErrIncomplete reports that the input is not (yet) a complete command.
var ErrIncomplete = errors.New("incomplete command")

func move(m action.MovementKind, lits ...string) rule[action.Kind] {
	return lit[action.Kind](action.Movement{Motion: m}, lits...)
}

func edit(op action.EditKind, lits ...string) rule[action.Kind] {
	return lit[action.Kind](action.Edit{Op: op}, lits...)
}

var movement = alt(
	move(action.ScrollScreenDown, "<C-f>", keys.PageDown),
	move(action.ScrollScreenUp, "<C-b>", keys.PageUp),
	move(action.LineIndentHead, "^"),
	move(action.LineTail, "$", keys.End),
	move(action.DocumentHead, "gg"),
	move(action.DocumentTail, "G"),
	move(action.CursorLeft, "h", keys.Left),
	move(action.CursorDown, "j", keys.Down),
	move(action.CursorUp, "k", keys.Up),
	move(action.CursorRight, "l", keys.Right),
	move(action.WordForward, "w"),
	move(action.WordBack, "b"),
)

func removeSel(s action.Selection) action.Kind {
	return action.Edit{Op: action.RemoveSelection{Selection: s}}
}

func changeSel(s action.Selection) action.Kind { return action.Change{Selection: s} }

func yankSel(s action.Selection) action.Kind { return action.Yank{Selection: s} }

var remove = alt(
	lit(removeSel(action.SelLine.Once()), "dd"),
	mapTo(prefixed("d", countedSelection), removeSel),
	lit(removeSel(action.SelLineRemain.Once()), "D"),
)

var change = alt(
	lit(changeSel(action.SelLine.Once()), "cc"),
	mapTo(prefixed("c", countedSelection), changeSel),
	lit(changeSel(action.SelLineRemain.Once()), "C"),
)

var yank = alt(
	lit(yankSel(action.SelLine.Once()), "yy", "Y"),
	mapTo(prefixed("y", countedSelection), yankSel),
)

var actionKind = alt(
	movement,
	edit(action.RemoveChar{}, "x", keys.Delete),
	lit[action.Kind](action.EnterInsertMode{}, "i"),
	lit[action.Kind](action.EnterAppendMode{}, "a"),
	lit[action.Kind](action.EnterCmdLineMode{}, ":"),
	edit(action.AppendYank{}, "p"),
	edit(action.InsertYank{}, "P"),
	lit[action.Kind](action.RepeatLast{}, "."),
	remove,
	change,
	yank,
	skipUntil[action.Kind](action.CancelPending{}, keys.CtrlC, keys.Esc),
)

// Parse decodes a complete command from the front of in and returns it with
// the unconsumed rest. A leading "0" is read as a count digit, and a count
// of zero is treated as one.
func Parse(in string) (action.Action, string, error) {
	n, rest := count(in)
	kind, rest, ok := actionKind(rest)
	if !ok {
		return action.Action{}, in, ErrIncomplete
	}
	return action.New(n, kind), rest, nil
}
