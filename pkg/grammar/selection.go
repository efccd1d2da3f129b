package grammar

import (
	"github.com/TheRakeshPurohit/neu/pkg/action"
	"github.com/TheRakeshPurohit/neu/pkg/keys"
)

// selectionKind lists the selection tokens in priority order. "iw" comes
// before the single-rune tokens so it is matched as one literal.
var selectionKind = alt(
	lit(action.SelWord, "iw"),
	lit(action.SelLeft, "h", keys.Left),
	lit(action.SelDown, "j", keys.Down),
	lit(action.SelUp, "k", keys.Up),
	lit(action.SelRight, "l", keys.Right),
	lit(action.SelForwardWord, "w"),
	lit(action.SelBackWord, "b"),
	lit(action.SelLine, "_"),
	lit(action.SelLineRemain, "$"),
)

var selection = mapTo(selectionKind, action.SelectionKind.Once)

// countedSelection is an operator's optional count followed by a selection,
// as in the "2w" of "d2w".
var countedSelection rule[action.Selection] = func(in string) (action.Selection, string, bool) {
	n, rest := count(in)
	sel, rest, ok := selection(rest)
	if !ok {
		return action.Selection{}, in, false
	}
	sel.Count = n
	return sel, rest, true
}

// ParseSelection consumes one selection token from the front of in. It
// parses no count: the returned selection always has count 1.
func ParseSelection(in string) (action.Selection, string, error) {
	sel, rest, ok := selection(in)
	if !ok {
		return action.Selection{}, in, ErrIncomplete
	}
	return sel, rest, nil
}
