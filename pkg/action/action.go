// Package action defines the typed commands the normal-mode grammar
// produces and the dispatcher consumes.
//
// Kind and EditKind are closed sums: their marker methods are unexported, so
// the variants declared here are the only ones that exist.
package action

import "fmt"

// MaxCount is the largest repeat count an Action carries. Longer digit runs
// saturate to it.
const MaxCount = 99999

// Action is one fully parsed normal-mode command.
type Action struct {
	Count int
	Kind  Kind
}

// New returns an Action with count normalised into [1, MaxCount].
func New(count int, kind Kind) Action {
	return Action{Count: ClampCount(count), Kind: kind}
}

// ClampCount maps n into [1, MaxCount].
func ClampCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// MulCount multiplies two counts, saturating at MaxCount.
func MulCount(a, b int) int {
	a, b = ClampCount(a), ClampCount(b)
	if a > MaxCount/b {
		return MaxCount
	}
	return a * b
}

func (a Action) String() string {
	return fmt.Sprintf("%d×%s", a.Count, Name(a.Kind))
}

// Kind is the tagged union of everything an Action can do.
type Kind interface{ isKind() }

// Movement moves the cursor only.
type Movement struct{ Motion MovementKind }

// Edit mutates the buffer.
type Edit struct{ Op EditKind }

// Yank copies a selection into the register.
type Yank struct{ Selection Selection }

// Change removes a selection and enters insert mode.
type Change struct{ Selection Selection }

type (
	EnterInsertMode  struct{}
	EnterAppendMode  struct{}
	EnterCmdLineMode struct{}
	RepeatLast       struct{}
	CancelPending    struct{}
)

func (Movement) isKind()         {}
func (Edit) isKind()             {}
func (Yank) isKind()             {}
func (Change) isKind()           {}
func (EnterInsertMode) isKind()  {}
func (EnterAppendMode) isKind()  {}
func (EnterCmdLineMode) isKind() {}
func (RepeatLast) isKind()       {}
func (CancelPending) isKind()    {}

// EditKind is the tagged union of buffer edits.
type EditKind interface{ isEdit() }

// RemoveSelection removes a selection into the register.
type RemoveSelection struct{ Selection Selection }

type (
	RemoveChar struct{}
	AppendYank struct{}
	InsertYank struct{}
)

func (RemoveSelection) isEdit() {}
func (RemoveChar) isEdit()      {}
func (AppendYank) isEdit()      {}
func (InsertYank) isEdit()      {}

// MovementKind enumerates cursor motions.
type MovementKind uint8

const (
	CursorLeft MovementKind = iota
	CursorDown
	CursorUp
	CursorRight
	ScrollScreenUp
	ScrollScreenDown
	LineIndentHead
	LineTail
	DocumentHead
	DocumentTail
	WordForward
	WordBack
)

var movementNames = [...]string{
	CursorLeft:       "left",
	CursorDown:       "down",
	CursorUp:         "up",
	CursorRight:      "right",
	ScrollScreenUp:   "scroll-up",
	ScrollScreenDown: "scroll-down",
	LineIndentHead:   "line-indent-head",
	LineTail:         "line-tail",
	DocumentHead:     "document-head",
	DocumentTail:     "document-tail",
	WordForward:      "word-forward",
	WordBack:         "word-back",
}

func (m MovementKind) String() string {
	if int(m) < len(movementNames) {
		return movementNames[m]
	}
	return "unknown"
}

// SelectionKind enumerates the spans a selection can describe relative to
// the cursor.
type SelectionKind uint8

const (
	SelLeft SelectionKind = iota
	SelDown
	SelUp
	SelRight
	SelForwardWord
	SelBackWord
	SelWord
	SelLine
	SelLineRemain
)

var selectionNames = [...]string{
	SelLeft:        "left",
	SelDown:        "down",
	SelUp:          "up",
	SelRight:       "right",
	SelForwardWord: "forward-word",
	SelBackWord:    "back-word",
	SelWord:        "word",
	SelLine:        "line",
	SelLineRemain:  "line-remain",
}

func (k SelectionKind) String() string {
	if int(k) < len(selectionNames) {
		return selectionNames[k]
	}
	return "unknown"
}

// Once returns a count-1 selection of kind k.
func (k SelectionKind) Once() Selection {
	return Selection{Kind: k, Count: 1}
}

// Linewise reports whether selections of kind k cover whole rows.
func (k SelectionKind) Linewise() bool {
	switch k {
	case SelLine, SelDown, SelUp:
		return true
	}
	return false
}

// Selection is a span descriptor resolved against the cursor at dispatch.
type Selection struct {
	Kind  SelectionKind
	Count int
}

func (s Selection) String() string {
	return fmt.Sprintf("%s×%d", s.Kind, s.Count)
}

// Name returns a short, stable name for k, used in logs.
func Name(k Kind) string {
	switch k := k.(type) {
	case Movement:
		return "move." + k.Motion.String()
	case Edit:
		switch op := k.Op.(type) {
		case RemoveSelection:
			return "remove." + op.Selection.String()
		case RemoveChar:
			return "remove-char"
		case AppendYank:
			return "paste.after"
		case InsertYank:
			return "paste.before"
		}
	case Yank:
		return "yank." + k.Selection.String()
	case Change:
		return "change." + k.Selection.String()
	case EnterInsertMode:
		return "mode.insert"
	case EnterAppendMode:
		return "mode.append"
	case EnterCmdLineMode:
		return "mode.cmdline"
	case RepeatLast:
		return "repeat"
	case CancelPending:
		return "cancel"
	}
	return "unknown"
}
