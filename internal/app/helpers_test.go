package app

import (
	"fmt"
	"strings"

	"github.com/TheRakeshPurohit/neu/pkg/buffer"
)

func stateWith(text string) *EditorState {
	s := NewState()
	s.Buf = buffer.FromString(text)
	return s
}

// tokens splits a key sequence such as "ihi<Esc>" into "i", "h", "i",
// "<Esc>".
func tokens(seq string) []string {
	var out []string
	for seq != "" {
		if strings.HasPrefix(seq, "<") {
			if i := strings.Index(seq, ">"); i > 1 {
				out = append(out, seq[:i+1])
				seq = seq[i+1:]
				continue
			}
		}
		r := []rune(seq)[0]
		out = append(out, string(r))
		seq = seq[len(string(r)):]
	}
	return out
}

// press feeds seq and returns the signal of the last key.
func press(s *EditorState, seq string) Signal {
	sig := Continue
	for _, tok := range tokens(seq) {
		sig = s.HandleKey(tok)
	}
	return sig
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "line %d", i+1)
	}
	return b.String()
}
