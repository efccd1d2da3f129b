package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'd', 0), "d"},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '5', 0), "5"},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModCtrl), "<C-f>"},
		{"ctrl key", tcell.NewEventKey(tcell.KeyCtrlC, 0, 0), "<C-c>"},
		{"ctrl b key", tcell.NewEventKey(tcell.KeyCtrlB, 0, 0), "<C-b>"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "<A-x>"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, 0), Esc},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, 0), Enter},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, 0), Backspace},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, 0), Left},
		{"function", tcell.NewEventKey(tcell.KeyF3, 0, 0), "<F3>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromEvent(tt.ev)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsCancel(t *testing.T) {
	assert.True(t, IsCancel(Esc))
	assert.True(t, IsCancel(CtrlC))
	assert.False(t, IsCancel("c"))
}

func TestIsPrintable(t *testing.T) {
	assert.True(t, IsPrintable("é"))
	assert.False(t, IsPrintable(Left))
	assert.False(t, IsPrintable(""))
}
