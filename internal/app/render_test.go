package app

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheRakeshPurohit/neu/pkg/config"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func snapshotOf(s *EditorState, w, h int) Snapshot {
	s.Resize(w, h)
	return s.Snapshot()
}

func TestDraw_GutterTextAndCursor(t *testing.T) {
	scr := newSimScreen(t, 20, 6)
	st := stateWith("abc\ndef")
	st.Cursor = Cursor{Row: 1, Col: 1}
	NewRenderer(scr, config.DefaultTheme(), true).Draw(snapshotOf(st, 20, 6))

	assert.Equal(t, "1 abc", rowText(scr, 0))
	assert.Equal(t, "2 def", rowText(scr, 1))
	assert.Equal(t, "", rowText(scr, 2))
	assert.True(t, strings.HasPrefix(rowText(scr, 4), "NORMAL  [No Name]"))

	x, y, visible := scr.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)
}

func TestDraw_GutterWidthFollowsLineCount(t *testing.T) {
	scr := newSimScreen(t, 20, 14)
	st := stateWith(numberedLines(12))
	NewRenderer(scr, config.DefaultTheme(), true).Draw(snapshotOf(st, 20, 14))
	assert.Equal(t, " 1 line 1", rowText(scr, 0))
	assert.Equal(t, "10 line 10", rowText(scr, 9))
}

func TestDraw_NoLineNumbers(t *testing.T) {
	scr := newSimScreen(t, 20, 6)
	st := stateWith("abc")
	NewRenderer(scr, config.DefaultTheme(), false).Draw(snapshotOf(st, 20, 6))
	assert.Equal(t, "abc", rowText(scr, 0))
}

func TestDraw_ScrolledViewport(t *testing.T) {
	scr := newSimScreen(t, 20, 6)
	st := stateWith(numberedLines(20))
	st.Resize(20, 6)
	press(st, "10j")
	NewRenderer(scr, config.DefaultTheme(), true).Draw(st.Snapshot())
	assert.Equal(t, " 8 line 8", rowText(scr, 0))
	assert.Equal(t, "11 line 11", rowText(scr, 3))
	_, y, _ := scr.GetCursor()
	assert.Equal(t, 3, y)
}

func TestDraw_ModesAndStatus(t *testing.T) {
	scr := newSimScreen(t, 30, 6)
	r := NewRenderer(scr, config.DefaultTheme(), false)
	st := stateWith("abc")
	st.FilePath = "notes.txt"

	press(st, "d")
	r.Draw(snapshotOf(st, 30, 6))
	assert.Equal(t, "NORMAL  notes.txt  d", rowText(scr, 4))

	press(st, "<Esc>i")
	r.Draw(snapshotOf(st, 30, 6))
	assert.Equal(t, "INSERT  notes.txt", rowText(scr, 4))

	press(st, "x<Esc>:wq")
	r.Draw(snapshotOf(st, 30, 6))
	assert.Equal(t, "COMMAND  notes.txt [+]", rowText(scr, 4))
	assert.Equal(t, ":wq", rowText(scr, 5))
	x, y, _ := scr.GetCursor()
	assert.Equal(t, 3, x)
	assert.Equal(t, 5, y)

	st.Mode = Normal{}
	st.setStatus("boom", true)
	r.Draw(snapshotOf(st, 30, 6))
	assert.Equal(t, "boom", rowText(scr, 5))
	_, _, style, _ := scr.GetContent(0, 5)
	fg, _, _ := style.Decompose()
	assert.Equal(t, config.DefaultTheme().Error, fg)
}

func TestDraw_TabsAndWideRunes(t *testing.T) {
	scr := newSimScreen(t, 20, 6)
	st := stateWith("\tx\n世界y")
	r := NewRenderer(scr, config.DefaultTheme(), false)

	st.Cursor = Cursor{Col: 1}
	r.Draw(snapshotOf(st, 20, 6))
	x, _, _ := scr.GetCursor()
	assert.Equal(t, 4, x)

	st.Cursor = Cursor{Row: 1, Col: 2}
	r.Draw(snapshotOf(st, 20, 6))
	x, _, _ = scr.GetCursor()
	assert.Equal(t, 4, x)
}

func TestCursorStyle(t *testing.T) {
	assert.Equal(t, tcell.CursorStyleSteadyBlock, cursorStyle(Normal{}))
	assert.Equal(t, tcell.CursorStyleSteadyUnderline, cursorStyle(Normal{Pending: "d"}))
	assert.Equal(t, tcell.CursorStyleSteadyBar, cursorStyle(Insert{}))
	assert.Equal(t, tcell.CursorStyleSteadyBlock, cursorStyle(CmdLine{}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "世", truncate("世界", 3), "a wide grapheme is never split")
	assert.Equal(t, "é", truncate("éx", 1))
}

func TestRenderer_LatestFrameWins(t *testing.T) {
	scr := newSimScreen(t, 20, 6)
	r := NewRenderer(scr, config.DefaultTheme(), true)
	st := stateWith("")
	for i := 0; i < 10; i++ {
		st.Cursor.Col = 0
		st.Buf.InsertString(0, 0, "x")
		r.Render(st.Snapshot()) // never blocks with no consumer
	}
	got := <-r.frames
	assert.Equal(t, []string{"xxxxxxxxxx"}, got.Lines)
	assert.Empty(t, r.frames)
}

func TestRenderer_FinishWaitsForAck(t *testing.T) {
	scr := newSimScreen(t, 20, 6)
	r := NewRenderer(scr, config.DefaultTheme(), true)
	r.Start()
	r.Render(stateWith("abc").Snapshot())

	done := make(chan struct{})
	go func() {
		r.Finish()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Finish did not return")
	}
}
