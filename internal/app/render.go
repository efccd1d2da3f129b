package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/TheRakeshPurohit/neu/pkg/config"
)

const tabWidth = 4

// Snapshot is a copy of the state the renderer needs for one frame.
type Snapshot struct {
	Width, Height int
	RowOffset     int
	LineCount     int
	Lines         []string // visible rows, starting at RowOffset
	Cursor        Cursor
	Mode          Mode
	FilePath      string
	Dirty         bool
	Status        string
	StatusErr     bool
}

// Snapshot copies the visible part of the state.
func (s *EditorState) Snapshot() Snapshot {
	all := s.Buf.Lines()
	lo := min(s.RowOffset, len(all))
	hi := min(lo+s.textHeight(), len(all))
	return Snapshot{
		Width:     s.Width,
		Height:    s.Height,
		RowOffset: s.RowOffset,
		LineCount: len(all),
		Lines:     append([]string(nil), all[lo:hi]...),
		Cursor:    s.Cursor,
		Mode:      s.Mode,
		FilePath:  s.FilePath,
		Dirty:     s.Dirty,
		Status:    s.Status,
		StatusErr: s.StatusErr,
	}
}

// Renderer draws snapshots on its own goroutine. Render never blocks: a
// frame the renderer has not picked up yet is replaced by the newer one.
type Renderer struct {
	screen      tcell.Screen
	theme       config.Theme
	lineNumbers bool

	frames chan Snapshot
	finish chan chan struct{}
}

// NewRenderer returns a renderer for screen. Call Start to run it.
func NewRenderer(screen tcell.Screen, theme config.Theme, lineNumbers bool) *Renderer {
	return &Renderer{
		screen:      screen,
		theme:       theme,
		lineNumbers: lineNumbers,
		frames:      make(chan Snapshot, 1),
		finish:      make(chan chan struct{}),
	}
}

// Start launches the render goroutine.
func (r *Renderer) Start() { go r.loop() }

func (r *Renderer) loop() {
	for {
		select {
		case snap := <-r.frames:
			r.Draw(snap)
		case ack := <-r.finish:
			r.screen.Clear()
			r.screen.Show()
			close(ack)
			return
		}
	}
}

// Render queues snap, dropping any frame still waiting in the slot. It must
// only be called from the input loop.
func (r *Renderer) Render(snap Snapshot) {
	select {
	case r.frames <- snap:
		return
	default:
	}
	select {
	case <-r.frames:
	default:
	}
	select {
	case r.frames <- snap:
	default:
	}
}

// Finish tears the renderer down and waits until it has done so.
func (r *Renderer) Finish() {
	ack := make(chan struct{})
	r.finish <- ack
	<-ack
}

// Draw paints one frame synchronously.
func (r *Renderer) Draw(snap Snapshot) {
	s := r.screen
	width, height := s.Size()
	s.Clear()
	textStyle := tcell.StyleDefault.Foreground(r.theme.Text)
	gutterStyle := tcell.StyleDefault.Foreground(r.theme.Gutter)

	gutter := 0
	digits := len(fmt.Sprint(snap.LineCount))
	if r.lineNumbers {
		gutter = digits + 1
	}
	rows := max(height-2, 0)
	for i := 0; i < rows && i < len(snap.Lines); i++ {
		if r.lineNumbers {
			putString(s, 0, i, fmt.Sprintf("%*d", digits, snap.RowOffset+i+1), gutterStyle, width)
		}
		putLine(s, gutter, i, snap.Lines[i], textStyle, width)
	}

	status := tcell.StyleDefault.Foreground(r.theme.StatusForeground).Background(r.theme.StatusBackground)
	for x := 0; x < width; x++ {
		s.SetContent(x, height-2, ' ', nil, status)
	}
	putString(s, 0, height-2, statusLine(snap, width), status, width)

	switch m := snap.Mode.(type) {
	case CmdLine:
		line := ":" + m.Pending
		putString(s, 0, height-1, line, textStyle, width)
		s.SetCursorStyle(tcell.CursorStyleSteadyBlock)
		s.ShowCursor(min(runewidth.StringWidth(line), width-1), height-1)
	default:
		if snap.Status != "" {
			st := tcell.StyleDefault.Foreground(r.theme.Message)
			if snap.StatusErr {
				st = st.Foreground(r.theme.Error)
			}
			putString(s, 0, height-1, snap.Status, st, width)
		}
		s.SetCursorStyle(cursorStyle(snap.Mode))
		y := snap.Cursor.Row - snap.RowOffset
		x := gutter
		if y >= 0 && y < len(snap.Lines) {
			x += columnWidth(snap.Lines[y], snap.Cursor.Col)
		}
		s.ShowCursor(min(x, max(width-1, 0)), y)
	}
	s.Show()
}

func cursorStyle(m Mode) tcell.CursorStyle {
	switch m := m.(type) {
	case Insert:
		return tcell.CursorStyleSteadyBar
	case Normal:
		if m.Pending != "" {
			return tcell.CursorStyleSteadyUnderline
		}
	}
	return tcell.CursorStyleSteadyBlock
}

// statusLine is the mode label, the file name and the pending keys, cut to
// width on a grapheme boundary.
func statusLine(snap Snapshot, width int) string {
	var b strings.Builder
	b.WriteString(ModeName(snap.Mode))
	name := snap.FilePath
	if name == "" {
		name = "[No Name]"
	}
	b.WriteString("  " + name)
	if snap.Dirty {
		b.WriteString(" [+]")
	}
	if m, ok := snap.Mode.(Normal); ok && m.Pending != "" {
		b.WriteString("  " + m.Pending)
	}
	return truncate(b.String(), width)
}

// truncate cuts s to at most width cells without splitting a grapheme.
func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String()
}

func runeWidth(r rune, x int) int {
	if r == '\t' {
		return tabWidth - x%tabWidth
	}
	return max(runewidth.RuneWidth(r), 1)
}

// columnWidth is the number of cells taken by the first col runes of line.
func columnWidth(line string, col int) int {
	x := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		x += runeWidth(r, x)
	}
	return x
}

func putLine(s tcell.Screen, x0, y int, line string, st tcell.Style, width int) {
	x := 0
	for _, r := range line {
		w := runeWidth(r, x)
		if x0+x+w > width {
			return
		}
		if r == '\t' {
			for i := 0; i < w; i++ {
				s.SetContent(x0+x+i, y, ' ', nil, st)
			}
		} else {
			s.SetContent(x0+x, y, r, nil, st)
		}
		x += w
	}
}

func putString(s tcell.Screen, x, y int, str string, st tcell.Style, width int) {
	for _, r := range str {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, st)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
