// Package app wires the editor together: the mode state machine and action
// dispatcher that mutate an EditorState, the renderer that draws snapshots
// of it, and the Runner that owns the terminal and the input loop.
package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/TheRakeshPurohit/neu/pkg/buffer"
	"github.com/TheRakeshPurohit/neu/pkg/config"
	"github.com/TheRakeshPurohit/neu/pkg/keys"
	"github.com/TheRakeshPurohit/neu/pkg/logs"
	"github.com/TheRakeshPurohit/neu/pkg/register"
)

// Runner owns the terminal lifecycle and the input loop.
type Runner struct {
	Screen tcell.Screen
	State  *EditorState
	Config *config.Config
	Logger *logs.Logger

	renderer *Renderer
}

// New creates a Runner with an empty buffer. A nil cfg means defaults.
func New(cfg *config.Config, logger *logs.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logs.Disabled()
	}
	st := NewState()
	st.ScrollOff = cfg.ScrollOff
	st.Logger = logger
	if cfg.Clipboard {
		st.Yank.Mirror = register.SystemClipboard
	}
	return &Runner{State: st, Config: cfg, Logger: logger}
}

// LoadFile loads path into the buffer. A path that does not exist yet is
// kept as the file name so the first :w creates it.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.Logger.Event("open.attempt", map[string]any{"file": path})
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		r.State.FilePath = path
		r.Logger.Event("open.new", map[string]any{"file": path})
		return nil
	}
	if err != nil {
		r.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return fmt.Errorf("open %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	st := r.State
	st.Buf = buffer.FromString(text)
	st.FilePath = path
	st.Cursor = Cursor{}
	st.Dirty = false
	r.Logger.Event("open.success", map[string]any{"file": path, "bytes": len(data), "runes": st.Buf.Len()})
	return nil
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
}

// Run draws the buffer and processes key events until a quit command. The
// renderer is flushed and torn down before Run returns.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	r.Logger.Event("run.start", map[string]any{"file": r.State.FilePath})
	defer r.Logger.Event("run.end", map[string]any{"file": r.State.FilePath})

	r.renderer = NewRenderer(r.Screen, r.Config.Colors.Theme(), r.Config.LineNumbers)
	r.renderer.Start()
	defer r.renderer.Finish()

	r.State.Resize(r.Screen.Size())
	r.renderer.Render(r.State.Snapshot())

	for {
		switch ev := r.Screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			tok, ok := keys.FromEvent(ev)
			if !ok {
				continue
			}
			r.Logger.Event("key", map[string]any{"token": tok, "mode": ModeName(r.State.Mode)})
			if r.State.HandleKey(tok) == Quit {
				return nil
			}
			r.renderer.Render(r.State.Snapshot())
		case *tcell.EventResize:
			r.Screen.Sync()
			r.State.Resize(ev.Size())
			r.renderer.Render(r.State.Snapshot())
		}
	}
}
