package app

import (
	"fmt"
	"os"

	"github.com/TheRakeshPurohit/neu/pkg/cmdline"
)

// execute runs a ':' command line. Lines that do not parse are dropped.
func (s *EditorState) execute(line string) Signal {
	cmd, err := cmdline.Parse(line)
	if err != nil {
		s.log("cmdline", map[string]any{"command": line, "error": err.Error()})
		return Continue
	}
	s.log("cmdline", map[string]any{"command": line})
	switch c := cmd.(type) {
	case cmdline.Write:
		if err := s.write(c); err != nil {
			s.setStatus(err.Error(), true)
			return Continue
		}
		if c.Quit {
			return Quit
		}
	case cmdline.Quit:
		return Quit
	}
	return Continue
}

// write saves the buffer. Writing to a new path makes it the current file
// when there was none.
func (s *EditorState) write(w cmdline.Write) error {
	path, err := w.Resolve(s.FilePath)
	if err != nil {
		return err
	}
	text := s.Buf.String()
	s.log("write.attempt", map[string]any{"file": path})
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		s.log("write.error", map[string]any{"file": path, "error": err.Error()})
		return fmt.Errorf("write %s: %w", path, err)
	}
	if s.FilePath == "" {
		s.FilePath = path
	}
	if path == s.FilePath {
		s.Dirty = false
	}
	s.log("write.success", map[string]any{"file": path, "bytes": len(text)})
	s.setStatus(fmt.Sprintf("%q %dL, %dB written", path, s.Buf.LineCount(), len(text)), false)
	return nil
}
