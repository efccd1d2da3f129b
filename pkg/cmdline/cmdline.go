// Package cmdline parses the text typed after ':'.
package cmdline

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownCommand is returned for input that names no command.
	ErrUnknownCommand = errors.New("not an editor command")
	// ErrNoFileName is returned by Resolve when a write has no target.
	ErrNoFileName = errors.New("no file name")
)

// Command is a parsed command line.
type Command interface{ isCommand() }

// Write persists the buffer. An empty Path means the current file.
type Write struct {
	Path  string
	Force bool
	Quit  bool
}

// Quit ends the session.
type Quit struct{ Force bool }

func (Write) isCommand() {}
func (Quit) isCommand()  {}

// Parse recognises:
//
//	w [path]    w! [path]    w!path
//	wq [path]   x [path]
//	q   q!   quit   quit!
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	name, arg := split(line)
	force := strings.HasSuffix(name, "!")
	name = strings.TrimSuffix(name, "!")
	switch name {
	case "w", "write":
		return Write{Path: arg, Force: force}, nil
	case "wq", "x", "xit":
		return Write{Path: arg, Force: force, Quit: true}, nil
	case "q", "quit":
		if arg != "" {
			return nil, ErrUnknownCommand
		}
		return Quit{Force: force}, nil
	}
	return nil, ErrUnknownCommand
}

// split separates the command name from its argument. The name is the
// leading run of letters plus an optional '!'; "w!out.txt" splits into
// "w!" and "out.txt".
func split(line string) (name, arg string) {
	i := 0
	for i < len(line) && line[i] >= 'a' && line[i] <= 'z' {
		i++
	}
	if i < len(line) && line[i] == '!' {
		i++
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// Resolve returns the path a Write targets, falling back to current.
func (w Write) Resolve(current string) (string, error) {
	if w.Path != "" {
		return w.Path, nil
	}
	if current == "" {
		return "", ErrNoFileName
	}
	return current, nil
}
