package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s := stateWith("one\ntwo")
	s.Dirty = true

	sig := press(s, ":w "+path+"<CR>")
	assert.Equal(t, Continue, sig)
	assert.Equal(t, Normal{}, s.Mode)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", string(data))
	assert.Equal(t, path, s.FilePath, "first write names the buffer")
	assert.False(t, s.Dirty)
	assert.Contains(t, s.Status, "written")
	assert.False(t, s.StatusErr)

	press(s, "l")
	assert.Empty(t, s.Status, "status lasts until the next key")
}

func TestWriteCurrentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cur.txt")
	s := stateWith("abc")
	s.FilePath = path
	press(s, "x:w<CR>")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bc", string(data))
}

func TestWriteWithoutFileName(t *testing.T) {
	s := stateWith("abc")
	sig := press(s, ":w<CR>")
	assert.Equal(t, Continue, sig)
	assert.True(t, s.StatusErr)
	assert.Contains(t, s.Status, "no file name")
}

func TestWriteFailureKeepsRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "f.txt")
	s := stateWith("abc")
	s.Dirty = true
	sig := press(s, ":wq "+path+"<CR>")
	assert.Equal(t, Continue, sig, "a failed write does not quit")
	assert.True(t, s.StatusErr)
	assert.Contains(t, s.Status, path)
	assert.True(t, s.Dirty)
	assert.Equal(t, "abc", s.Buf.String())
}

func TestWriteQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	s := stateWith("abc")
	s.FilePath = path
	assert.Equal(t, Quit, press(s, ":wq<CR>"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestWriteOtherPathKeepsCurrentFile(t *testing.T) {
	dir := t.TempDir()
	cur := filepath.Join(dir, "cur.txt")
	other := filepath.Join(dir, "other.txt")
	s := stateWith("abc")
	s.FilePath = cur
	s.Dirty = true
	press(s, ":w "+other+"<CR>")
	assert.Equal(t, cur, s.FilePath)
	assert.True(t, s.Dirty)
	_, err := os.Stat(other)
	assert.NoError(t, err)
}
