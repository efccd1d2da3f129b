// Package register holds the yank register: the single slot that every
// remove and yank overwrites and every paste reads.
package register

import (
	"github.com/atotto/clipboard"

	"github.com/TheRakeshPurohit/neu/pkg/buffer"
)

// Register stores the most recently removed or yanked text.
type Register struct {
	content *buffer.Buffer

	// Mirror, when set, also receives every stored value. Errors from it
	// are ignored.
	Mirror func(text string) error
}

// SystemClipboard writes to the OS clipboard.
func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// Set replaces the stored value.
func (r *Register) Set(b *buffer.Buffer) {
	if b == nil {
		b = buffer.New()
	}
	r.content = b
	if r.Mirror != nil {
		_ = r.Mirror(b.String())
	}
}

// Get returns a copy of the stored value; reading never consumes it.
func (r *Register) Get() *buffer.Buffer {
	if r.content == nil {
		return buffer.New()
	}
	return r.content.Clone()
}

// String returns the stored text.
func (r *Register) String() string {
	if r.content == nil {
		return ""
	}
	return r.content.String()
}

// HasData reports whether the register holds text.
func (r *Register) HasData() bool {
	return r.content != nil && !r.content.IsEmpty()
}

// Linewise reports whether the stored value is line-shaped.
func (r *Register) Linewise() bool {
	return r.content != nil && r.content.EndsWithLineBreak()
}
