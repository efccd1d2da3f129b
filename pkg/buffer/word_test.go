package buffer

import "testing"

func TestCountForwardWord(t *testing.T) {
	b := FromString("hello world")
	if got := b.CountForwardWord(0, 1); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if got := b.CountForwardWord(0, 2); got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}
}

func TestCountBackWord(t *testing.T) {
	b := FromString("one two three")
	if got := b.CountBackWord(8, 1); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := b.CountBackWord(0, 3); got != 0 {
		t.Fatalf("expected 0 at buffer start, got %d", got)
	}
}

func TestWordSpan(t *testing.T) {
	b := FromString("say hello  world\nnext")
	tests := []struct {
		name       string
		offset     int
		start, end int
	}{
		{"inside word", 6, 4, 11},
		{"word start", 4, 4, 11},
		{"blank run", 9, 9, 11},
		{"last word stops at line break", 13, 11, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := b.WordSpan(tt.offset)
			if start != tt.start || end != tt.end {
				t.Fatalf("expected %d..%d, got %d..%d", tt.start, tt.end, start, end)
			}
		})
	}
}
