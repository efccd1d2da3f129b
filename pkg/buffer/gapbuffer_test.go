package buffer

import "testing"

func TestGapBuffer_InsertDelete(t *testing.T) {
	g := NewGapBufferFromString("Hello World")
	if g.String() != "Hello World" {
		t.Fatalf("expected initial content 'Hello World', got %q", g.String())
	}
	if err := g.Insert(5, []rune{','}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if g.String() != "Hello, World" {
		t.Fatalf("expected 'Hello, World', got %q", g.String())
	}
	if err := g.Delete(5, 6); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if g.String() != "Hello World" {
		t.Fatalf("expected 'Hello World' after delete, got %q", g.String())
	}
}

func TestGapBuffer_GrowAcrossGap(t *testing.T) {
	g := NewGapBuffer(1)
	for i, s := range []string{"c", "a", "b"} {
		pos := []int{0, 0, 1}[i]
		if err := g.Insert(pos, []rune(s)); err != nil {
			t.Fatalf("insert %q: %v", s, err)
		}
	}
	if got := g.String(); got != "abc" {
		t.Fatalf("expected 'abc', got %q", got)
	}
	if got := string(g.Slice(1, 3)); got != "bc" {
		t.Fatalf("expected slice 'bc', got %q", got)
	}
	if g.RuneAt(2) != 'c' || g.RuneAt(3) != 0 {
		t.Fatalf("unexpected RuneAt results")
	}
}

func TestGapBuffer_OutOfRange(t *testing.T) {
	g := NewGapBufferFromString("ab")
	if err := g.Insert(3, []rune("x")); err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := g.Delete(1, 5); err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
