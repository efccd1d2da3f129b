package buffer

// Storage is the rune store a Buffer keeps its text in.
// Positions and lengths are expressed in runes (not bytes).
type Storage interface {
	Insert(pos int, s []rune) error
	Delete(start, end int) error
	Slice(start, end int) []rune
	RuneAt(i int) rune
	Len() int
	String() string
}

var _ Storage = (*GapBuffer)(nil)
