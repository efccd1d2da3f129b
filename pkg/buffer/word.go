package buffer

import "unicode"

// IsWordRune reports whether r is considered part of a word.
// Words consist of letters, digits, or underscore characters.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBlank(r rune) bool { return r != '\n' && !IsWordRune(r) }

// NextWordStart returns the offset of the start of the next word after pos,
// like Vim's 'w' motion.
func (b *Buffer) NextWordStart(pos int) int {
	n := b.s.Len()
	if pos >= n {
		return n
	}
	for pos < n && IsWordRune(b.s.RuneAt(pos)) {
		pos++
	}
	for pos < n && !IsWordRune(b.s.RuneAt(pos)) {
		pos++
	}
	return pos
}

// WordStart returns the offset of the beginning of the word that ends
// before pos, like Vim's 'b' motion.
func (b *Buffer) WordStart(pos int) int {
	if b.s.Len() == 0 || pos <= 0 {
		return 0
	}
	pos = min(pos, b.s.Len()) - 1
	for pos > 0 && !IsWordRune(b.s.RuneAt(pos)) {
		pos--
	}
	for pos > 0 && IsWordRune(b.s.RuneAt(pos-1)) {
		pos--
	}
	return pos
}

// CountForwardWord returns how many runes lie between offset and the start
// of the count-th following word.
func (b *Buffer) CountForwardWord(offset, count int) int {
	pos := offset
	for i := 0; i < count && pos < b.s.Len(); i++ {
		pos = b.NextWordStart(pos)
	}
	return pos - offset
}

// CountBackWord returns how many runes lie between the start of the
// count-th preceding word and offset.
func (b *Buffer) CountBackWord(offset, count int) int {
	pos := offset
	for i := 0; i < count && pos > 0; i++ {
		pos = b.WordStart(pos)
	}
	return offset - pos
}

// WordSpan returns the whole word under offset together with the blanks that
// follow it. On a run of blanks it returns that run. The span never extends
// past a line break.
func (b *Buffer) WordSpan(offset int) (start, end int) {
	n := b.s.Len()
	if offset >= n {
		return n, n
	}
	in := IsWordRune
	if !IsWordRune(b.s.RuneAt(offset)) {
		in = isBlank
	}
	start, end = offset, offset
	for start > 0 && in(b.s.RuneAt(start-1)) {
		start--
	}
	for end < n && in(b.s.RuneAt(end)) {
		end++
	}
	if IsWordRune(b.s.RuneAt(offset)) {
		for end < n && isBlank(b.s.RuneAt(end)) {
			end++
		}
	}
	return start, end
}
