package app

import "github.com/TheRakeshPurohit/neu/pkg/action"

// span is a resolved selection. Linewise spans cover rows [row, row+rows);
// the others cover the rune offsets [start, end).
type span struct {
	linewise   bool
	row, rows  int
	start, end int
}

// measure resolves sel against the cursor, repeated n times.
func (s *EditorState) measure(sel action.Selection, n int) span {
	n = action.MulCount(n, sel.Count)
	b := s.Buf
	row := s.Cursor.Row
	off := s.offset()
	switch sel.Kind {
	case action.SelLine:
		return span{linewise: true, row: row, rows: n}
	case action.SelDown:
		return span{linewise: true, row: row, rows: action.ClampCount(n + 1)}
	case action.SelUp:
		first := satSub(row, n)
		return span{linewise: true, row: first, rows: row - first + 1}
	case action.SelLeft:
		return span{start: max(off-n, b.RowStart(row)), end: off}
	case action.SelRight:
		return span{start: off, end: min(off+n, b.RowEnd(row))}
	case action.SelForwardWord:
		end := off + b.CountForwardWord(off, n)
		return span{start: off, end: s.clipToRow(off, end)}
	case action.SelBackWord:
		return span{start: off - b.CountBackWord(off, n), end: off}
	case action.SelWord:
		start, end := b.WordSpan(off)
		for i := 1; i < n; i++ {
			_, next := b.WordSpan(end)
			if next == end {
				break
			}
			end = next
		}
		return span{start: start, end: s.clipToRow(off, end)}
	case action.SelLineRemain:
		last := min(row+n-1, b.LineCount()-1)
		return span{start: off, end: b.RowEnd(last)}
	}
	return span{start: off, end: off}
}

// clipToRow stops a span that starts inside the cursor row at that row's
// end. A span starting at the row end is left alone.
func (s *EditorState) clipToRow(off, end int) int {
	rowEnd := s.Buf.RowEnd(s.Cursor.Row)
	if off < rowEnd && end > rowEnd {
		return rowEnd
	}
	return end
}
