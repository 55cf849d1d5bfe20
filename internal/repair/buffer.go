package repair

import "strings"

// buffer is the parser's append-biased output accumulator.
//
// Most productions only ever append to it. A few repairs need more than
// that, though: inserting a token before trailing whitespace (so a
// repaired "," or "}" lands before the pretty-printing whitespace that
// follows the last thing written, not after it), stripping the last
// occurrence of a token (to undo an optimistic comma or quote once a
// later token shows it didn't belong), and inserting at an arbitrary
// position (to splice an escape into an already-buffered string body).
// A checkpoint restore is a fourth kind of edit, implemented directly as
// a truncate in the parser.
type buffer struct {
	r []rune
}

func newBuffer() *buffer {
	return &buffer{}
}

func (b *buffer) Len() int {
	return len(b.r)
}

func (b *buffer) String() string {
	return string(b.r)
}

func (b *buffer) Append(s string) {
	b.r = append(b.r, []rune(s)...)
}

func (b *buffer) AppendRune(r rune) {
	b.r = append(b.r, r)
}

// Truncate resets the buffer to its first n runes. Used to unwind to a
// checkpoint taken with Len().
func (b *buffer) Truncate(n int) {
	b.r = b.r[:n]
}

// InsertAt splices s into the buffer immediately before rune index idx.
func (b *buffer) InsertAt(idx int, s string) {
	tail := append([]rune{}, b.r[idx:]...)
	head := append([]rune{}, b.r[:idx]...)
	b.r = append(append(head, []rune(s)...), tail...)
}

// InsertBeforeTrailingWhitespace inserts s immediately before any run of
// ASCII whitespace (space, tab, CR, LF) at the end of the buffer, or
// appends it plainly if the buffer has no trailing whitespace.
func (b *buffer) InsertBeforeTrailingWhitespace(s string) {
	idx := len(b.r)
	if idx == 0 || !isWhitespace(b.r[idx-1]) {
		b.Append(s)
		return
	}
	for idx > 0 && isWhitespace(b.r[idx-1]) {
		idx--
	}
	b.InsertAt(idx, s)
}

// StripLastOccurrence removes the last occurrence of s from the buffer.
// If stripRemaining is true, everything from that occurrence to the end
// of the buffer is dropped rather than just the matched text.
func (b *buffer) StripLastOccurrence(s string, stripRemaining bool) {
	cur := b.String()
	byteIdx := strings.LastIndex(cur, s)
	if byteIdx == -1 {
		return
	}
	runeIdx := len([]rune(cur[:byteIdx]))
	runeLen := len([]rune(s))
	if stripRemaining {
		b.r = b.r[:runeIdx]
		return
	}
	b.r = append(b.r[:runeIdx:runeIdx], b.r[runeIdx+runeLen:]...)
}

// RemoveAt deletes count runes starting at index start.
func (b *buffer) RemoveAt(start, count int) {
	b.r = append(b.r[:start:start], b.r[start+count:]...)
}
