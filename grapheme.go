package textseg

import "unicode/utf8"

// FirstGraphemeCluster returns the first grapheme cluster (user-perceived
// character) found in the given byte slice, according to the extended rules of
// [UAX #29]. It also returns the remainder of the byte slice and the updated
// parser state.
//
// This function can be called continuously to extract all grapheme clusters
// from a byte slice, as illustrated in the examples.
//
// If you don't know which state to pass, for example when calling the function
// for the first time, you must pass -1. For consecutive calls, pass the state
// and rest slice returned by the previous call.
//
// The "rest" slice is the sub-slice of the original byte slice "b" starting
// after the last byte of the identified grapheme cluster. If the length of the
// "rest" slice is 0, the entire byte slice "b" has been processed. The
// "cluster" byte slice is the sub-slice of the input slice containing the
// first identified grapheme cluster.
//
// Given an empty byte slice "b", the function returns nil values.
//
// While slightly less convenient than using the [Graphemes] class, this
// function has much better performance and makes no allocations. It lends
// itself well to large byte slices.
//
// [UAX #29]: https://unicode.org/reports/tr29/
func FirstGraphemeCluster(b []byte, state int) (cluster, rest []byte, newState int) {
	// An empty byte slice returns nothing.
	if len(b) == 0 {
		return
	}

	// Extract the first rune.
	r, length := utf8.DecodeRune(b)
	if len(b) <= length { // If we're already past the end, there is nothing else to parse.
		return b, nil, grAny
	}

	// If we don't know the state, determine it now.
	if state < 0 {
		state, _ = transitionGraphemeState(state, r, false)
	}

	// Transition until we find a boundary.
	var boundary bool
	for {
		r, l := utf8.DecodeRune(b[length:])
		state, boundary = transitionGraphemeState(state, r, false)

		if boundary {
			return b[:length], b[length:], state
		}

		length += l
		if len(b) <= length {
			return b, nil, grAny
		}
	}
}

// FirstGraphemeClusterInString is like [FirstGraphemeCluster] but its input
// and outputs are strings.
func FirstGraphemeClusterInString(str string, state int) (cluster, rest string, newState int) {
	cluster, rest, newState = firstGraphemeClusterInString(str, state, false)
	return
}

// firstGraphemeClusterInString is the mode-aware version of
// [FirstGraphemeClusterInString], also used by the [Graphemes] class.
func firstGraphemeClusterInString(str string, state int, legacy bool) (cluster, rest string, newState int) {
	// An empty string returns nothing.
	if len(str) == 0 {
		return
	}

	// Extract the first rune.
	r, length := utf8.DecodeRuneInString(str)
	if len(str) <= length { // If we're already past the end, there is nothing else to parse.
		return str, "", grAny
	}

	// If we don't know the state, determine it now.
	if state < 0 {
		state, _ = transitionGraphemeState(state, r, legacy)
	}

	// Transition until we find a boundary.
	var boundary bool
	for {
		r, l := utf8.DecodeRuneInString(str[length:])
		state, boundary = transitionGraphemeState(state, r, legacy)

		if boundary {
			return str[:length], str[length:], state
		}

		length += l
		if len(str) <= length {
			return str, "", grAny
		}
	}
}

// GraphemeClusterCount returns the number of user-perceived characters
// (grapheme clusters) for the given string.
func GraphemeClusterCount(s string) (n int) {
	state := -1
	for len(s) > 0 {
		_, s, state = FirstGraphemeClusterInString(s, state)
		n++
	}
	return
}

// Graphemes implements an iterator over the grapheme clusters of a string. Its
// forward and backward cursors produce the same boundary set; they may be
// advanced independently and meet anywhere without divergence. Iteration is
// lazy, one cluster at a time, and concatenating all clusters reproduces the
// original string exactly.
//
// The zero value is an empty iterator. Use [NewGraphemes] or
// [NewLegacyGraphemes] to create one.
type Graphemes struct {
	str      string
	front    int // Byte offset where the next forward cluster starts.
	back     int // Byte offset where the next backward cluster ends.
	from, to int // Bounds of the current cluster.
	state    int // Forward parser state, -1 when unknown.
	legacy   bool
}

// NewGraphemes returns an iterator over the extended grapheme clusters of the
// given string.
func NewGraphemes(str string) *Graphemes {
	return &Graphemes{
		str:   str,
		back:  len(str),
		state: -1,
	}
}

// NewLegacyGraphemes returns an iterator over the legacy grapheme clusters of
// the given string. Legacy clusters differ from extended clusters only in
// that spacing combining marks and prepending characters do not attach to
// their neighbors.
func NewLegacyGraphemes(str string) *Graphemes {
	return &Graphemes{
		str:    str,
		back:   len(str),
		state:  -1,
		legacy: true,
	}
}

// Next advances the forward cursor to the next grapheme cluster, which will
// then be available through the [Graphemes.Str], [Graphemes.Bytes], and
// [Graphemes.Positions] methods. It returns false if the forward cursor has
// met the backward cursor and no clusters remain.
func (g *Graphemes) Next() bool {
	if g.front >= g.back {
		return false
	}
	cluster, _, newState := firstGraphemeClusterInString(g.str[g.front:g.back], g.state, g.legacy)
	g.state = newState
	g.from, g.to = g.front, g.front+len(cluster)
	g.front = g.to
	return true
}

// NextBack moves the backward cursor to the preceding grapheme cluster, which
// will then be available through the [Graphemes.Str], [Graphemes.Bytes], and
// [Graphemes.Positions] methods. Backward iteration visits the exact same
// cluster boundaries as forward iteration, in reverse order. It returns false
// if the backward cursor has met the forward cursor and no clusters remain.
func (g *Graphemes) NextBack() bool {
	if g.back <= g.front {
		return false
	}
	_, l := utf8.DecodeLastRuneInString(g.str[:g.back])
	start := g.back - l
	for start > g.front && !graphemeBoundaryAt(g.str, start, g.legacy) {
		_, l = utf8.DecodeLastRuneInString(g.str[:start])
		start -= l
	}
	g.from, g.to = start, g.back
	g.back = start
	return true
}

// MoveTo restarts forward iteration at the given byte offset, which must lie
// on a grapheme cluster boundary (for example an offset previously returned
// by [Graphemes.Positions]). The backward cursor is reset to the end of the
// string. MoveTo panics if the offset is out of range or does not lie on a
// scalar value boundary.
func (g *Graphemes) MoveTo(offset int) {
	checkOffset(g.str, offset)
	g.front = offset
	g.back = len(g.str)
	g.from, g.to = offset, offset
	g.state = -1
}

// Str returns the current grapheme cluster. If iteration has not started or
// has finished, an empty string is returned.
func (g *Graphemes) Str() string {
	return g.str[g.from:g.to]
}

// Bytes returns the current grapheme cluster as a byte slice.
func (g *Graphemes) Bytes() []byte {
	return []byte(g.str[g.from:g.to])
}

// Positions returns the byte offsets of the current grapheme cluster within
// the original string: the offset of its first byte and the offset one past
// its last byte.
func (g *Graphemes) Positions() (from, to int) {
	return g.from, g.to
}
