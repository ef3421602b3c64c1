package textseg

import "unicode/utf8"

// FirstWord returns the first word token found in the given byte slice,
// according to the word boundary rules of [UAX #29]. It also returns the
// remainder of the byte slice and the updated parser state.
//
// Word tokens partition the text completely: every character belongs to
// exactly one token, whether it is a word-like run (letters, numbers,
// Katakana) or anything else (whitespace, punctuation, symbols). Use
// [Words] or [UnicodeWords] to skip the non-word tokens.
//
// If you don't know which state to pass, for example when calling the function
// for the first time, you must pass -1. For consecutive calls, pass the state
// and rest slice returned by the previous call.
//
// Given an empty byte slice "b", the function returns nil values.
//
// [UAX #29]: https://unicode.org/reports/tr29/
func FirstWord(b []byte, state int) (token, rest []byte, newState int) {
	// An empty byte slice returns nothing.
	if len(b) == 0 {
		return
	}

	// Extract the first rune.
	r, length := utf8.DecodeRune(b)
	if len(b) <= length { // If we're already past the end, there is nothing else to parse.
		return b, nil, wbAny
	}

	// If we don't know the state, determine it now.
	if state < 0 {
		state, _ = transitionWordBreakState(state, r, b[length:], "")
	}

	// Transition until we find a boundary.
	var boundary bool
	for {
		r, l := utf8.DecodeRune(b[length:])
		state, boundary = transitionWordBreakState(state, r, b[length+l:], "")

		if boundary {
			return b[:length], b[length:], state
		}

		length += l
		if len(b) <= length {
			return b, nil, wbAny
		}
	}
}

// FirstWordInString is like [FirstWord] but its input and outputs are strings.
func FirstWordInString(str string, state int) (token, rest string, newState int) {
	// An empty string returns nothing.
	if len(str) == 0 {
		return
	}

	// Extract the first rune.
	r, length := utf8.DecodeRuneInString(str)
	if len(str) <= length { // If we're already past the end, there is nothing else to parse.
		return str, "", wbAny
	}

	// If we don't know the state, determine it now.
	if state < 0 {
		state, _ = transitionWordBreakState(state, r, nil, str[length:])
	}

	// Transition until we find a boundary.
	var boundary bool
	for {
		r, l := utf8.DecodeRuneInString(str[length:])
		state, boundary = transitionWordBreakState(state, r, nil, str[length+l:])

		if boundary {
			return str[:length], str[length:], state
		}

		length += l
		if len(str) <= length {
			return str, "", wbAny
		}
	}
}

// Words implements an iterator over the word tokens of a string, the complete
// partition produced by the [UAX #29] word boundary rules. Its forward and
// backward cursors produce the same boundary set; they may be advanced
// independently and meet anywhere without divergence. Iteration is lazy, one
// token at a time, and concatenating all tokens reproduces the original
// string exactly.
//
// [UAX #29]: https://unicode.org/reports/tr29/
type Words struct {
	str      string
	front    int // Byte offset where the next forward token starts.
	back     int // Byte offset where the next backward token ends.
	from, to int // Bounds of the current token.
	state    int // Forward parser state, -1 when unknown.
}

// NewWords returns an iterator over the word tokens of the given string.
func NewWords(str string) *Words {
	return &Words{
		str:   str,
		back:  len(str),
		state: -1,
	}
}

// Next advances the forward cursor to the next word token, which will then be
// available through the [Words.Str] and [Words.Positions] methods. It returns
// false if the forward cursor has met the backward cursor and no tokens
// remain.
func (w *Words) Next() bool {
	if w.front >= w.back {
		return false
	}
	token, _, newState := FirstWordInString(w.str[w.front:w.back], w.state)
	w.state = newState
	w.from, w.to = w.front, w.front+len(token)
	w.front = w.to
	return true
}

// NextBack moves the backward cursor to the preceding word token, which will
// then be available through the [Words.Str] and [Words.Positions] methods.
// Backward iteration visits the exact same token boundaries as forward
// iteration, in reverse order. It returns false if the backward cursor has
// met the forward cursor and no tokens remain.
func (w *Words) NextBack() bool {
	if w.back <= w.front {
		return false
	}
	_, l := utf8.DecodeLastRuneInString(w.str[:w.back])
	start := w.back - l
	for start > w.front && !wordBoundaryAt(w.str, start) {
		_, l = utf8.DecodeLastRuneInString(w.str[:start])
		start -= l
	}
	w.from, w.to = start, w.back
	w.back = start
	return true
}

// MoveTo restarts forward iteration at the given byte offset, which must lie
// on a word boundary (for example an offset previously returned by
// [Words.Positions]). The backward cursor is reset to the end of the string.
// MoveTo panics if the offset is out of range or does not lie on a scalar
// value boundary.
func (w *Words) MoveTo(offset int) {
	checkOffset(w.str, offset)
	w.front = offset
	w.back = len(w.str)
	w.from, w.to = offset, offset
	w.state = -1
}

// Str returns the current word token. If iteration has not started or has
// finished, an empty string is returned.
func (w *Words) Str() string {
	return w.str[w.from:w.to]
}

// Positions returns the byte offsets of the current word token within the
// original string: the offset of its first byte and the offset one past its
// last byte.
func (w *Words) Positions() (from, to int) {
	return w.from, w.to
}

// UnicodeWords implements a forward iterator over the words of a string: the
// word tokens that contain at least one letter, number, or Katakana code
// point. Punctuation and whitespace tokens are skipped; the relative order of
// the remaining tokens is preserved. The filter is lazy, it never materializes
// the full token sequence.
type UnicodeWords struct {
	words Words
}

// NewUnicodeWords returns an iterator over the words of the given string.
func NewUnicodeWords(str string) *UnicodeWords {
	return &UnicodeWords{
		words: Words{
			str:   str,
			back:  len(str),
			state: -1,
		},
	}
}

// Next advances the iterator to the next word, which will then be available
// through the [UnicodeWords.Str] and [UnicodeWords.Position] methods. It
// returns false if no words remain.
func (u *UnicodeWords) Next() bool {
	for u.words.Next() {
		if hasWordContent(u.words.Str()) {
			return true
		}
	}
	return false
}

// Str returns the current word.
func (u *UnicodeWords) Str() string {
	return u.words.Str()
}

// Position returns the byte offset of the current word within the original
// string.
func (u *UnicodeWords) Position() int {
	from, _ := u.words.Positions()
	return from
}

// hasWordContent reports whether the given token contains at least one code
// point classified ALetter, Hebrew_Letter, Numeric, or Katakana.
func hasWordContent(token string) bool {
	for _, r := range token {
		switch propertyWordBreak(r) {
		case prALetter, prALetterExtPict, prHebrewLetter, prNumeric, prKatakana:
			return true
		}
	}
	return false
}
