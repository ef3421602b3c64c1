package textseg

import "unicode/utf8"

// This file implements the boundary rules a second time, as symmetric
// predicates on an ordered pair of adjacent code points. The forward parsers
// in graphemerules.go and wordrules.go carry their context in a state vector;
// the predicates recover the same context by looking behind (and, for the
// word lookahead rules, ahead) from the queried position. They serve the
// point queries below and backward iteration, which re-derives the exact
// boundary set a forward scan would produce, from the other end.

// checkOffset panics if the offset is outside the string or does not lie on a
// scalar value (rune) boundary. Such offsets are caller bugs; answering them
// would silently propagate corrupted positions downstream.
func checkOffset(str string, offset int) {
	if offset < 0 || offset > len(str) {
		panic("textseg: offset out of range")
	}
	if offset < len(str) && !utf8.RuneStart(str[offset]) {
		panic("textseg: offset not on a scalar value boundary")
	}
}

// IsGraphemeBoundary reports whether an extended grapheme cluster boundary
// exists at the given byte offset. The start and the end of the string are
// always boundaries. It panics if the offset is out of range or does not lie
// on a scalar value boundary.
func IsGraphemeBoundary(str string, offset int) bool {
	checkOffset(str, offset)
	return graphemeBoundaryAt(str, offset, false)
}

// IsLegacyGraphemeBoundary is like [IsGraphemeBoundary] but applies the
// legacy grapheme cluster rules.
func IsLegacyGraphemeBoundary(str string, offset int) bool {
	checkOffset(str, offset)
	return graphemeBoundaryAt(str, offset, true)
}

// IsWordBoundary reports whether a word boundary exists at the given byte
// offset. The start and the end of the string are always boundaries. It
// panics if the offset is out of range or does not lie on a scalar value
// boundary.
func IsWordBoundary(str string, offset int) bool {
	checkOffset(str, offset)
	return wordBoundaryAt(str, offset)
}

// NextGraphemeBoundary returns the first extended grapheme cluster boundary
// after the given byte offset, or -1 if the offset is at the end of the
// string. It panics if the offset is out of range or does not lie on a scalar
// value boundary.
func NextGraphemeBoundary(str string, offset int) int {
	checkOffset(str, offset)
	if offset == len(str) {
		return -1
	}
	_, l := utf8.DecodeRuneInString(str[offset:])
	for i := offset + l; ; {
		if graphemeBoundaryAt(str, i, false) {
			return i
		}
		_, l = utf8.DecodeRuneInString(str[i:])
		i += l
	}
}

// PrevGraphemeBoundary returns the last extended grapheme cluster boundary
// before the given byte offset, or -1 if the offset is at the start of the
// string. It panics if the offset is out of range or does not lie on a scalar
// value boundary.
func PrevGraphemeBoundary(str string, offset int) int {
	checkOffset(str, offset)
	if offset == 0 {
		return -1
	}
	_, l := utf8.DecodeLastRuneInString(str[:offset])
	for i := offset - l; ; {
		if graphemeBoundaryAt(str, i, false) {
			return i
		}
		_, l = utf8.DecodeLastRuneInString(str[:i])
		i -= l
	}
}

// NextWordBoundary returns the first word boundary after the given byte
// offset, or -1 if the offset is at the end of the string. It panics if the
// offset is out of range or does not lie on a scalar value boundary.
func NextWordBoundary(str string, offset int) int {
	checkOffset(str, offset)
	if offset == len(str) {
		return -1
	}
	_, l := utf8.DecodeRuneInString(str[offset:])
	for i := offset + l; ; {
		if wordBoundaryAt(str, i) {
			return i
		}
		_, l = utf8.DecodeRuneInString(str[i:])
		i += l
	}
}

// PrevWordBoundary returns the last word boundary before the given byte
// offset, or -1 if the offset is at the start of the string. It panics if the
// offset is out of range or does not lie on a scalar value boundary.
func PrevWordBoundary(str string, offset int) int {
	checkOffset(str, offset)
	if offset == 0 {
		return -1
	}
	_, l := utf8.DecodeLastRuneInString(str[:offset])
	for i := offset - l; ; {
		if wordBoundaryAt(str, i) {
			return i
		}
		_, l = utf8.DecodeLastRuneInString(str[:i])
		i -= l
	}
}

// graphemeBoundaryAt reports whether a grapheme cluster boundary exists
// between the code point ending at offset and the code point starting there.
// The offset must be a valid scalar value boundary within the string; the
// start and end of the string are always boundaries.
func graphemeBoundaryAt(str string, offset int, legacy bool) bool {
	if offset == 0 || offset == len(str) {
		return true
	}

	after, _ := utf8.DecodeRuneInString(str[offset:])
	before, beforeLen := utf8.DecodeLastRuneInString(str[:offset])
	bProp := propertyGraphemes(before)
	aProp := propertyGraphemes(after)

	switch {
	case bProp == prCR && aProp == prLF: // GB3
		return false
	case bProp == prControl || bProp == prCR || bProp == prLF: // GB4
		return true
	case aProp == prControl || aProp == prCR || aProp == prLF: // GB5
		return true
	case bProp == prL && (aProp == prL || aProp == prV || aProp == prLV || aProp == prLVT): // GB6
		return false
	case (bProp == prLV || bProp == prV) && (aProp == prV || aProp == prT): // GB7
		return false
	case (bProp == prLVT || bProp == prT) && aProp == prT: // GB8
		return false
	case aProp == prExtend || aProp == prZWJ: // GB9
		return false
	case !legacy && aProp == prSpacingMark: // GB9a
		return false
	case !legacy && bProp == prPrepend: // GB9b
		return false
	case bProp == prZWJ && aProp == prExtendedPictographic: // GB11
		return !precededByPictographicSequence(str, offset-beforeLen)
	case bProp == prRegionalIndicator && aProp == prRegionalIndicator: // GB12, GB13
		return graphemeRICountBefore(str, offset)%2 == 0
	}
	return true // GB999
}

// precededByPictographicSequence reports whether the text before the given
// offset ends in Extended_Pictographic Extend*, the left context required by
// GB11. The offset points at the ZWJ under consideration.
func precededByPictographicSequence(str string, offset int) bool {
	for offset > 0 {
		r, l := utf8.DecodeLastRuneInString(str[:offset])
		offset -= l
		switch propertyGraphemes(r) {
		case prExtend:
			continue
		case prExtendedPictographic:
			return true
		default:
			return false
		}
	}
	return false
}

// graphemeRICountBefore returns the number of consecutive Regional_Indicator
// code points ending at the given offset. GB12 and GB13 allow a pair of
// Regional_Indicator code points to fuse only if an even number of them
// precedes the pair's boundary.
func graphemeRICountBefore(str string, offset int) (count int) {
	for offset > 0 {
		r, l := utf8.DecodeLastRuneInString(str[:offset])
		if propertyGraphemes(r) != prRegionalIndicator {
			break
		}
		count++
		offset -= l
	}
	return
}

// isAHLetter reports whether the given word break property is ALetter or
// Hebrew_Letter (the "AHLetter" shorthand of UAX #29).
func isAHLetter(prop int) bool {
	return prop == prALetter || prop == prALetterExtPict || prop == prHebrewLetter
}

// isWBIgnore reports whether the given word break property is skipped over by
// rule WB4 (Extend, Format, ZWJ).
func isWBIgnore(prop int) bool {
	return prop == prExtend || prop == prFormat || prop == prZWJ
}

// prevWordProperty returns the word break property of the code point
// preceding the given offset once Extend, Format, and ZWJ have been attached
// to their base per WB4, along with the byte offset at which that code point
// starts. It returns -1 if the offset is at the start of the text or only
// ignorable code points precede it.
func prevWordProperty(str string, offset int) (prop, start int) {
	for offset > 0 {
		r, l := utf8.DecodeLastRuneInString(str[:offset])
		offset -= l
		if p := propertyWordBreak(r); !isWBIgnore(p) {
			return p, offset
		}
	}
	return -1, 0
}

// nextWordProperty returns the word break property of the first code point at
// or after the given offset that is not skipped by WB4, or -1 if the text
// ends first.
func nextWordProperty(str string, offset int) int {
	for offset < len(str) {
		r, l := utf8.DecodeRuneInString(str[offset:])
		offset += l
		if p := propertyWordBreak(r); !isWBIgnore(p) {
			return p
		}
	}
	return -1
}

// wordBoundaryAt reports whether a word boundary exists between the code
// point ending at offset and the code point starting there. The offset must
// be a valid scalar value boundary within the string; the start and end of
// the string are always boundaries.
func wordBoundaryAt(str string, offset int) bool {
	if offset == 0 || offset == len(str) {
		return true
	}

	after, afterLen := utf8.DecodeRuneInString(str[offset:])
	before, beforeLen := utf8.DecodeLastRuneInString(str[:offset])
	bProp := propertyWordBreak(before)
	aProp := propertyWordBreak(after)

	// WB3.
	if bProp == prCR && aProp == prLF {
		return false
	}
	// WB3a.
	if bProp == prNewline || bProp == prCR || bProp == prLF {
		return true
	}
	// WB3b.
	if aProp == prNewline || aProp == prCR || aProp == prLF {
		return true
	}
	// WB3c. The joiner must immediately precede the pictograph; WB4 has not
	// yet erased anything at this point in the rule order.
	if bProp == prZWJ && (aProp == prExtendedPictographic || aProp == prALetterExtPict) {
		return false
	}
	// WB3d. Only literally adjacent spaces fuse.
	if bProp == prWSegSpace && aProp == prWSegSpace {
		return false
	}
	// WB4. Ignorable code points attach to the preceding base.
	if isWBIgnore(aProp) {
		return false
	}

	// For all remaining rules the left context is the nearest preceding
	// non-ignorable code point (WB4). If there is none, the ignorable run has
	// no base, acts as its own token, and no rule below can match.
	left, leftStart := bProp, offset-beforeLen
	if isWBIgnore(left) {
		left, leftStart = prevWordProperty(str, leftStart)
	}

	// WB5.
	if isAHLetter(left) && isAHLetter(aProp) {
		return false
	}
	// WB6.
	if isAHLetter(left) && (aProp == prMidLetter || aProp == prMidNumLet || aProp == prSingleQuote) {
		if p := nextWordProperty(str, offset+afterLen); isAHLetter(p) {
			return false
		}
	}
	// WB7.
	if (left == prMidLetter || left == prMidNumLet || left == prSingleQuote) && isAHLetter(aProp) {
		if p, _ := prevWordProperty(str, leftStart); isAHLetter(p) {
			return false
		}
	}
	// WB7a.
	if left == prHebrewLetter && aProp == prSingleQuote {
		return false
	}
	// WB7b.
	if left == prHebrewLetter && aProp == prDoubleQuote {
		if nextWordProperty(str, offset+afterLen) == prHebrewLetter {
			return false
		}
	}
	// WB7c.
	if left == prDoubleQuote && aProp == prHebrewLetter {
		if p, _ := prevWordProperty(str, leftStart); p == prHebrewLetter {
			return false
		}
	}
	// WB8.
	if left == prNumeric && aProp == prNumeric {
		return false
	}
	// WB9.
	if isAHLetter(left) && aProp == prNumeric {
		return false
	}
	// WB10.
	if left == prNumeric && isAHLetter(aProp) {
		return false
	}
	// WB11.
	if (left == prMidNum || left == prMidNumLet || left == prSingleQuote) && aProp == prNumeric {
		if p, _ := prevWordProperty(str, leftStart); p == prNumeric {
			return false
		}
	}
	// WB12.
	if left == prNumeric && (aProp == prMidNum || aProp == prMidNumLet || aProp == prSingleQuote) {
		if nextWordProperty(str, offset+afterLen) == prNumeric {
			return false
		}
	}
	// WB13.
	if left == prKatakana && aProp == prKatakana {
		return false
	}
	// WB13a.
	if (isAHLetter(left) || left == prNumeric || left == prKatakana || left == prExtendNumLet) &&
		aProp == prExtendNumLet {
		return false
	}
	// WB13b.
	if left == prExtendNumLet && (isAHLetter(aProp) || aProp == prNumeric || aProp == prKatakana) {
		return false
	}
	// WB15, WB16.
	if left == prRegionalIndicator && aProp == prRegionalIndicator {
		return wordRICountBefore(str, leftStart)%2 != 0
	}

	return true // WB999
}

// wordRICountBefore returns the number of consecutive Regional_Indicator code
// points, ignoring WB4 code points in between, preceding the given offset.
func wordRICountBefore(str string, offset int) (count int) {
	for {
		p, start := prevWordProperty(str, offset)
		if p != prRegionalIndicator {
			return
		}
		count++
		offset = start
	}
}
