package textseg

import "unicode/utf8"

// The states of the word break parser.
const (
	wbAny = iota
	wbCR
	wbLF
	wbNewline
	wbWSegSpace
	wbHebrewLetter
	wbALetter
	wbWB7
	wbWB7c
	wbNumeric
	wbWB11
	wbKatakana
	wbExtendNumLet
	wbOddRI
	wbEvenRI

	// The zero-width joiner bit, set in addition to the states above when the
	// last code point examined was a ZWJ. Needed for WB3c (see WB4).
	wbZWJBit = 16
)

// The word break parser's breaking instructions.
const (
	wbNoBoundary = iota
	wbBoundary
)

// wbTransitions implements the word break parser's state transitions. It is
// the word break equivalent of [grTransitions], with the same transition
// resolution protocol, and is likewise driven by [transitionWordBreakState],
// which also handles the rules requiring lookahead (WB6, WB7b, WB12) and the
// "ignore" rule WB4.
//
// Unicode version 14.0.0.
func wbTransitions(state, prop int) (newState int, boundary int, rule int) {
	switch uint64(state) | uint64(prop)<<32 {
	// WB3b
	case wbAny | prNewline<<32:
		return wbNewline, wbBoundary, 32
	case wbAny | prCR<<32:
		return wbCR, wbBoundary, 32
	case wbAny | prLF<<32:
		return wbLF, wbBoundary, 32

	// WB3a
	case wbNewline | prAny<<32:
		return wbAny, wbBoundary, 31
	case wbCR | prAny<<32:
		return wbAny, wbBoundary, 31
	case wbLF | prAny<<32:
		return wbAny, wbBoundary, 31

	// WB3
	case wbCR | prLF<<32:
		return wbLF, wbNoBoundary, 30

	// WB3d
	case wbAny | prWSegSpace<<32:
		return wbWSegSpace, wbBoundary, 9990
	case wbWSegSpace | prWSegSpace<<32:
		return wbWSegSpace, wbNoBoundary, 34

	// WB5
	case wbAny | prALetter<<32:
		return wbALetter, wbBoundary, 9990
	case wbAny | prHebrewLetter<<32:
		return wbHebrewLetter, wbBoundary, 9990
	case wbALetter | prALetter<<32:
		return wbALetter, wbNoBoundary, 50
	case wbALetter | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 50
	case wbHebrewLetter | prALetter<<32:
		return wbALetter, wbNoBoundary, 50
	case wbHebrewLetter | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 50

	// WB7 (the resolution of a pending WB6)
	case wbWB7 | prALetter<<32:
		return wbALetter, wbNoBoundary, 70
	case wbWB7 | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 70

	// WB7a
	case wbHebrewLetter | prSingleQuote<<32:
		return wbAny, wbNoBoundary, 71

	// WB7c (the resolution of a pending WB7b)
	case wbWB7c | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 73

	// WB8 / WB9 / WB10
	case wbAny | prNumeric<<32:
		return wbNumeric, wbBoundary, 9990
	case wbNumeric | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 80
	case wbALetter | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 90
	case wbHebrewLetter | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 90
	case wbNumeric | prALetter<<32:
		return wbALetter, wbNoBoundary, 100
	case wbNumeric | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 100

	// WB11 (the resolution of a pending WB12)
	case wbWB11 | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 110

	// WB13
	case wbAny | prKatakana<<32:
		return wbKatakana, wbBoundary, 9990
	case wbKatakana | prKatakana<<32:
		return wbKatakana, wbNoBoundary, 130

	// WB13a
	case wbAny | prExtendNumLet<<32:
		return wbExtendNumLet, wbBoundary, 9990
	case wbALetter | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131
	case wbHebrewLetter | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131
	case wbNumeric | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131
	case wbKatakana | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131
	case wbExtendNumLet | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131

	// WB13b
	case wbExtendNumLet | prALetter<<32:
		return wbALetter, wbNoBoundary, 132
	case wbExtendNumLet | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 132
	case wbExtendNumLet | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 132
	case wbExtendNumLet | prKatakana<<32:
		return wbKatakana, wbNoBoundary, 132

	// WB15 / WB16
	case wbAny | prRegionalIndicator<<32:
		return wbOddRI, wbBoundary, 9990
	case wbOddRI | prRegionalIndicator<<32:
		return wbEvenRI, wbNoBoundary, 150
	case wbEvenRI | prRegionalIndicator<<32:
		return wbOddRI, wbBoundary, 150

	default:
		return -1, -1, -1
	}
}

// transitionWordBreakState determines the new state of the word break parser
// given the current state and the next code point. It also returns whether a
// word boundary was detected. If more than one code point is needed to
// determine the new state, the byte slice or the string starting after rune
// "r" can be used (whichever is not nil or empty) by the lookahead rules.
func transitionWordBreakState(state int, r rune, b []byte, str string) (newState int, wordBreak bool) {
	// Determine the property of the next character.
	nextProperty := propertyWordBreak(r)

	// "Replacing Ignore Rules".
	if nextProperty == prZWJ {
		// WB4 (for zero-width joiners).
		if state == wbNewline || state == wbCR || state == wbLF {
			return wbAny | wbZWJBit, true // Make sure we don't apply WB4 to WB3a.
		}
		if state == wbWSegSpace {
			return wbAny | wbZWJBit, false // The joiner attaches but WB3d needs adjacent spaces.
		}
		if state < 0 {
			return wbAny | wbZWJBit, false
		}
		return state | wbZWJBit, false
	} else if nextProperty == prExtend || nextProperty == prFormat {
		// WB4 (for Extend and Format).
		if state == wbNewline || state == wbCR || state == wbLF {
			return wbAny, true // Make sure we don't apply WB4 to WB3a.
		}
		if state == wbWSegSpace {
			return wbAny, false // We don't break but this is also not WB3d.
		}
		if state < 0 {
			return wbAny, false
		}
		// The ZWJ bit doesn't survive: WB3c needs the joiner immediately
		// before the pictograph.
		return state &^ wbZWJBit, false
	} else if state >= 0 && state&wbZWJBit != 0 &&
		(nextProperty == prExtendedPictographic || nextProperty == prALetterExtPict) {
		// WB3c.
		if nextProperty == prALetterExtPict {
			return wbALetter, false
		}
		return wbAny, false
	}
	if state >= 0 {
		state = state &^ wbZWJBit
	}
	if nextProperty == prALetterExtPict {
		// Outside of WB3c, these code points take part in the letter rules.
		nextProperty = prALetter
	}

	// Find the applicable transition in the table.
	var boundary, rule int
	newState, boundary, rule = wbTransitions(state, nextProperty)
	if newState >= 0 {
		wordBreak = boundary == wbBoundary
	} else {
		// No specific transition found. Try the less specific ones.
		anyPropState, anyPropBoundary, anyPropRule := wbTransitions(state, prAny)
		anyStateState, anyStateBoundary, anyStateRule := wbTransitions(wbAny, nextProperty)
		if anyPropState >= 0 && anyStateState >= 0 {
			// Both apply. We'll use a mix (see comments for grTransitions).
			newState = anyStateState
			wordBreak = anyStateBoundary == wbBoundary
			rule = anyStateRule
			if anyPropRule < anyStateRule {
				wordBreak = anyPropBoundary == wbBoundary
				rule = anyPropRule
			}
		} else if anyPropState >= 0 {
			// We only have a specific state.
			newState, wordBreak, rule = anyPropState, anyPropBoundary == wbBoundary, anyPropRule
		} else if anyStateState >= 0 {
			// We only have a specific property.
			newState, wordBreak, rule = anyStateState, anyStateBoundary == wbBoundary, anyStateRule
		} else {
			// No known transition. WB999: Any ÷ Any.
			newState, wordBreak, rule = wbAny, true, 9990
		}
	}

	// For those rules that need to look up runes further in the string, we
	// determine the property after nextProperty, skipping over Format, Extend,
	// and ZWJ (see WB4). It's -1 if no such rune exists (the text ends or the
	// rune is invalid).
	farProperty := -1
	if rule > 60 &&
		(state == wbALetter || state == wbHebrewLetter || state == wbNumeric) &&
		(nextProperty == prMidLetter || nextProperty == prMidNumLet || nextProperty == prSingleQuote ||
			nextProperty == prDoubleQuote || nextProperty == prMidNum) {
		for {
			var length int
			if b != nil { // Byte slice version.
				r, length = utf8.DecodeRune(b)
				b = b[length:]
			} else { // String version.
				r, length = utf8.DecodeRuneInString(str)
				str = str[length:]
			}
			if r == utf8.RuneError {
				break
			}
			prop := propertyWordBreak(r)
			if prop == prExtend || prop == prFormat || prop == prZWJ {
				continue
			}
			farProperty = prop
			break
		}
	}

	// WB6.
	if rule > 60 &&
		(state == wbALetter || state == wbHebrewLetter) &&
		(nextProperty == prMidLetter || nextProperty == prMidNumLet || nextProperty == prSingleQuote) &&
		(farProperty == prALetter || farProperty == prALetterExtPict || farProperty == prHebrewLetter) {
		return wbWB7, false
	}

	// WB7b.
	if rule > 72 &&
		state == wbHebrewLetter &&
		nextProperty == prDoubleQuote &&
		farProperty == prHebrewLetter {
		return wbWB7c, false
	}

	// WB12.
	if rule > 120 &&
		state == wbNumeric &&
		(nextProperty == prMidNum || nextProperty == prMidNumLet || nextProperty == prSingleQuote) &&
		farProperty == prNumeric {
		return wbWB11, false
	}

	return
}
