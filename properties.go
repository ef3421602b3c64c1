package textseg

// Unicode properties used by the text segmentation parsers, from UAX #29
// (grapheme cluster and word boundaries).
//
// Note: Grapheme properties come first to minimize bits in state vectors.
const (
	prXX  = 0    // Unknown/unassigned (same as prAny)
	prAny = iota // Default/any property (must be 0)

	// Grapheme Cluster Break properties (UAX #29)
	prPrepend              // Characters that don't break before following char
	prCR                   // Carriage return
	prLF                   // Line feed
	prControl              // Control characters
	prExtend               // Extending characters (combining marks)
	prRegionalIndicator    // Flag emoji components (paired)
	prSpacingMark          // Spacing combining marks
	prL                    // Hangul leading consonant (Jamo L)
	prV                    // Hangul vowel (Jamo V)
	prT                    // Hangul trailing consonant (Jamo T)
	prLV                   // Hangul syllable LV
	prLVT                  // Hangul syllable LVT
	prZWJ                  // Zero Width Joiner
	prExtendedPictographic // Emoji and pictographic characters

	// Word Break properties (UAX #29)
	prNewline      // Newline characters
	prWSegSpace    // Whitespace for WB3d
	prDoubleQuote  // Double quotation mark
	prSingleQuote  // Single quotation mark (apostrophe)
	prMidNumLet    // Mid-word/number (e.g., period, colon)
	prNumeric      // Numeric digits
	prMidLetter    // Mid-letter (e.g., middle dot)
	prMidNum       // Mid-number (e.g., comma in numbers)
	prExtendNumLet // Underscore and similar
	prALetter      // Alphabetic letters
	prFormat       // Format characters
	prHebrewLetter // Hebrew letters
	prKatakana     // Japanese Katakana

	// Combined property for code points that are both ALetter and
	// Extended_Pictographic, so that WB3c and the letter rules can both
	// recognize them.
	prALetterExtPict
)

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry, or a zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// property returns the Unicode property value (see constants above) of the
// given code point.
func property(dictionary [][3]int, r rune) int {
	return propertySearch(dictionary, r)[2]
}

// propertyGraphemes returns the Unicode grapheme cluster property value of the
// given code point while fast tracking ASCII characters.
func propertyGraphemes(r rune) int {
	if r >= 0x20 && r <= 0x7e {
		return prAny
	}
	if r == 0x0a {
		return prLF
	}
	if r == 0x0d {
		return prCR
	}
	if r >= 0 && r <= 0x1f || r == 0x7f {
		return prControl
	}
	return property(graphemeCodePoints, r)
}

// propertyWordBreak returns the Unicode word break property value of the given
// code point, as listed in the word break code points table, while fast
// tracking ASCII letters and digits.
func propertyWordBreak(r rune) int {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return prALetter
	}
	if r >= '0' && r <= '9' {
		return prNumeric
	}
	return property(workBreakCodePoints, r)
}
