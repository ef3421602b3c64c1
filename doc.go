/*
Package textseg implements Unicode text segmentation for Go: splitting strings
into grapheme clusters (user-perceived "characters") and finding word
boundaries.

This package conforms to:
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/)
  - Unicode version 14.0

# Overview

Using this package, you can:
  - Split strings into extended or legacy grapheme clusters
  - Partition strings into word tokens, or extract only the words
  - Query and navigate boundaries at arbitrary positions

This is essential for internationalized text handling, especially with emojis,
combining characters, and scripts like Arabic, Hebrew, Indic, and East Asian
languages.

# Getting Started

For simple use cases:
  - [GraphemeClusterCount] - Count user-perceived characters

For iteration:
  - [FirstGraphemeCluster] / [FirstGraphemeClusterInString] - Fastest, no
    allocations (recommended for large inputs)
  - [Graphemes] - Convenient iterator class, forward and backward
  - [Words] / [UnicodeWords] - Word tokens and words

For point queries:
  - [IsGraphemeBoundary] / [IsWordBoundary]
  - [NextGraphemeBoundary] / [PrevGraphemeBoundary] and the word equivalents

# Grapheme Clusters

A grapheme cluster is what users perceive as a single "character." For example,
the family emoji 👨‍👩‍👧‍👦 appears as one character but contains 7 Unicode code points
(25 bytes in UTF-8). Standard Go functions report misleading values:

	len("👨‍👩‍👧‍👦")                    // 25 (bytes)
	len([]rune("👨‍👩‍👧‍👦"))             // 7 (code points)
	textseg.GraphemeClusterCount("👨‍👩‍👧‍👦") // 1 (what users see)

The [Graphemes] class and related functions correctly handle these cases,
including emoji ZWJ sequences, regional indicator flag pairs, Hangul syllables,
and combining marks.

# Word Boundaries

Word boundaries are used for:
  - Double-click text selection
  - Cursor movement (Ctrl+Arrow)
  - "Whole word" search
  - Tokenization

The [Words] class yields the complete token partition of a string: every
character belongs to exactly one token, and concatenating all tokens
reproduces the input. [UnicodeWords] filters that partition down to the tokens
containing letters, numbers, or Katakana, which is what most callers mean by
"the words of the text." The rules understand contractions ("can't" is one
word), numeric punctuation ("32.3" is one token), and Hebrew quotation marks.

# Bidirectional Iteration

Both iterator classes have a forward cursor ([Graphemes.Next]) and a backward
cursor ([Graphemes.NextBack]) over one and the same boundary set. The two may
be advanced independently and meet at any point without disagreeing on a
boundary. Forward iteration can also be restarted from any known boundary with
MoveTo, without rescanning the preceding text.

# Input Contract

Input must be valid UTF-8; behavior on invalid byte sequences is undefined.
The package never mutates its input, performs no I/O, and keeps no state
between calls, so any number of traversals may run concurrently as long as the
underlying text is not mutated while they are alive. Offsets passed to the
point query and navigation functions must lie on scalar value boundaries
inside the text; violations panic rather than silently returning a wrong
answer.
*/
package textseg
