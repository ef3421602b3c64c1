package textseg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corpus holds adversarial inputs exercising the pairwise rules, the
// lookahead rules, and the parity rules.
var corpus = []string{
	"",
	"a",
	"abc",
	"Hello, world!",
	"a̐éö̲\r\n",
	"\r\n\r\n\n\r",
	"á",
	"🇩🇪🇫🇷",
	"🇩🇪🇫🇷\U0001F1E6",
	"\U0001F1E6\U0001F1E7\U0001F1E8\U0001F1E9\U0001F1EA",
	"🏳️‍🌈",
	"👨‍👩‍👧‍👦",
	"x‍🌈",
	"‍‍",
	"한녕",
	"안녕하세요",
	"नी मनीष",
	"؀١",
	"؀🇩🇪",
	"can't",
	"can' t",
	"32.3",
	"3..3",
	"1,000_5",
	"_1_",
	"א\"א",
	"א\"",
	"א'x",
	"カタカナ デス",
	"a ‍ b",
	"  double  spaces  ",
	"́start with extend",
	"mixed 🇩🇪 flagś and can't 32.3 א\"א\r\n",
}

func graphemeSegments(str string, legacy bool) []string {
	var segments []string
	var g *Graphemes
	if legacy {
		g = NewLegacyGraphemes(str)
	} else {
		g = NewGraphemes(str)
	}
	for g.Next() {
		segments = append(segments, g.Str())
	}
	return segments
}

func wordSegments(str string) []string {
	var segments []string
	w := NewWords(str)
	for w.Next() {
		segments = append(segments, w.Str())
	}
	return segments
}

// TestPartitionInvariant checks that every segmentation is an exact,
// gap-free partition of its input into non-empty segments.
func TestPartitionInvariant(t *testing.T) {
	for _, input := range corpus {
		for _, segments := range [][]string{
			graphemeSegments(input, false),
			graphemeSegments(input, true),
			wordSegments(input),
		} {
			for _, seg := range segments {
				require.NotEmpty(t, seg, "input %q", input)
			}
			assert.Equal(t, input, strings.Join(segments, ""), "input %q", input)
		}
	}
}

// TestDeterminism checks that segmenting the same input twice yields the
// same segments.
func TestDeterminism(t *testing.T) {
	for _, input := range corpus {
		assert.Equal(t, graphemeSegments(input, false), graphemeSegments(input, false), "input %q", input)
		assert.Equal(t, wordSegments(input), wordSegments(input), "input %q", input)
	}
}

// TestDirectionSymmetry checks that the backward iterators and the point
// queries agree with the forward state machines on every boundary.
func TestDirectionSymmetry(t *testing.T) {
	for _, input := range corpus {
		forward := graphemeSegments(input, false)
		g := NewGraphemes(input)
		var backward []string
		for g.NextBack() {
			backward = append(backward, g.Str())
		}
		for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
			backward[i], backward[j] = backward[j], backward[i]
		}
		require.Equal(t, forward, backward, "grapheme input %q", input)

		forward = wordSegments(input)
		w := NewWords(input)
		backward = nil
		for w.NextBack() {
			backward = append(backward, w.Str())
		}
		for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
			backward[i], backward[j] = backward[j], backward[i]
		}
		require.Equal(t, forward, backward, "word input %q", input)

		gWant := graphemeBoundarySet(input)
		wWant := wordBoundarySet(input)
		for i := range input {
			assert.Equal(t, gWant[i], IsGraphemeBoundary(input, i), "grapheme input %q offset %d", input, i)
			assert.Equal(t, wWant[i], IsWordBoundary(input, i), "word input %q offset %d", input, i)
		}
	}
}

// TestFilterIdempotence checks that re-segmenting a filtered word yields
// the word itself.
func TestFilterIdempotence(t *testing.T) {
	for _, input := range corpus {
		u := NewUnicodeWords(input)
		for u.Next() {
			word := u.Str()
			inner := NewUnicodeWords(word)
			require.True(t, inner.Next(), "input %q word %q", input, word)
			assert.Equal(t, word, inner.Str(), "input %q", input)
			assert.False(t, inner.Next(), "input %q word %q", input, word)
		}
	}
}

// TestModeMonotonicity checks that every extended grapheme cluster is a
// concatenation of whole legacy clusters. Extended mode only ever glues
// more than legacy mode does.
func TestModeMonotonicity(t *testing.T) {
	for _, input := range corpus {
		legacyBounds := map[int]bool{0: true}
		g := NewLegacyGraphemes(input)
		for g.Next() {
			_, to := g.Positions()
			legacyBounds[to] = true
		}
		g = NewGraphemes(input)
		for g.Next() {
			_, to := g.Positions()
			assert.True(t, legacyBounds[to], "input %q: extended boundary %d is not a legacy boundary", input, to)
		}
	}
}

// TestStatefulResumption checks that feeding the remainder back into the
// First* functions with the returned state matches whole-string
// segmentation.
func TestStatefulResumption(t *testing.T) {
	for _, input := range corpus {
		var clusters []string
		str := input
		state := -1
		for len(str) > 0 {
			var c string
			c, str, state = FirstGraphemeClusterInString(str, state)
			clusters = append(clusters, c)
		}
		assert.Equal(t, graphemeSegments(input, false), clusters, "input %q", input)

		var tokens []string
		str = input
		state = -1
		for len(str) > 0 {
			var tok string
			tok, str, state = FirstWordInString(str, state)
			tokens = append(tokens, tok)
		}
		assert.Equal(t, wordSegments(input), tokens, "input %q", input)
	}
}
