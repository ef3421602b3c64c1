package textseg

import (
	"testing"
)

// TestWordTokens tests the full partition into word tokens, including
// whitespace and punctuation runs.
func TestWordTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"simple", "Hello, world!", []string{"Hello", ",", " ", "world", "!"}},
		{"quotes and double space", "The quick (\"brown\")  fox", []string{
			"The", " ", "quick", " ", "(", "\"", "brown", "\"", ")", "  ", "fox",
		}},
		{"apostrophe", "can't", []string{"can't"}},
		{"mid number", "32.3", []string{"32.3"}},
		{"thousands", "1,000.5", []string{"1,000.5"}},
		{"extend num let", "1_000 a_b", []string{"1_000", " ", "a_b"}},
		{"alnum", "R2D2", []string{"R2D2"}},
		{"trailing period", "end.", []string{"end", "."}},
		{"newline isolated", "a\nb", []string{"a", "\n", "b"}},
		{"crlf token", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"hebrew double quote", "א\"א", []string{"א\"א"}},
		{"hebrew single quote", "א'", []string{"א'"}},
		{"katakana", "カタカナ デス", []string{"カタカナ", " ", "デス"}},
		{"adjacent word tokens", "aカ", []string{"a", "カ"}},
		{"hiragana splits", "です", []string{"で", "す"}},
		{"flags pair up", "🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
		{"odd flag run", "🇩🇪🇫🇷\U0001F1E6", []string{"🇩🇪", "🇫🇷", "\U0001F1E6"}},
		{"zwj pictograph", "a🏳️‍🌈b", []string{"a", "🏳️‍🌈", "b"}},
		{"zwj between spaces", "a ‍ b", []string{"a", " ‍", " ", "b"}},
		{"combining marks", "fox́ run", []string{"fox́", " ", "run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokens []string
			str := tt.input
			state := -1
			for len(str) > 0 {
				var tok string
				tok, str, state = FirstWordInString(str, state)
				tokens = append(tokens, tok)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens %q, want %d %q", len(tokens), tokens, len(tt.expected), tt.expected)
			}
			for i, tok := range tokens {
				if tok != tt.expected[i] {
					t.Errorf("token %d: got %q, want %q", i, tok, tt.expected[i])
				}
			}
		})
	}
}

// TestWordTokensBytes checks that the byte variant agrees with the string
// variant.
func TestWordTokensBytes(t *testing.T) {
	input := "The quick (\"brown\")  fox can't jump 32.3 feet"
	b := []byte(input)
	str := input
	bState, sState := -1, -1
	for len(b) > 0 {
		var tb []byte
		var ts string
		tb, b, bState = FirstWord(b, bState)
		ts, str, sState = FirstWordInString(str, sState)
		if string(tb) != ts {
			t.Fatalf("byte token %q != string token %q", tb, ts)
		}
	}
	if len(str) > 0 {
		t.Errorf("string variant has %q left over", str)
	}
}

// TestWordsBackward checks that backward iteration yields the forward tokens
// in reverse order, including across the lookahead rules.
func TestWordsBackward(t *testing.T) {
	inputs := []string{
		"",
		"Hello, world!",
		"can't stop",
		"32.3 and 1,000_5",
		"א\"א א' ab",
		"The quick (\"brown\")  fox",
		"a\r\n\nb",
		"🇩🇪🇫🇷\U0001F1E6 x",
		"a ‍ b",
	}
	for _, input := range inputs {
		var forward []string
		w := NewWords(input)
		for w.Next() {
			forward = append(forward, w.Str())
		}

		var backward []string
		w = NewWords(input)
		for w.NextBack() {
			backward = append(backward, w.Str())
		}

		if len(forward) != len(backward) {
			t.Errorf("%q: forward %d tokens %q, backward %d %q", input, len(forward), forward, len(backward), backward)
			continue
		}
		for i := range forward {
			if forward[i] != backward[len(backward)-1-i] {
				t.Errorf("%q: token %d: forward %q, backward %q", input, i, forward[i], backward[len(backward)-1-i])
			}
		}
	}
}

func TestWordsMoveTo(t *testing.T) {
	str := "one two three"
	w := NewWords(str)
	w.MoveTo(4) // start of "two"
	if !w.Next() || w.Str() != "two" {
		t.Errorf("got %q, want %q", w.Str(), "two")
	}
	// The backward cursor resets to the end and converges on the offset.
	w.MoveTo(8)
	if !w.NextBack() || w.Str() != "three" {
		t.Errorf("got %q, want %q", w.Str(), "three")
	}
	if w.NextBack() {
		t.Error("NextBack past the forward cursor returned true")
	}
}

// TestUnicodeWords tests the filtered iterator that skips tokens without
// word content.
func TestUnicodeWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"punctuation only", "... !?", nil},
		{"sentence", "The quick (\"brown\")  fox can't jump 32.3 feet, right?", []string{
			"The", "quick", "brown", "fox", "can't", "jump", "32.3", "feet", "right",
		}},
		{"hebrew", "א\"א bet", []string{"א\"א", "bet"}},
		{"numbers", "1_000 + 2", []string{"1_000", "2"}},
		{"katakana", "カタカナ!", []string{"カタカナ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var words []string
			u := NewUnicodeWords(tt.input)
			for u.Next() {
				words = append(words, u.Str())
			}
			if len(words) != len(tt.expected) {
				t.Fatalf("got %d words %q, want %d %q", len(words), words, len(tt.expected), tt.expected)
			}
			for i, word := range words {
				if word != tt.expected[i] {
					t.Errorf("word %d: got %q, want %q", i, word, tt.expected[i])
				}
			}
		})
	}
}

func TestUnicodeWordsPosition(t *testing.T) {
	u := NewUnicodeWords("  ab, cd")
	if !u.Next() || u.Str() != "ab" || u.Position() != 2 {
		t.Errorf("got %q at %d, want %q at 2", u.Str(), u.Position(), "ab")
	}
	if !u.Next() || u.Str() != "cd" || u.Position() != 6 {
		t.Errorf("got %q at %d, want %q at 6", u.Str(), u.Position(), "cd")
	}
	if u.Next() {
		t.Error("Next at end returned true")
	}
}
