package textseg

import (
	"testing"
)

// TestGraphemeClusters tests forward segmentation into extended grapheme
// clusters.
func TestGraphemeClusters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"combining", "a̐éö̲\r\n", []string{"a̐", "é", "ö̲", "\r\n"}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"lone cr", "a\rb", []string{"a", "\r", "b"}},
		{"control", "ab", []string{"a", "", "b"}},
		{"extend after cr", "\ŕ", []string{"\r", "́"}},
		{"flags", "🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
		{"odd flag run", "\U0001F1E6\U0001F1E7\U0001F1E8", []string{"\U0001F1E6\U0001F1E7", "\U0001F1E8"}},
		{"zwj emoji", "🏳️‍🌈", []string{"🏳️‍🌈"}},
		{"zwj family", "👨‍👩‍👧", []string{"👨‍👩‍👧"}},
		{"zwj no pictograph", "a‍b", []string{"a‍", "b"}},
		{"hangul conjoining", "한녕", []string{"한", "녕"}},
		{"hangul precomposed", "안녕", []string{"안", "녕"}},
		{"spacing mark", "नी", []string{"नी"}},
		{"prepend", "؀١", []string{"؀١"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clusters []string
			str := tt.input
			state := -1
			for len(str) > 0 {
				var c string
				c, str, state = FirstGraphemeClusterInString(str, state)
				clusters = append(clusters, c)
			}
			if len(clusters) != len(tt.expected) {
				t.Fatalf("got %d clusters %q, want %d %q", len(clusters), clusters, len(tt.expected), tt.expected)
			}
			for i, c := range clusters {
				if c != tt.expected[i] {
					t.Errorf("cluster %d: got %q, want %q", i, c, tt.expected[i])
				}
			}
		})
	}
}

// TestGraphemeClustersBytes checks that the byte variant agrees with the
// string variant.
func TestGraphemeClustersBytes(t *testing.T) {
	input := "a̐é🇩🇪\r\n👨‍👩‍👧"
	b := []byte(input)
	str := input
	bState, sState := -1, -1
	for len(b) > 0 {
		var cb []byte
		var cs string
		cb, b, bState = FirstGraphemeCluster(b, bState)
		cs, str, sState = FirstGraphemeClusterInString(str, sState)
		if string(cb) != cs {
			t.Fatalf("byte cluster %q != string cluster %q", cb, cs)
		}
	}
	if len(str) > 0 {
		t.Errorf("string variant has %q left over", str)
	}
}

// TestLegacyGraphemeClusters tests the differences between legacy and
// extended clusters. SpacingMark and Prepend do not glue in legacy mode.
func TestLegacyGraphemeClusters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"spacing mark splits", "नी", []string{"न", "ी"}},
		{"prepend splits", "؀١", []string{"؀", "١"}},
		{"combining still glues", "é", []string{"é"}},
		{"crlf still glues", "\r\n", []string{"\r\n"}},
		{"flags still glue", "🇩🇪", []string{"🇩🇪"}},
		{"zwj emoji still glues", "🏳️‍🌈", []string{"🏳️‍🌈"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clusters []string
			g := NewLegacyGraphemes(tt.input)
			for g.Next() {
				clusters = append(clusters, g.Str())
			}
			if len(clusters) != len(tt.expected) {
				t.Fatalf("got %d clusters %q, want %d %q", len(clusters), clusters, len(tt.expected), tt.expected)
			}
			for i, c := range clusters {
				if c != tt.expected[i] {
					t.Errorf("cluster %d: got %q, want %q", i, c, tt.expected[i])
				}
			}
		})
	}
}

func TestGraphemeClusterCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"🇩🇪🏳️‍🌈", 2},
		{"a̐éö̲\r\n", 4},
		{"한", 1},
	}
	for _, tt := range tests {
		if n := GraphemeClusterCount(tt.input); n != tt.want {
			t.Errorf("GraphemeClusterCount(%q) = %d, want %d", tt.input, n, tt.want)
		}
	}
}

// TestGraphemesBackward checks that backward iteration yields the forward
// clusters in reverse order.
func TestGraphemesBackward(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"a̐éö̲\r\n",
		"🇩🇪🇫🇷\U0001F1E6",
		"👨‍👩‍👧x🏳️‍🌈",
		"한녕",
		"؀١ab",
		"\r\n\r\n\n",
	}
	for _, input := range inputs {
		var forward []string
		g := NewGraphemes(input)
		for g.Next() {
			forward = append(forward, g.Str())
		}

		var backward []string
		g = NewGraphemes(input)
		for g.NextBack() {
			backward = append(backward, g.Str())
		}

		if len(forward) != len(backward) {
			t.Errorf("%q: forward %d clusters %q, backward %d %q", input, len(forward), forward, len(backward), backward)
			continue
		}
		for i := range forward {
			if forward[i] != backward[len(backward)-1-i] {
				t.Errorf("%q: cluster %d: forward %q, backward %q", input, i, forward[i], backward[len(backward)-1-i])
			}
		}
	}
}

func TestGraphemesMoveTo(t *testing.T) {
	str := "a🇩🇪é!"
	g := NewGraphemes(str)

	// Jump into the middle and iterate forward from there.
	g.MoveTo(9) // start of "é"
	if !g.Next() {
		t.Fatal("Next after MoveTo returned false")
	}
	if g.Str() != "é" {
		t.Errorf("got %q, want %q", g.Str(), "é")
	}
	if !g.Next() || g.Str() != "!" {
		t.Errorf("got %q, want %q", g.Str(), "!")
	}
	if g.Next() {
		t.Error("Next at end returned true")
	}

	// MoveTo also resets the backward cursor to the end of the string. The
	// cursors then converge at the requested offset.
	g.MoveTo(9)
	if !g.NextBack() || g.Str() != "!" {
		t.Errorf("got %q, want %q", g.Str(), "!")
	}
	if !g.NextBack() || g.Str() != "é" {
		t.Errorf("got %q, want %q", g.Str(), "é")
	}
	if g.NextBack() {
		t.Error("NextBack past the forward cursor returned true")
	}
}

func TestGraphemesMoveToPanics(t *testing.T) {
	tests := []struct {
		name   string
		offset int
	}{
		{"negative", -1},
		{"past end", 100},
		{"mid scalar", 2}, // inside the first regional indicator
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("MoveTo(%d) did not panic", tt.offset)
				}
			}()
			g := NewGraphemes("🇩🇪")
			g.MoveTo(tt.offset)
		})
	}
}
