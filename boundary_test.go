package textseg

import (
	"testing"
)

// boundarySet runs the forward iterator and collects the set of boundary
// offsets, including 0 and len(str).
func graphemeBoundarySet(str string) map[int]bool {
	set := map[int]bool{0: true, len(str): true}
	g := NewGraphemes(str)
	for g.Next() {
		_, to := g.Positions()
		set[to] = true
	}
	return set
}

func wordBoundarySet(str string) map[int]bool {
	set := map[int]bool{0: true, len(str): true}
	w := NewWords(str)
	for w.Next() {
		_, to := w.Positions()
		set[to] = true
	}
	return set
}

// TestIsGraphemeBoundary checks the point query against the forward
// iterator at every scalar value boundary.
func TestIsGraphemeBoundary(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"a̐éö̲\r\n",
		"🇩🇪🇫🇷\U0001F1E6",
		"👨‍👩‍👧x🏳️‍🌈",
		"한녕",
		"؀١नी",
		"\r\r\n\ń",
		"a‍b",
	}
	for _, input := range inputs {
		want := graphemeBoundarySet(input)
		for i := range input {
			if got := IsGraphemeBoundary(input, i); got != want[i] {
				t.Errorf("IsGraphemeBoundary(%q, %d) = %v, want %v", input, i, got, want[i])
			}
		}
		if !IsGraphemeBoundary(input, len(input)) {
			t.Errorf("IsGraphemeBoundary(%q, len) = false", input)
		}
	}
}

// TestIsLegacyGraphemeBoundary checks the legacy point query against the
// legacy iterator.
func TestIsLegacyGraphemeBoundary(t *testing.T) {
	inputs := []string{
		"नी",
		"؀١",
		"é🇩🇪",
	}
	for _, input := range inputs {
		want := map[int]bool{0: true, len(input): true}
		g := NewLegacyGraphemes(input)
		for g.Next() {
			_, to := g.Positions()
			want[to] = true
		}
		for i := range input {
			if got := IsLegacyGraphemeBoundary(input, i); got != want[i] {
				t.Errorf("IsLegacyGraphemeBoundary(%q, %d) = %v, want %v", input, i, got, want[i])
			}
		}
	}
}

// TestIsWordBoundary checks the point query against the forward iterator at
// every scalar value boundary.
func TestIsWordBoundary(t *testing.T) {
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
		"カタカナ デス",
		"fox́ run",
	}
	for _, input := range inputs {
		want := wordBoundarySet(input)
		for i := range input {
			if got := IsWordBoundary(input, i); got != want[i] {
				t.Errorf("IsWordBoundary(%q, %d) = %v, want %v", input, i, got, want[i])
			}
		}
		if !IsWordBoundary(input, len(input)) {
			t.Errorf("IsWordBoundary(%q, len) = false", input)
		}
	}
}

func TestNextPrevGraphemeBoundary(t *testing.T) {
	str := "a🇩🇪é"
	// Boundaries are 0, 1, 9, 12.
	if got := NextGraphemeBoundary(str, 0); got != 1 {
		t.Errorf("NextGraphemeBoundary(0) = %d, want 1", got)
	}
	if got := NextGraphemeBoundary(str, 1); got != 9 {
		t.Errorf("NextGraphemeBoundary(1) = %d, want 9", got)
	}
	if got := NextGraphemeBoundary(str, 5); got != 9 {
		t.Errorf("NextGraphemeBoundary(5) = %d, want 9", got)
	}
	if got := NextGraphemeBoundary(str, len(str)); got != -1 {
		t.Errorf("NextGraphemeBoundary(len) = %d, want -1", got)
	}
	if got := PrevGraphemeBoundary(str, len(str)); got != 9 {
		t.Errorf("PrevGraphemeBoundary(len) = %d, want 9", got)
	}
	if got := PrevGraphemeBoundary(str, 5); got != 1 {
		t.Errorf("PrevGraphemeBoundary(5) = %d, want 1", got)
	}
	if got := PrevGraphemeBoundary(str, 0); got != -1 {
		t.Errorf("PrevGraphemeBoundary(0) = %d, want -1", got)
	}
}

func TestNextPrevWordBoundary(t *testing.T) {
	str := "ab cd"
	// Boundaries are 0, 2, 3, 5.
	if got := NextWordBoundary(str, 0); got != 2 {
		t.Errorf("NextWordBoundary(0) = %d, want 2", got)
	}
	if got := NextWordBoundary(str, 2); got != 3 {
		t.Errorf("NextWordBoundary(2) = %d, want 3", got)
	}
	if got := NextWordBoundary(str, len(str)); got != -1 {
		t.Errorf("NextWordBoundary(len) = %d, want -1", got)
	}
	if got := PrevWordBoundary(str, len(str)); got != 3 {
		t.Errorf("PrevWordBoundary(len) = %d, want 3", got)
	}
	if got := PrevWordBoundary(str, 1); got != 0 {
		t.Errorf("PrevWordBoundary(1) = %d, want 0", got)
	}
	if got := PrevWordBoundary(str, 0); got != -1 {
		t.Errorf("PrevWordBoundary(0) = %d, want -1", got)
	}
}

// TestBoundaryNavigationRoundTrip walks forward with NextGraphemeBoundary
// and then back with PrevGraphemeBoundary, expecting the same offsets.
func TestBoundaryNavigationRoundTrip(t *testing.T) {
	str := "a̐🇩🇪🇫🇷\r\n👨‍👩‍👧 can't"
	forward := []int{0}
	for {
		next := NextGraphemeBoundary(str, forward[len(forward)-1])
		if next < 0 {
			break
		}
		forward = append(forward, next)
	}
	backward := []int{len(str)}
	for {
		prev := PrevGraphemeBoundary(str, backward[len(backward)-1])
		if prev < 0 {
			break
		}
		backward = append(backward, prev)
	}
	if len(forward) != len(backward) {
		t.Fatalf("forward %v, backward %v", forward, backward)
	}
	for i, off := range forward {
		if off != backward[len(backward)-1-i] {
			t.Errorf("offset %d: forward %d, backward %d", i, off, backward[len(backward)-1-i])
		}
	}
}

func TestBoundaryOffsetPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"negative", func() { IsGraphemeBoundary("ab", -1) }},
		{"past end", func() { IsGraphemeBoundary("ab", 3) }},
		{"mid scalar", func() { IsGraphemeBoundary("é", 1) }},
		{"word negative", func() { IsWordBoundary("ab", -1) }},
		{"word mid scalar", func() { IsWordBoundary("é", 1) }},
		{"next mid scalar", func() { NextGraphemeBoundary("é", 1) }},
		{"prev past end", func() { PrevWordBoundary("ab", 5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			tt.fn()
		})
	}
}
