package hint

import (
	"strings"
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		term     string
		mistakes int
		want     string
	}{
		{"cat", 0, "___"},
		{"cat", 1, "c__"},
		{"cat", 2, "ca_"},
		{"cat", 3, "cat"},
		{"cat", 10, "cat"},
		// Non-letters are always revealed and do not consume the budget.
		{"give up", 0, "____ __"},
		{"give up", 4, "give __"},
		{"give up", 5, "give u_"},
		{"don't", 2, "do_'_"},
		{"x-ray", 1, "x-___"},
		{"", 0, ""},
		{"42!", 0, "42!"},
	}
	for _, tt := range tests {
		if got := Mask(tt.term, tt.mistakes); got != tt.want {
			t.Errorf("Mask(%q, %d) = %q, want %q", tt.term, tt.mistakes, got, tt.want)
		}
	}
}

func TestMaskNonASCIIAlwaysShown(t *testing.T) {
	// Runes outside A-Z count as symbols, matching the original format.
	if got := Mask("café", 0); got != "___é" {
		t.Errorf("Mask(café, 0) = %q, want %q", got, "___é")
	}
}

func TestMaskMonotonic(t *testing.T) {
	// A revealed letter can never be re-masked by more mistakes.
	term := "give up"
	prev := Mask(term, 0)
	for m := 1; m <= len(term)+1; m++ {
		cur := Mask(term, m)
		for i := range prev {
			if prev[i] != '_' && cur[i] == '_' {
				t.Fatalf("mistakes %d re-masked position %d: %q -> %q", m, i, prev, cur)
			}
		}
		prev = cur
	}
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		term     string
		typed    string
		mistakes int
		want     string
	}{
		{"cat", "", 1, "c__"},
		{"cat", "c", 1, "__"},
		{"cat", "ca", 1, "_"},
		{"cat", "cat", 1, ""},
		{"cat", "wrong answer", 0, ""},
		{"give up", "give", 0, " __"},
	}
	for _, tt := range tests {
		if got := Suffix(tt.term, tt.typed, tt.mistakes); got != tt.want {
			t.Errorf("Suffix(%q, %q, %d) = %q, want %q", tt.term, tt.typed, tt.mistakes, got, tt.want)
		}
	}
}

func TestSuffixRecomputedPerKeystroke(t *testing.T) {
	term := "hello"
	var parts []string
	for i := 0; i <= len(term); i++ {
		parts = append(parts, Suffix(term, term[:i], 2))
	}
	if strings.Join(parts[:1], "") != "he___" {
		t.Errorf("initial suffix = %q", parts[0])
	}
	if parts[len(parts)-1] != "" {
		t.Errorf("final suffix = %q, want empty", parts[len(parts)-1])
	}
}
