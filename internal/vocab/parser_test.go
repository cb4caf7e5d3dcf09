package vocab

import (
	"strings"
	"testing"

	"github.com/example/vocabtrainer/pkg/models"
)

func TestParseLineSinglePhrase(t *testing.T) {
	entry := ParseLine("cat / a small domesticated feline /")
	if entry == nil {
		t.Fatal("expected an entry, got nil")
	}
	if entry.Term != "cat" {
		t.Errorf("term = %q, want %q", entry.Term, "cat")
	}
	if len(entry.Phrases) != 1 {
		t.Fatalf("got %d phrases, want 1", len(entry.Phrases))
	}
	// Whitespace inside phrase bodies is preserved verbatim.
	want := models.Phrase{Body: " a small domesticated feline ", Comment: ""}
	if entry.Phrases[0] != want {
		t.Errorf("phrase = %+v, want %+v", entry.Phrases[0], want)
	}
}

func TestParseLineComments(t *testing.T) {
	entry := ParseLine("run / to move fast ;informal/ to manage ;business/")
	if entry == nil {
		t.Fatal("expected an entry, got nil")
	}
	if entry.Term != "run" {
		t.Errorf("term = %q, want %q", entry.Term, "run")
	}
	if len(entry.Phrases) != 2 {
		t.Fatalf("got %d phrases, want 2", len(entry.Phrases))
	}
	if entry.Phrases[0].Comment != "informal" {
		t.Errorf("first comment = %q, want %q", entry.Phrases[0].Comment, "informal")
	}
	if entry.Phrases[1].Comment != "business" {
		t.Errorf("second comment = %q, want %q", entry.Phrases[1].Comment, "business")
	}
	if entry.Phrases[0].Body != " to move fast " {
		t.Errorf("first body = %q", entry.Phrases[0].Body)
	}
}

func TestParseLineNoEntry(t *testing.T) {
	for _, line := range []string{"", "; a free-standing comment line"} {
		if entry := ParseLine(line); entry != nil {
			t.Errorf("ParseLine(%q) = %+v, want nil", line, entry)
		}
	}
}

func TestParseLineEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		term    string
		phrases int
	}{
		{name: "term with internal space", line: "give up / to stop trying /", term: "give up", phrases: 1},
		{name: "term only", line: "hello", term: "hello", phrases: 0},
		{name: "unterminated phrase dropped", line: "dog / an animal / loyal friend", term: "dog", phrases: 1},
		{name: "empty phrase", line: "x ///", term: "x", phrases: 2},
		{name: "nested semicolon is literal", line: "y / body ;one;two/", term: "y", phrases: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ParseLine(tt.line)
			if entry == nil {
				t.Fatal("expected an entry, got nil")
			}
			if entry.Term != tt.term {
				t.Errorf("term = %q, want %q", entry.Term, tt.term)
			}
			if len(entry.Phrases) != tt.phrases {
				t.Errorf("got %d phrases, want %d", len(entry.Phrases), tt.phrases)
			}
		})
	}
}

func TestParseLineStickyComment(t *testing.T) {
	// A second ';' does not toggle comment mode off.
	entry := ParseLine("y / body ;one;two/")
	if entry == nil || len(entry.Phrases) != 1 {
		t.Fatal("expected one phrase")
	}
	if entry.Phrases[0].Comment != "onetwo" {
		t.Errorf("comment = %q, want %q", entry.Phrases[0].Comment, "onetwo")
	}
	if entry.Phrases[0].Body != " body " {
		t.Errorf("body = %q, want %q", entry.Phrases[0].Body, " body ")
	}
}

func TestLoadEntries(t *testing.T) {
	input := "; header comment\ndog / an animal /\n\ncat / a feline /\n"
	entries, err := LoadEntries(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Term != "dog" || entries[1].Term != "cat" {
		t.Errorf("terms = %q, %q", entries[0].Term, entries[1].Term)
	}
}
