package ui

import (
	"testing"

	"github.com/fatih/color"

	"github.com/example/vocabtrainer/internal/quiz"
	"github.com/example/vocabtrainer/internal/scoring"
	"github.com/example/vocabtrainer/pkg/models"
)

func init() {
	color.NoColor = true
}

func TestFormatPhrases(t *testing.T) {
	q := quiz.Question{Entry: &models.Entry{
		Term: "run",
		Phrases: []models.Phrase{
			{Body: " to move fast ", Comment: "informal"},
			{Body: " to manage ", Comment: ""},
		},
	}}
	want := "/ to move fast ;informal/ to manage /"
	if got := FormatPhrases(q); got != want {
		t.Errorf("FormatPhrases = %q, want %q", got, want)
	}
}

func TestFormatResult(t *testing.T) {
	entry := &models.Entry{Term: "dog"}
	st := quiz.NewState([]*models.Entry{entry}, models.Scores{"dog": {Correct: 2, Incorrect: 1}}, scoring.CounterPair{})
	q, _ := st.NextQuestion()

	got := FormatResult(q, st, 0)
	want := "> dog (perfect, 3rd try, 67% correct)"
	if got != want {
		t.Errorf("FormatResult = %q, want %q", got, want)
	}

	got = FormatResult(q, st, 2)
	want = "> dog (2 mistakes, 3rd try, 67% correct)"
	if got != want {
		t.Errorf("FormatResult = %q, want %q", got, want)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 22: "22th"}
	for n, want := range tests {
		if got := Ordinal(n); got != want {
			t.Errorf("Ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestHintPainter(t *testing.T) {
	p := &hintPainter{}
	line := []rune("ca")
	if got := p.Paint(line, 2); string(got) != "ca" {
		t.Errorf("nil hint func should leave line untouched, got %q", string(got))
	}
	p.fn = func(buffer string) string {
		if buffer != "ca" {
			t.Errorf("painter buffer = %q, want %q", buffer, "ca")
		}
		return "_"
	}
	if got := p.Paint(line, 2); string(got) != "ca_" {
		t.Errorf("Paint = %q, want %q", string(got), "ca_")
	}
}
