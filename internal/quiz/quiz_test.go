package quiz

import (
	"testing"

	"github.com/example/vocabtrainer/internal/scoring"
	"github.com/example/vocabtrainer/pkg/models"
)

func testEntries(terms ...string) []*models.Entry {
	entries := make([]*models.Entry, 0, len(terms))
	for _, term := range terms {
		entries = append(entries, &models.Entry{Term: term})
	}
	return entries
}

func TestNextQuestionSequence(t *testing.T) {
	entries := testEntries("dog", "cat", "bird")
	st := NewState(entries, nil, scoring.CounterPair{})

	for i := range entries {
		q, ok := st.NextQuestion()
		if !ok {
			t.Fatalf("question %d: unexpected end", i)
		}
		if q.Index != i {
			t.Errorf("question index = %d, want %d", q.Index, i)
		}
		if q.Entry != entries[i] {
			t.Errorf("question %d does not share the loaded entry", i)
		}
	}
	if _, ok := st.NextQuestion(); ok {
		t.Error("expected terminal signal after the list is exhausted")
	}
	if st.Progress() != len(entries) {
		t.Errorf("progress = %d, want %d", st.Progress(), len(entries))
	}
}

func TestAnswerQuestion(t *testing.T) {
	st := NewState(testEntries("dog"), nil, scoring.CounterPair{})
	q, _ := st.NextQuestion()

	if st.AnswerQuestion(q, "cat") {
		t.Error("mismatched answer reported correct")
	}
	if st.Mistakes() != 1 {
		t.Errorf("mistakes = %d, want 1", st.Mistakes())
	}
	if len(st.Scores()) != 0 {
		t.Error("a wrong submission must not touch the score mapping")
	}

	// Matching is exact and case sensitive.
	if st.AnswerQuestion(q, "Dog") {
		t.Error("case-different answer reported correct")
	}
	if st.Mistakes() != 2 {
		t.Errorf("mistakes = %d, want 2", st.Mistakes())
	}

	if !st.AnswerQuestion(q, "dog") {
		t.Error("exact answer reported incorrect")
	}
	score := st.ScoreFor("dog")
	if score.Correct != 0 || score.Incorrect != 1 {
		t.Errorf("score = %+v, want one incorrect (answered after mistakes)", score)
	}
}

func TestMistakesResetPerQuestion(t *testing.T) {
	st := NewState(testEntries("dog", "cat"), nil, scoring.CounterPair{})

	q, _ := st.NextQuestion()
	st.AnswerQuestion(q, "wrong")
	st.AnswerQuestion(q, "dog")

	q, _ = st.NextQuestion()
	if st.Mistakes() != 0 {
		t.Errorf("mistakes after new question = %d, want 0", st.Mistakes())
	}
	st.AnswerQuestion(q, "cat")
	if score := st.ScoreFor("cat"); score.Correct != 1 || score.Incorrect != 0 {
		t.Errorf("score = %+v, want one first-try correct", score)
	}
}

func TestPriorScoresAccumulate(t *testing.T) {
	prior := models.Scores{"dog": {Correct: 2, Incorrect: 1}}
	st := NewState(testEntries("dog"), prior, scoring.CounterPair{})
	q, _ := st.NextQuestion()
	st.AnswerQuestion(q, "dog")
	if score := st.ScoreFor("dog"); score.Correct != 3 || score.Incorrect != 1 {
		t.Errorf("score = %+v, want correct=3 incorrect=1", score)
	}
}

func TestSignedPolicyWiring(t *testing.T) {
	st := NewState(testEntries("dog"), nil, scoring.Signed{})
	q, _ := st.NextQuestion()
	st.AnswerQuestion(q, "dog")
	if score := st.ScoreFor("dog"); score.Value != 1 {
		t.Errorf("score = %+v, want value=1", score)
	}
}

func TestEmptyList(t *testing.T) {
	st := NewState(nil, nil, scoring.CounterPair{})
	if _, ok := st.NextQuestion(); ok {
		t.Error("empty list must terminate immediately")
	}
	if st.Total() != 0 || st.Progress() != 0 {
		t.Errorf("total=%d progress=%d, want 0/0", st.Total(), st.Progress())
	}
}
