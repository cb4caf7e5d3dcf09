// Package quiz owns the ordered entry list and the progress of one drill.
package quiz

import (
	"github.com/example/vocabtrainer/internal/scoring"
	"github.com/example/vocabtrainer/pkg/models"
)

// Question is one quiz round. Index is the entry's position in the loaded
// list (displayed 1-based); Entry is a shared reference into that list.
type Question struct {
	Index int
	Entry *models.Entry
}

// State is the quiz state machine. The entry list is never mutated after
// construction; progress only moves forward.
type State struct {
	entries  []*models.Entry
	scores   models.Scores
	policy   scoring.Policy
	progress int
	mistakes int
}

// NewState creates quiz state over the loaded entries and prior scores
func NewState(entries []*models.Entry, scores models.Scores, policy scoring.Policy) *State {
	if scores == nil {
		scores = models.Scores{}
	}
	return &State{
		entries: entries,
		scores:  scores,
		policy:  policy,
	}
}

// NextQuestion returns the next question, or ok=false when the list is
// exhausted. Producing a question resets the mistake counter.
func (s *State) NextQuestion() (Question, bool) {
	if s.progress >= len(s.entries) {
		return Question{}, false
	}
	i := s.progress
	s.progress++
	s.mistakes = 0
	return Question{Index: i, Entry: s.entries[i]}, true
}

// AnswerQuestion checks the submitted text against the question's term.
// A match applies the scoring policy with the current mistake count and
// returns true; a mismatch increments the mistake count and returns false.
func (s *State) AnswerQuestion(q Question, answer string) bool {
	if q.Entry.Term != answer {
		s.mistakes++
		return false
	}
	s.scores[q.Entry.Term] = s.policy.Apply(s.scores[q.Entry.Term], s.mistakes)
	return true
}

// Mistakes returns the mistake count for the active question
func (s *State) Mistakes() int {
	return s.mistakes
}

// Progress returns how many questions have been produced so far
func (s *State) Progress() int {
	return s.progress
}

// Total returns the number of loaded entries
func (s *State) Total() int {
	return len(s.entries)
}

// Scores returns the live score mapping for persistence at session end
func (s *State) Scores() models.Scores {
	return s.scores
}

// ScoreFor returns the aggregate score recorded for a term
func (s *State) ScoreFor(term string) models.Score {
	return s.scores[term]
}
