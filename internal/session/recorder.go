package session

import (
	"time"

	"github.com/example/vocabtrainer/internal/quiz"
	"github.com/example/vocabtrainer/pkg/models"
)

// Recorder wraps a UI and records every answered question so the session
// outcome can be persisted afterwards.
type Recorder struct {
	UI
	started time.Time
	terms   []models.TermResult
}

// NewRecorder wraps the given UI
func NewRecorder(ui UI) *Recorder {
	return &Recorder{UI: ui, started: time.Now()}
}

// NotifyCorrect implements UI
func (r *Recorder) NotifyCorrect(q quiz.Question, st *quiz.State, mistakes int) {
	r.terms = append(r.terms, models.TermResult{
		Term:     q.Entry.Term,
		Mistakes: mistakes,
		Answered: true,
	})
	r.UI.NotifyCorrect(q, st, mistakes)
}

// TermResults returns the recorded per-question outcomes
func (r *Recorder) TermResults() []models.TermResult {
	return r.terms
}

// Result summarizes the session for persistence
func (r *Recorder) Result(totalQuestions int) *models.SessionResult {
	result := &models.SessionResult{
		TotalQuestions: totalQuestions,
		Answered:       len(r.terms),
		StartedAt:      r.started,
		Duration:       int(time.Since(r.started).Seconds()),
	}
	for _, t := range r.terms {
		if t.Mistakes == 0 {
			result.Perfect++
		}
		result.Mistakes += t.Mistakes
	}
	return result
}
