// Package scheduler runs the periodic weak-term reminder.
package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/vocabtrainer/internal/review"
	"github.com/example/vocabtrainer/pkg/models"
)

// Notifier receives reminders about terms that need practice
type Notifier interface {
	RemindWeakTerms(terms []review.WeakTerm) error
}

// ScoreLoader reloads the score mapping for each check
type ScoreLoader func() (models.Scores, error)

// Scheduler manages the reminder job
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	loadAll   ScoreLoader

	// Threshold below which a term counts as weak
	Threshold float64
	// StartHour and EndHour bound when reminders fire
	StartHour int
	EndHour   int
}

// New creates a scheduler instance
func New(notifier Notifier, loadAll ScoreLoader, threshold float64, startHour, endHour int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		loadAll:   loadAll,
		Threshold: threshold,
		StartHour: startHour,
		EndHour:   endHour,
	}
}

// Start schedules the periodic check and begins running it asynchronously
func (s *Scheduler) Start(every time.Duration) {
	s.scheduler.Every(every).Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndRemind loads the scores and sends a reminder when weak terms exist
func (s *Scheduler) checkAndRemind() {
	currentHour := time.Now().Hour()
	if currentHour < s.StartHour || currentHour > s.EndHour {
		log.Printf("Current hour %d is outside reminder hours (%d-%d), skipping check",
			currentHour, s.StartHour, s.EndHour)
		return
	}

	scores, err := s.loadAll()
	if err != nil {
		log.Printf("Error loading scores for reminder check: %v", err)
		return
	}

	weak := review.WeakTerms(scores, s.Threshold)
	if len(weak) == 0 {
		return
	}
	if err := s.notifier.RemindWeakTerms(weak); err != nil {
		log.Printf("Error sending reminder: %v", err)
	}
}

// RunManualCheck forces an immediate check, ignoring the hour bounds
func (s *Scheduler) RunManualCheck() error {
	scores, err := s.loadAll()
	if err != nil {
		return err
	}
	weak := review.WeakTerms(scores, s.Threshold)
	if len(weak) == 0 {
		return nil
	}
	return s.notifier.RemindWeakTerms(weak)
}

// LogNotifier reports reminders through the standard logger
type LogNotifier struct{}

// RemindWeakTerms implements Notifier
func (LogNotifier) RemindWeakTerms(terms []review.WeakTerm) error {
	log.Printf("%d term(s) need practice:", len(terms))
	for _, t := range terms {
		log.Printf("  %s (%d tries, %.0f%% correct)", t.Term, t.Score.TotalTries(), t.Score.CorrectRate()*100)
	}
	return nil
}
