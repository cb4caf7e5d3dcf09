// Package scoring maps the outcome of a correctly answered question onto the
// persistent score aggregate. A wrong submission never reaches a policy; it
// only bumps the per-question mistake counter held by the quiz state.
package scoring

import (
	"fmt"

	"github.com/example/vocabtrainer/pkg/models"
)

// Policy decides how a correct answer updates a term's aggregate score
type Policy interface {
	// Name returns the identifier used in configuration and score files
	Name() string
	// Apply returns the score after a correct answer given with the
	// recorded number of mistakes on the current question
	Apply(prev models.Score, mistakes int) models.Score
}

// CounterPair is the canonical policy: a correct first-try answer increments
// Correct, a correct answer reached after mistakes increments Incorrect.
type CounterPair struct{}

// Name implements Policy
func (CounterPair) Name() string { return "counters" }

// Apply implements Policy
func (CounterPair) Apply(prev models.Score, mistakes int) models.Score {
	if mistakes == 0 {
		prev.Correct++
	} else {
		prev.Incorrect++
	}
	return prev
}

// Signed is the single-counter policy: +1 for a first-try answer, -1 for a
// correct answer reached after mistakes.
type Signed struct{}

// Name implements Policy
func (Signed) Name() string { return "signed" }

// Apply implements Policy
func (Signed) Apply(prev models.Score, mistakes int) models.Score {
	if mistakes == 0 {
		prev.Value++
	} else {
		prev.Value--
	}
	return prev
}

// ByName returns the policy for a configuration value
func ByName(name string) (Policy, error) {
	switch name {
	case "", "counters":
		return CounterPair{}, nil
	case "signed":
		return Signed{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring policy: %q", name)
	}
}
