package models

// Score aggregates correctness history for a single term across sessions.
// Correct and Incorrect belong to the counter-pair policy; Value belongs to
// the signed policy. A score file only ever carries one of the two layouts.
type Score struct {
	Correct   int
	Incorrect int
	Value     int
}

// TotalTries returns how many times the term was answered correctly overall
func (s Score) TotalTries() int {
	return s.Correct + s.Incorrect
}

// CorrectRate returns the share of first-try answers, 1.0 for unseen terms
func (s Score) CorrectRate() float64 {
	tries := s.Correct + s.Incorrect
	if tries == 0 {
		return 1.0
	}
	return float64(s.Correct) / float64(tries)
}

// Scores maps a term to its aggregate score
type Scores map[string]Score
