// Package review selects and orders entries for focused practice based on
// the persisted score mapping.
package review

import (
	"sort"

	"github.com/example/vocabtrainer/pkg/models"
)

// Prioritize returns the entries ordered hardest-first and trimmed to limit
// (limit <= 0 keeps everything). Priority order:
// 1. Terms that have never been answered
// 2. Terms with the lowest correct rate
// 3. Terms with the fewest recorded tries
// The returned slice is a new ordering over the same shared entries; the
// input list is left untouched.
func Prioritize(entries []*models.Entry, scores models.Scores, limit int) []*models.Entry {
	out := make([]*models.Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := scores[out[i].Term], scores[out[j].Term]

		// Never-answered terms come first
		if si.TotalTries() == 0 && sj.TotalTries() > 0 {
			return true
		}
		if sj.TotalTries() == 0 && si.TotalTries() > 0 {
			return false
		}

		if si.CorrectRate() != sj.CorrectRate() {
			return si.CorrectRate() < sj.CorrectRate()
		}
		return si.TotalTries() < sj.TotalTries()
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// WeakTerm is a term whose correct rate fell below the weakness threshold
type WeakTerm struct {
	Term  string
	Score models.Score
}

// WeakTerms returns the terms answered at least once whose correct rate is
// below the threshold, weakest first.
func WeakTerms(scores models.Scores, threshold float64) []WeakTerm {
	var weak []WeakTerm
	for term, score := range scores {
		if score.TotalTries() > 0 && score.CorrectRate() < threshold {
			weak = append(weak, WeakTerm{Term: term, Score: score})
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Score.CorrectRate() != weak[j].Score.CorrectRate() {
			return weak[i].Score.CorrectRate() < weak[j].Score.CorrectRate()
		}
		return weak[i].Term < weak[j].Term
	})
	return weak
}
