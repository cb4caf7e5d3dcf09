// Package storage persists the score mapping as a line-oriented,
// tab-separated file. The file is read once at startup and overwritten
// wholesale at session end.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/vocabtrainer/internal/scoring"
	"github.com/example/vocabtrainer/pkg/models"
)

const appDirName = "vocabtrainer"

// DefaultScorePath resolves the score file location under the user's
// config directory, e.g. ~/.config/vocabtrainer/scores.txt.
func DefaultScorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %v", err)
	}
	return filepath.Join(dir, appDirName, "scores.txt"), nil
}

// LoadScores reads the score file for the given policy's layout. A missing
// file yields an empty mapping; malformed numeric fields default to zero.
func LoadScores(path string, policy scoring.Policy) (models.Scores, error) {
	scores := models.Scores{}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return scores, nil
		}
		return nil, fmt.Errorf("failed to open score file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "\t")
		if parts[0] == "" {
			continue
		}
		var score models.Score
		if policy.Name() == "signed" {
			score.Value = intField(parts, 1)
		} else {
			score.Correct = intField(parts, 1)
			score.Incorrect = intField(parts, 2)
		}
		scores[parts[0]] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score file: %v", err)
	}
	return scores, nil
}

// SaveScores overwrites the score file with the given mapping, creating
// parent directories as needed.
func SaveScores(path string, scores models.Scores, policy scoring.Policy) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create score directory: %v", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create score file: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for term, score := range scores {
		if policy.Name() == "signed" {
			fmt.Fprintf(w, "%s\t%d\n", term, score.Value)
		} else {
			fmt.Fprintf(w, "%s\t%d\t%d\n", term, score.Correct, score.Incorrect)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write score file: %v", err)
	}
	return nil
}

// intField parses parts[i] as an integer, defaulting to zero
func intField(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}
