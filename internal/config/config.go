// Package config gathers the environment-driven settings of the trainer.
// A .env file next to the binary is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/vocabtrainer/internal/scoring"
	"github.com/example/vocabtrainer/internal/storage"
)

// Config holds all runtime settings
type Config struct {
	// ScorePath is the location of the persisted score file
	ScorePath string
	// Policy is the scoring policy applied to correct answers
	Policy scoring.Policy
	// HistoryDB is the sqlite path or postgres URL for session history;
	// empty disables history recording
	HistoryDB string
	// RemindEvery is the reminder daemon's check interval
	RemindEvery time.Duration
	// RemindStartHour and RemindEndHour bound when reminders may fire
	RemindStartHour int
	RemindEndHour   int
	// WeakThreshold is the correct rate below which a term counts as weak
	WeakThreshold float64
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ScorePath:       os.Getenv("SCORE_FILE"),
		HistoryDB:       os.Getenv("HISTORY_DB"),
		RemindEvery:     getEnvDuration("REMIND_EVERY", time.Hour),
		RemindStartHour: getEnvInt("REMIND_START_HOUR", 8),
		RemindEndHour:   getEnvInt("REMIND_END_HOUR", 22),
		WeakThreshold:   getEnvFloat("WEAK_THRESHOLD", 0.6),
	}

	if cfg.HistoryDB == "" {
		cfg.HistoryDB = os.Getenv("DATABASE_URL")
	}

	policy, err := scoring.ByName(os.Getenv("SCORING_POLICY"))
	if err != nil {
		return nil, err
	}
	cfg.Policy = policy

	if cfg.ScorePath == "" {
		path, err := storage.DefaultScorePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve score path: %v", err)
		}
		cfg.ScorePath = path
	}
	return cfg, nil
}

// getEnvInt reads an int from the environment or returns the fallback
func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvFloat reads a float from the environment or returns the fallback
func getEnvFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return f
}

// getEnvDuration reads a duration from the environment or returns the fallback
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}
