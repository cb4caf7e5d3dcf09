package models

import "time"

// SessionResult tracks the outcome of one drill session
type SessionResult struct {
	ID             int64     `json:"id" db:"id"`
	TotalQuestions int       `json:"total_questions" db:"total_questions"`
	Answered       int       `json:"answered" db:"answered"`
	Perfect        int       `json:"perfect" db:"perfect"`
	Mistakes       int       `json:"mistakes" db:"mistakes"`
	StartedAt      time.Time `json:"started_at" db:"started_at"`
	Duration       int       `json:"duration" db:"duration"` // Duration in seconds
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// TermResult tracks the outcome of one question within a session
type TermResult struct {
	ID        int64  `json:"id" db:"id"`
	SessionID int64  `json:"session_id" db:"session_id"`
	Term      string `json:"term" db:"term"`
	Mistakes  int    `json:"mistakes" db:"mistakes"`
	Answered  bool   `json:"answered" db:"answered"`
}
