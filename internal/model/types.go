// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SessionSeconds is the fixed length of a typing attempt.
const SessionSeconds = 60

// CharsPerWord is the conventional word length used for WPM.
const CharsPerWord = 5

// ErrUnknownDifficulty is returned when a difficulty name cannot be parsed.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects a sample pool.
type Difficulty string

// Supported difficulties.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every difficulty in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty converts a user-supplied name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w %q (want easy, medium or hard)", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Valid reports whether d is one of the supported difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// CharStatus classifies a single target position.
type CharStatus int

// Character classifications.
const (
	Untouched CharStatus = iota
	Correct
	Incorrect
	Current
)

func (s CharStatus) String() string {
	switch s {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Current:
		return "current"
	default:
		return "untouched"
	}
}

// Status is the lifecycle state of a session.
type Status int

// Session states.
const (
	Idle Status = iota
	Running
	Finished
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// EndReason records why a session finished.
type EndReason string

// Session end reasons.
const (
	EndTimeout   EndReason = "timeout"
	EndCompleted EndReason = "completed"
)

// Stats holds live or final speed and accuracy figures.
type Stats struct {
	WPM      int
	Accuracy int
}

// Tier is a categorical performance rating.
type Tier int

// Performance tiers, best first.
const (
	TierTop Tier = iota
	TierHigh
	TierMid
	TierLow
	TierEncourage
)

// Message returns the end-of-session wording for the tier.
func (t Tier) Message() string {
	switch t {
	case TierTop:
		return "Outstanding! You're a typing master!"
	case TierHigh:
		return "Excellent work! Very impressive speed!"
	case TierMid:
		return "Good job! Keep practicing!"
	case TierLow:
		return "Nice effort! Practice makes perfect!"
	default:
		return "Keep going! You'll improve with practice!"
	}
}

// Results is the final-results payload of a finished session.
type Results struct {
	SessionID      string
	Difficulty     Difficulty
	Reason         EndReason
	StartedAt      time.Time
	EndedAt        time.Time
	ElapsedSeconds int
	WPM            int
	Accuracy       int
	Errors         int
	TotalTyped     int
	Tier           Tier
	Message        string
}
