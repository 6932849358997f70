// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"

	"github.com/verte-zerg/typesprint/internal/model"
)

// ElapsedSeconds returns the seconds spent in a session, never less than one.
func ElapsedSeconds(remainingSeconds int) int {
	elapsed := model.SessionSeconds - remainingSeconds
	if elapsed < 1 {
		return 1
	}
	return elapsed
}

// Compute derives WPM and accuracy from character counts and the countdown.
func Compute(correct, total, remainingSeconds int) model.Stats {
	return model.Stats{
		WPM:      WPM(correct, ElapsedSeconds(remainingSeconds)),
		Accuracy: Accuracy(correct, total),
	}
}

// WPM returns rounded words per minute, or 0 when the figure is undefined.
func WPM(correct, elapsedSeconds int) int {
	if correct <= 0 || elapsedSeconds <= 0 {
		return 0
	}
	words := float64(correct) / model.CharsPerWord
	wpm := math.Round(words / float64(elapsedSeconds) * 60)
	if math.IsNaN(wpm) || math.IsInf(wpm, 0) || wpm <= 0 {
		return 0
	}
	return int(wpm)
}

// Accuracy returns the rounded percentage of typed characters that were correct.
// It is 100 before anything is typed.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 100
	}
	acc := int(math.Round(float64(correct) / float64(total) * 100))
	if acc < 0 {
		return 0
	}
	if acc > 100 {
		return 100
	}
	return acc
}

// TierFor rates a final result. Thresholds are checked best first.
func TierFor(wpm, accuracy int) model.Tier {
	switch {
	case wpm >= 80 && accuracy >= 95:
		return model.TierTop
	case wpm >= 60 && accuracy >= 90:
		return model.TierHigh
	case wpm >= 40 && accuracy >= 85:
		return model.TierMid
	case wpm >= 20:
		return model.TierLow
	default:
		return model.TierEncourage
	}
}
