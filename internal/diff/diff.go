// Package diff classifies typed input against a target text.
package diff

import "github.com/verte-zerg/typesprint/internal/model"

// Result is the classification of one typed input.
type Result struct {
	// Statuses has one entry per byte of the target.
	Statuses  []model.CharStatus
	Correct   int
	Incorrect int
	// Typed counts every typed byte, including overflow past the target.
	Typed int
}

// Classify compares typed against target byte by byte.
// Typed bytes beyond the target are counted in Typed but not classified.
func Classify(target, typed string) Result {
	res := Result{
		Statuses: make([]model.CharStatus, len(target)),
		Typed:    len(typed),
	}
	for i := 0; i < len(target); i++ {
		switch {
		case i < len(typed):
			if typed[i] == target[i] {
				res.Statuses[i] = model.Correct
				res.Correct++
			} else {
				res.Statuses[i] = model.Incorrect
				res.Incorrect++
			}
		case i == len(typed):
			res.Statuses[i] = model.Current
		default:
			res.Statuses[i] = model.Untouched
		}
	}
	return res
}

// Complete reports whether the classified input matches a target of the given length exactly.
func (r Result) Complete(targetLen int) bool {
	return targetLen > 0 && r.Incorrect == 0 && r.Typed == targetLen && r.Correct == targetLen
}
