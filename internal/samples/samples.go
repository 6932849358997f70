// Package samples holds the categorized sample texts and picks one per attempt.
package samples

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/typesprint/internal/model"
)

// ErrEmptyPool is returned when a difficulty has no usable samples.
var ErrEmptyPool = errors.New("sample pool is empty")

// Source is the random source used for sample selection.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Bank maps each difficulty to a fixed pool of samples.
type Bank struct {
	pools map[model.Difficulty][]string
	rnd   Source
}

// New validates and copies the pools. Every difficulty needs at least one non-empty sample.
func New(pools map[model.Difficulty][]string, src Source) (*Bank, error) {
	if src == nil {
		src = NewSource(0)
	}
	copied := make(map[model.Difficulty][]string, len(model.Difficulties))
	for _, d := range model.Difficulties {
		pool := pools[d]
		if len(pool) == 0 {
			return nil, fmt.Errorf("%s: %w", d, ErrEmptyPool)
		}
		for i, text := range pool {
			if text == "" {
				return nil, fmt.Errorf("%s sample %d is empty", d, i)
			}
		}
		copied[d] = append([]string(nil), pool...)
	}
	return &Bank{pools: copied, rnd: src}, nil
}

// Default returns a bank over the built-in samples.
func Default(src Source) *Bank {
	bank, err := New(builtin, src)
	if err != nil {
		panic(fmt.Sprintf("built-in samples: %v", err))
	}
	return bank
}

// Pick draws one sample uniformly from the pool for d.
func (b *Bank) Pick(d model.Difficulty) (string, error) {
	pool := b.pools[d]
	if len(pool) == 0 {
		return "", fmt.Errorf("%s: %w", d, ErrEmptyPool)
	}
	return pool[b.rnd.Intn(len(pool))], nil
}

// Pool returns a copy of the samples configured for d.
func (b *Bank) Pool(d model.Difficulty) []string {
	return append([]string(nil), b.pools[d]...)
}

// Builtin returns a copy of the built-in pools.
func Builtin() map[model.Difficulty][]string {
	out := make(map[model.Difficulty][]string, len(builtin))
	for d, pool := range builtin {
		out[d] = append([]string(nil), pool...)
	}
	return out
}

var builtin = map[model.Difficulty][]string{
	model.Easy: {
		"The quick brown fox jumps over the lazy dog near the old barn.",
		"She sells sea shells by the sea shore on sunny days.",
		"A journey of a thousand miles begins with a single step forward.",
		"Every cloud has a silver lining waiting to be discovered.",
		"Time flies like an arrow while fruit flies like a banana.",
	},
	model.Medium: {
		"Technology has revolutionized the way we communicate and interact with each other in modern society.",
		"Practice makes perfect, but consistent effort and dedication lead to extraordinary achievements over time.",
		"The beautiful symphony orchestra performed magnificently under the conductor's expert guidance last night.",
		"Understanding complex algorithms requires patience, logical thinking, and continuous problem-solving practice.",
		"Creative writing allows imagination to flourish while developing unique storytelling capabilities and expression.",
	},
	model.Hard: {
		"Simultaneously implementing sophisticated methodologies whilst maintaining impeccable standards exemplifies extraordinary professionalism.",
		"Quantum mechanics revolutionized theoretical physics by introducing probabilistic interpretations of subatomic particle behavior patterns.",
		"Cryptocurrency blockchain technology decentralizes financial transactions through cryptographic verification and distributed ledger systems.",
		"Neuroplasticity demonstrates the brain's remarkable adaptability through continuous synaptic reorganization and cognitive development processes.",
		"Entrepreneurship necessitates innovative problem-solving capabilities, calculated risk-taking, and unwavering determination despite inevitable obstacles.",
	},
}
