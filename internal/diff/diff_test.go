package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/typesprint/internal/model"
)

func TestClassify(t *testing.T) {
	c, x, cur, u := model.Correct, model.Incorrect, model.Current, model.Untouched
	tests := []struct {
		name      string
		target    string
		typed     string
		want      []model.CharStatus
		correct   int
		incorrect int
		complete  bool
	}{
		{"exact match", "cat", "cat", []model.CharStatus{c, c, c}, 3, 0, true},
		{"one wrong", "cat", "cap", []model.CharStatus{c, c, x}, 2, 1, false},
		{"prefix", "hello", "he", []model.CharStatus{c, c, cur, u, u}, 2, 0, false},
		{"nothing typed", "abc", "", []model.CharStatus{cur, u, u}, 0, 0, false},
		{"case sensitive", "Abc", "abc", []model.CharStatus{x, c, c}, 2, 1, false},
		{"whitespace not collapsed", "a b", "a  ", []model.CharStatus{c, c, x}, 2, 1, false},
		{"overflow", "ab", "abcd", []model.CharStatus{c, c}, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.target, tt.typed)
			assert.Equal(t, tt.want, res.Statuses)
			assert.Equal(t, tt.correct, res.Correct)
			assert.Equal(t, tt.incorrect, res.Incorrect)
			assert.Equal(t, len(tt.typed), res.Typed)
			assert.Equal(t, tt.complete, res.Complete(len(tt.target)))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	target := "The quick brown fox"
	typed := "The quack"
	first := Classify(target, typed)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify(target, typed))
	}
}

func TestClassifyPrefixesAreCorrect(t *testing.T) {
	target := "She sells sea shells."
	for n := 0; n <= len(target); n++ {
		res := Classify(target, target[:n])
		for i := 0; i < n; i++ {
			if res.Statuses[i] != model.Correct {
				t.Fatalf("prefix %d: index %d is %s, want correct", n, i, res.Statuses[i])
			}
		}
		if n < len(target) && res.Statuses[n] != model.Current {
			t.Fatalf("prefix %d: index %d is %s, want current", n, n, res.Statuses[n])
		}
		if res.Correct > res.Typed {
			t.Fatalf("prefix %d: correct %d exceeds typed %d", n, res.Correct, res.Typed)
		}
	}
}
