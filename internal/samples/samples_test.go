package samples

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typesprint/internal/model"
)

type fixedSource int

func (f fixedSource) Intn(n int) int {
	return int(f) % n
}

func TestPickReturnsSampleFromPool(t *testing.T) {
	bank := Default(NewSource(42))
	for _, d := range model.Difficulties {
		pool := bank.Pool(d)
		for i := 0; i < 50; i++ {
			text, err := bank.Pick(d)
			require.NoError(t, err)
			assert.NotEmpty(t, text)
			assert.Contains(t, pool, text)
		}
	}
}

func TestPickIsDeterministicForSeed(t *testing.T) {
	a := Default(NewSource(7))
	b := Default(NewSource(7))
	for i := 0; i < 20; i++ {
		ta, err := a.Pick(model.Medium)
		require.NoError(t, err)
		tb, err := b.Pick(model.Medium)
		require.NoError(t, err)
		assert.Equal(t, ta, tb)
	}
}

func TestPickUsesSource(t *testing.T) {
	bank := Default(fixedSource(2))
	text, err := bank.Pick(model.Hard)
	require.NoError(t, err)
	assert.Equal(t, Builtin()[model.Hard][2], text)
}

func TestNewRejectsEmptyPool(t *testing.T) {
	pools := Builtin()
	pools[model.Medium] = nil
	_, err := New(pools, fixedSource(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyPool))

	pools = Builtin()
	pools[model.Easy] = []string{""}
	_, err = New(pools, fixedSource(0))
	require.Error(t, err)
}

func TestNewCopiesPools(t *testing.T) {
	pools := map[model.Difficulty][]string{
		model.Easy:   {"a"},
		model.Medium: {"b"},
		model.Hard:   {"c"},
	}
	bank, err := New(pools, fixedSource(0))
	require.NoError(t, err)
	pools[model.Easy][0] = "mutated"

	text, err := bank.Pick(model.Easy)
	require.NoError(t, err)
	assert.Equal(t, "a", text)
}

func TestPickUnknownDifficulty(t *testing.T) {
	bank := Default(fixedSource(0))
	_, err := bank.Pick(model.Difficulty("insane"))
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestLoadFileMergesOverBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.yaml")
	content := "easy:\n  - \"  cat  \"\n  - \"\"\n  - dog\nhard: [\"zebra crossing\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pools, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, pools[model.Easy])
	assert.Equal(t, []string{"zebra crossing"}, pools[model.Hard])
	assert.Equal(t, Builtin()[model.Medium], pools[model.Medium])
}

func TestLoadFileRejectsNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.yaml")
	require.NoError(t, os.WriteFile(path, []byte("easy: [\"résumé\"]\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileRejectsBlankPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.yaml")
	require.NoError(t, os.WriteFile(path, []byte("medium: [\"  \"]\n"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrEmptyPool)
}
