package samples

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/typesprint/internal/model"
)

// fileSamples is the on-disk layout of a sample pack.
type fileSamples struct {
	Easy   []string `yaml:"easy"`
	Medium []string `yaml:"medium"`
	Hard   []string `yaml:"hard"`
}

// LoadFile reads a YAML sample pack and merges it over the built-in pools.
// Difficulties missing from the file keep their built-in samples.
func LoadFile(path string) (map[model.Difficulty][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only sample file.
			_ = cerr
		}
	}()

	var raw fileSamples
	if err := yaml.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode samples: %w", err)
	}

	pools := Builtin()
	for d, lines := range map[model.Difficulty][]string{
		model.Easy:   raw.Easy,
		model.Medium: raw.Medium,
		model.Hard:   raw.Hard,
	} {
		if lines == nil {
			continue
		}
		cleaned, err := cleanSamples(lines)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d, err)
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("%s: %w", d, ErrEmptyPool)
		}
		pools[d] = cleaned
	}
	return pools, nil
}

func cleanSamples(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !printableASCII(line) {
			return nil, fmt.Errorf("sample %q contains non-ASCII or control characters", line)
		}
		out = append(out, line)
	}
	return out, nil
}

// Scoring compares single bytes, so samples are limited to printable ASCII.
func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < ' ' || ch > '~' {
			return false
		}
	}
	return true
}
