package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", &buf, false)
	log.Debug().Msg("hidden")
	log.Info().Str("session", "abc").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "session=abc") {
		t.Fatalf("expected info line with field, got %q", out)
	}
}

func TestSetupDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("bogus", &buf, false)
	log.Info().Msg("started")
	log.Warn().Msg("slow tick")
	out := buf.String()
	if strings.Contains(out, "started") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "slow tick") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestSetupNilWriter(t *testing.T) {
	log := Setup("debug", nil, false)
	log.Error().Msg("dropped")
}
