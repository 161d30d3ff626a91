package logger

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func resetOnce(t *testing.T) {
	t.Helper()
	once = sync.Once{}
	t.Cleanup(func() { once = sync.Once{} })
}

func TestInit_JSONWithService(t *testing.T) {
	resetOnce(t)

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Service: "voting-api", Output: &buf})
	log.Info().Str("candidate_id", "c1").Msg("vote recorded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "voting-api" {
		t.Errorf("expected service field, got %v", entry["service"])
	}
	if entry["message"] != "vote recorded" {
		t.Errorf("unexpected message: %v", entry["message"])
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	resetOnce(t)

	var first, second bytes.Buffer
	Init(Options{Output: &first, Service: "first"})
	log := Init(Options{Output: &second, Service: "second"})
	log.Info().Msg("hello")

	if second.Len() != 0 {
		t.Fatalf("second Init must not replace the output, got %q", second.String())
	}
	var entry map[string]any
	if err := json.Unmarshal(first.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON on first writer: %v", err)
	}
	if entry["service"] != "first" {
		t.Errorf("expected service first, got %v", entry["service"])
	}
}
