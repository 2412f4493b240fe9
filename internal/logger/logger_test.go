package logger

import "testing"

func TestNewDefaultsToStderr(t *testing.T) {
	for _, cfg := range []Config{{}, {JSON: true, Debug: true}} {
		log, err := New(cfg)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", cfg, err)
		}
		if got := log.Core().Enabled(-1); got != cfg.Debug {
			t.Fatalf("debug enabled = %v, want %v", got, cfg.Debug)
		}
	}
}

func TestNewRejectsBadOutput(t *testing.T) {
	if _, err := New(Config{Output: "unknown-scheme://nowhere"}); err == nil {
		t.Fatal("expected error for unsupported output sink")
	}
}
