package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("warn", &buf)
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}

	log.Info("hidden")
	log.Warn("shown", zap.String("feed", "lego"))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "lego") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewWithWriter_BadLevel(t *testing.T) {
	if _, err := NewWithWriter("loud", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
