package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.Debug("hidden")
	log.Info("search finished", "term", "Acme", "organizations", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, "search finished") || !strings.Contains(out, "term=Acme") {
		t.Fatalf("expected key/value line, got %s", out)
	}
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New("chatty", &buf)

	log.Info("not shown")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "not shown") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %s", out)
	}
}
