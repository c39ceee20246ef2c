package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestStdLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{App: "shelter-api", Out: &buf})

	log.Info("server started", map[string]any{"port": 8080, "driver": "memory"})

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " info server started ") {
		t.Fatalf("expected level and msg in line, got %q", line)
	}
	// keys extra ordenadas: app driver port
	if !strings.HasSuffix(line, "app=shelter-api driver=memory port=8080") {
		t.Fatalf("expected sorted fields at end, got %q", line)
	}
}

func TestStdLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Format: FormatJSON, Out: &buf})

	log.Warn("slow query", map[string]any{"ms": 1200})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["msg"] != "slow query" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["ms"] != float64(1200) {
		t.Fatalf("expected ms field, got %v", entry["ms"])
	}
	if entry["ts"] == nil {
		t.Fatalf("expected timestamp")
	}
}

func TestStdLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Out: &buf})

	log.Debug("noise", nil)
	log.Info("noise", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected debug/info suppressed, got %q", buf.String())
	}

	log.Error("boom", nil)
	if !strings.Contains(buf.String(), " error boom") {
		t.Fatalf("expected error logged, got %q", buf.String())
	}
}

func TestStdLogger_WithMergesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Out: &buf})

	child := log.With(map[string]any{"request_id": "r1"})
	child.Info("handled", map[string]any{"status": 200})

	line := buf.String()
	if !strings.Contains(line, "request_id=r1") || !strings.Contains(line, "status=200") {
		t.Fatalf("expected merged fields, got %q", line)
	}

	// el padre no hereda los campos del hijo
	buf.Reset()
	log.Info("handled", nil)
	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("expected parent without child fields, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", Debug},
		{"info", Info},
		{"", Info},
		{"WARN", Warn},
		{"warning", Warn},
		{"error", Error},
		{"whatever", Info},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Fatalf("expected json format")
	}
	if ParseFormat("text") != FormatText || ParseFormat("") != FormatText {
		t.Fatalf("expected text as default")
	}
}
