package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WarnLevel)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d: %q", len(lines), buf.String())
	}
}

func TestFieldsAndWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel).With(F("component", "scene"))

	l.Info("graph loaded", F("nodes", 12))

	var e struct {
		Level  string         `json:"level"`
		Msg    string         `json:"msg"`
		Fields map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if e.Level != "INFO" || e.Msg != "graph loaded" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Fields["component"] != "scene" {
		t.Errorf("preset field missing: %v", e.Fields)
	}
	if e.Fields["nodes"] != float64(12) {
		t.Errorf("call field missing: %v", e.Fields)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != DebugLevel {
		t.Error("debug not parsed")
	}
	if ParseLevel("nonsense") != InfoLevel {
		t.Error("unknown level should default to info")
	}
}
