package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("HistoryStore", "history loaded", map[string]interface{}{"entries": 3})

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if record["component"] != "HistoryStore" {
		t.Errorf("component = %v, want HistoryStore", record["component"])
	}
	if record["message"] != "history loaded" {
		t.Errorf("message = %v, want history loaded", record["message"])
	}
	if record["entries"] != float64(3) {
		t.Errorf("entries = %v, want 3", record["entries"])
	}
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("HistoryStore", errors.New("disk full"), nil)

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if record["error"] != "disk full" {
		t.Errorf("error = %v, want disk full", record["error"])
	}
	if record["level"] != "error" {
		t.Errorf("level = %v, want error", record["level"])
	}
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Calculator", "dropped", nil)
	log.Info("Calculator", "dropped", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got %q", buf.String())
	}

	log.Warning("Calculator", "kept", nil)
	if buf.Len() == 0 {
		t.Fatal("expected warning to be written")
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		logLevel string
		debug    string
		want     zerolog.Level
	}{
		{"debug", "", zerolog.DebugLevel},
		{"INFO", "", zerolog.InfoLevel},
		{"warn", "", zerolog.WarnLevel},
		{"error", "", zerolog.ErrorLevel},
		{"", "1", zerolog.DebugLevel},
		{"", "", zerolog.InfoLevel},
		{"verbose", "", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.logLevel)
		t.Setenv("DEBUG", tt.debug)
		if got := LevelFromEnv(); got != tt.want {
			t.Errorf("LOG_LEVEL=%q DEBUG=%q: got %v, want %v", tt.logLevel, tt.debug, got, tt.want)
		}
	}
}
