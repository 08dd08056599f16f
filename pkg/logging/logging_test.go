package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/graph-vis/pkg/logging"
)

func TestNewWithWriter_Format(t *testing.T) {
	tests := []struct {
		name   string
		format logging.Format
		check  func(t *testing.T, out string)
	}{
		{
			"json",
			logging.FormatJSON,
			func(t *testing.T, out string) {
				var entry map[string]any
				if err := json.Unmarshal([]byte(out), &entry); err != nil {
					t.Fatalf("output is not JSON: %v", err)
				}
				if entry["msg"] != "graph loaded" {
					t.Errorf("msg = %v, want graph loaded", entry["msg"])
				}
			},
		},
		{
			"text",
			logging.FormatText,
			func(t *testing.T, out string) {
				if !strings.Contains(out, `msg="graph loaded"`) {
					t.Errorf("text output missing msg: %q", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: tt.format}, &buf)
			logger.Info("graph loaded", "nodes", 3)
			tt.check(t, buf.String())
		})
	}
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message not logged")
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("verbose"), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.want {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	cfg := &logging.Config{Level: "loud"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() should reject unknown level")
	}

	cfg = &logging.Config{Format: "xml"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() should reject unknown format")
	}
}

func TestConfig_AddSource(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "WARN")
	t.Setenv("TEST_LOG_ADD_SOURCE", "true")

	cfg := &logging.Config{Format: logging.FormatJSON}
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT", AddSource: "TEST_LOG_ADD_SOURCE"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != logging.LevelWarn || !cfg.AddSource {
		t.Fatalf("cfg = %+v, want warn with source", cfg)
	}

	var buf bytes.Buffer
	logging.NewWithWriter(cfg, &buf).Warn("artifact missing")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid record %q: %v", buf.String(), err)
	}
	if _, ok := record[slog.SourceKey]; !ok {
		t.Errorf("record missing %q: %v", slog.SourceKey, record)
	}
}
