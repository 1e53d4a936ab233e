package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNopBeforeInit(t *testing.T) {
	// Logging through the package before Init must not panic.
	Info("ignored")
	Sugar.Debugf("ignored %d", 1)
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"error message"},
			excluded: []string{"warn message", "info message", "debug message"},
		},
		{
			level:    "warn",
			expected: []string{"error message", "warn message"},
			excluded: []string{"info message", "debug message"},
		},
		{
			level:    "info",
			expected: []string{"error message", "warn message", "info message"},
			excluded: []string{"debug message"},
		},
		{
			level:    "debug",
			expected: []string{"error message", "warn message", "info message", "debug message"},
		},
		{
			level:    "bogus",
			expected: []string{"info message"},
			excluded: []string{"debug message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var out bytes.Buffer
			if err := InitWithOptions(Options{Level: tt.level, Console: &out}); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			// Log at all levels
			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			logContent := out.String()

			// Check expected levels are present
			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %q in log output", exp)
				}
			}

			// Check excluded levels are not present
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %q in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestFileOutputIsJSON(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "stairgen.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithOptions(Options{Level: "info", File: cfg}); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("stairs").Info("generated", zap.Int("steps", 6), zap.String("kind", "straight"))
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	line := strings.TrimSpace(string(content))
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, line)
	}
	if entry["msg"] != "generated" {
		t.Errorf("expected msg 'generated', got %v", entry["msg"])
	}
	if entry["logger"] != "stairs" {
		t.Errorf("expected logger 'stairs', got %v", entry["logger"])
	}
	if entry["steps"] != float64(6) {
		t.Errorf("expected steps 6, got %v", entry["steps"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", entry["level"])
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 14 {
		t.Errorf("expected MaxAgeDays 14, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
