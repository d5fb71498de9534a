package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew_WithLogDir(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := New(&Config{
		Level:       LevelDebug,
		LogDir:      logDir,
		MaxLogFiles: 5,
		MaxLogAge:   24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Log directory was not created")
	}

	logPath := logger.LogPath()
	if logPath == "" {
		t.Fatal("LogPath() returned empty string")
	}
	if !strings.HasPrefix(filepath.Base(logPath), LogFilePrefix) {
		t.Errorf("log file %q should start with %q", logPath, LogFilePrefix)
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestNew_WithoutLogDirWritesNoFile(t *testing.T) {
	dir := t.TempDir()
	originalDir, _ := os.Getwd()
	_ = os.Chdir(dir)
	defer func() { _ = os.Chdir(originalDir) }()

	logger, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	defer logger.Close()

	logger.Info("nowhere")

	if logger.LogPath() != "" {
		t.Errorf("LogPath() = %q, want empty", logger.LogPath())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no files in working directory, got %d", len(entries))
	}
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	if logger == nil {
		t.Fatal("NewNoop() returned nil")
	}

	// Should not panic
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on noop logger error = %v", err)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&Config{
		Level:         LevelWarn,
		Console:       true,
		ConsoleWriter: &buf,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("debug hidden")
	logger.Info("info hidden")
	logger.Warn("warn shown")
	logger.Error("error shown")

	out := buf.String()
	if strings.Contains(out, "debug hidden") || strings.Contains(out, "info hidden") {
		t.Errorf("messages below warn should be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "warn shown") || !strings.Contains(out, "error shown") {
		t.Errorf("warn/error messages missing, got:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&Config{
		Level:         LevelInfo,
		Console:       true,
		ConsoleWriter: &buf,
		JSONFormat:    true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("removed dependency", "name", "eslint")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "removed dependency" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["name"] != "eslint" {
		t.Errorf("name = %v", entry["name"])
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&Config{Level: LevelInfo, Console: true, ConsoleWriter: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.With("root", "/tmp/project").Info("loaded manifest")

	if !strings.Contains(buf.String(), "root=/tmp/project") {
		t.Errorf("attribute missing from output: %s", buf.String())
	}
}

func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	old := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		name := filepath.Join(tmpDir, LogFilePrefix+"20240101_0000"+string(rune('a'+i))+".log")
		if err := os.WriteFile(name, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create test log file: %v", err)
		}
		_ = os.Chtimes(name, old, old.Add(time.Duration(i)*time.Second))
	}
	// Unrelated files are never touched
	keep := filepath.Join(tmpDir, "notes.log")
	_ = os.WriteFile(keep, []byte("keep"), 0644)

	config := &Config{
		Level:       LevelInfo,
		LogDir:      tmpDir,
		MaxLogFiles: 5,
	}

	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Close()

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}

	count := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), LogFilePrefix) {
			count++
		}
	}

	// The current log file counts toward the limit, so at most MaxLogFiles remain
	if count > config.MaxLogFiles {
		t.Errorf("Expected at most %d log files, got %d", config.MaxLogFiles, count)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("cleanup should not remove files without the lintkit prefix")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Level = %v, want INFO", cfg.Level)
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty (no file logging by default)", cfg.LogDir)
	}
	if cfg.MaxLogFiles != 10 {
		t.Errorf("MaxLogFiles = %d, want 10", cfg.MaxLogFiles)
	}
}
