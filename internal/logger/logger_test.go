package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initTestLogger(t *testing.T, verbose bool) (*bytes.Buffer, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, verbose); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(Close)
	return consoleBuffer, logPath
}

func readLog(t *testing.T, logPath string) string {
	t.Helper()
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLoggerInit(t *testing.T) {
	consoleBuffer, logPath := initTestLogger(t, false)

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	Info("Loaded %d versions", 54)
	if !strings.Contains(consoleBuffer.String(), "Loaded 54 versions") {
		t.Errorf("Console output missing info message: %s", consoleBuffer.String())
	}

	logStr := readLog(t, logPath)
	if !strings.Contains(logStr, "[INFO] Loaded 54 versions") {
		t.Errorf("Log file missing info line: %s", logStr)
	}
}

func TestLoggerLevels(t *testing.T) {
	consoleBuffer, logPath := initTestLogger(t, false)

	Debug("Debug message")
	Info("Info message")
	Warn("Warn message")
	Error("Error message")

	logStr := readLog(t, logPath)
	for _, level := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(logStr, level) {
			t.Errorf("Log file missing %s level", level)
		}
	}

	consoleStr := consoleBuffer.String()
	if strings.Contains(consoleStr, "Debug message") {
		t.Error("Console should not show DEBUG when verbose=false")
	}
	if !strings.Contains(consoleStr, "Warn message") || !strings.Contains(consoleStr, "Error message") {
		t.Errorf("Console missing warn/error output: %s", consoleStr)
	}
}

func TestLoggerVerbose(t *testing.T) {
	consoleBuffer, _ := initTestLogger(t, true)

	Debug("Debug message")

	consoleStr := consoleBuffer.String()
	if !strings.Contains(consoleStr, "[DEBUG] Debug message") {
		t.Errorf("Console should show DEBUG when verbose=true, got: %s", consoleStr)
	}
	if !IsVerbose() {
		t.Error("IsVerbose() should return true")
	}
}

func TestLogLoadError(t *testing.T) {
	consoleBuffer, logPath := initTestLogger(t, false)

	LogLoadError("matrix.xlsx", errors.New("sheet row 20 is blank"), "table")

	logStr := readLog(t, logPath)
	if !strings.Contains(logStr, "[LOAD_ERROR]") {
		t.Error("Log file missing LOAD_ERROR marker")
	}
	if !strings.Contains(logStr, "matrix.xlsx") || !strings.Contains(logStr, "Stage: table") {
		t.Errorf("Log file missing load error details: %s", logStr)
	}

	if strings.Contains(consoleBuffer.String(), "[LOAD_ERROR]") {
		t.Error("Console should not show detailed load errors")
	}
}

func TestInfoCleanSkipsFile(t *testing.T) {
	consoleBuffer, logPath := initTestLogger(t, false)

	InfoClean("Yes: version %s is compatible with %s", "V1593", "SafetyNet")

	if !strings.Contains(consoleBuffer.String(), "V1593") {
		t.Error("Console missing InfoClean output")
	}
	if strings.Contains(readLog(t, logPath), "V1593") {
		t.Error("InfoClean output should not reach the log file")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("Level.String() = %s, expected %s", result, tt.expected)
		}
	}
}

func TestGetLogFilePath(t *testing.T) {
	_, logPath := initTestLogger(t, false)

	if retrieved := GetLogFilePath(); retrieved != logPath {
		t.Errorf("GetLogFilePath() = %s, expected %s", retrieved, logPath)
	}
}

func TestCloseDetaches(t *testing.T) {
	initTestLogger(t, true)
	Close()

	if IsVerbose() {
		t.Error("IsVerbose() should be false after Close")
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath() should be empty after Close")
	}
}
