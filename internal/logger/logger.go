package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Level orders log messages by severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// levelNames and consolePrefixes are indexed by Level
var (
	levelNames      = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}
	consolePrefixes = [...]string{"[DEBUG] ", "", "⚠️  ", "❌ "}
)

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Logger mirrors messages to the console and to a per-run log file.
// The file gets every level; the console gets INFO and above, DEBUG too
// when verbose.
type Logger struct {
	console *log.Logger
	file    *log.Logger
	logFile *os.File
	verbose bool
}

var globalLogger *Logger

// Init opens (or appends to) logFilePath and installs the global logger
func Init(consoleOutput io.Writer, logFilePath string, verbose bool) error {
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	globalLogger = &Logger{
		console: log.New(consoleOutput, "", 0),
		file:    log.New(logFile, "", log.LstdFlags),
		logFile: logFile,
		verbose: verbose,
	}
	globalLogger.file.Printf("---- run started (verbose=%t) ----", verbose)

	return nil
}

// Close closes the log file and detaches the global logger
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
	}
	globalLogger = nil
}

func Debug(format string, args ...interface{}) { emit(LevelDebug, format, args...) }
func Info(format string, args ...interface{})  { emit(LevelInfo, format, args...) }
func Warn(format string, args ...interface{})  { emit(LevelWarn, format, args...) }
func Error(format string, args ...interface{}) { emit(LevelError, format, args...) }

// emit routes a message to the global logger, or to stdout before Init.
// DEBUG is dropped entirely when there is no logger.
func emit(level Level, format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(level, fmt.Sprintf(format, args...))
		return
	}
	switch level {
	case LevelDebug:
	case LevelInfo:
		fmt.Printf(format+"\n", args...)
	default:
		fmt.Printf(level.String()+": "+format+"\n", args...)
	}
}

func (l *Logger) log(level Level, message string) {
	l.file.Printf("[%s] %s", level, message)

	if level == LevelDebug && !l.verbose {
		return
	}
	l.console.Printf("%s%s", consolePrefixes[level], message)
}

// InfoClean writes to the console only, without prefix.
// Query answers go through here so the log file keeps just the run history.
func InfoClean(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.console.Printf(format, args...)
}

// LogLoadError records a failed table load in the log file only.
// The caller decides what, if anything, to show on the console.
func LogLoadError(source string, err error, stage string) {
	if globalLogger == nil {
		return
	}
	globalLogger.file.Printf("[LOAD_ERROR] Source: %s, Stage: %s, Error: %v", source, stage, err)
}

// GetLogFilePath returns the path of the open log file, or ""
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

// IsVerbose reports whether DEBUG reaches the console
func IsVerbose() bool {
	return globalLogger != nil && globalLogger.verbose
}
