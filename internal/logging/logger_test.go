package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_WhenDevelopmentEnvironment_ThenReturnsDevelopmentLogger(t *testing.T) {
	// Arrange & Act
	logger, err := NewLogger(Options{Environment: "development", Level: "debug"})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}

	// Cleanup
	_ = logger.Sync()
}

func TestNewLogger_WhenInvalidLogLevel_ThenDefaultsToInfo(t *testing.T) {
	// Arrange & Act
	logger, err := NewLogger(Options{Environment: "production", Level: "invalid-level"})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	zl := Zap(logger)
	if zl.Core().Enabled(zap.DebugLevel) {
		t.Error("expected debug level to be disabled")
	}
	if !zl.Core().Enabled(zap.InfoLevel) {
		t.Error("expected info level to be enabled")
	}
}

func TestNewLogger_WhenConsoleEncodingInProduction_ThenBuilds(t *testing.T) {
	logger, err := NewLogger(Options{Environment: "production", Level: "warn", Encoding: "console"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger.Warn("console encoded warning")
}

func TestNewLogger_WhenFileConfigured_ThenWritesEntriesToFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "api.log")
	logger, err := NewLogger(Options{Environment: "production", Level: "info", File: path})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Act
	logger.Info("log created", zap.String("log_id", "abc"))
	_ = logger.Sync()

	// Assert
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(contents), `"msg":"log created"`) {
		t.Errorf("expected message in log file, got %q", contents)
	}
	if !strings.Contains(string(contents), `"log_id":"abc"`) {
		t.Errorf("expected field in log file, got %q", contents)
	}
}

func TestNewDevelopmentLogger_WhenCalled_ThenReturnsLogger(t *testing.T) {
	logger, err := NewDevelopmentLogger()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger.Debug("test debug message", zap.String("key", "value"))
}

func TestNewProductionLogger_WhenCalled_ThenReturnsLogger(t *testing.T) {
	logger, err := NewProductionLogger()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger.Info("test info message", zap.String("key", "value"))
	logger.Error("test error message", zap.String("key", "value"))
}

func TestZapLogger_With_WhenCalledWithFields_ThenReturnsLoggerWithFields(t *testing.T) {
	// Arrange
	logger, err := NewProductionLogger()
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	// Act
	childLogger := logger.With(zap.String("request_id", "123"))

	// Assert
	if childLogger == nil {
		t.Fatal("expected child logger to be non-nil")
	}
	childLogger.Info("test message")
}

func TestZap_WhenNoOpLogger_ThenReturnsNopZapLogger(t *testing.T) {
	zl := Zap(NewNoOpLogger())

	if zl == nil {
		t.Fatal("expected non-nil zap logger")
	}
	if zl.Core().Enabled(zap.ErrorLevel) {
		t.Error("expected nop core to be disabled for every level")
	}
}

func TestNoOpLogger_AllMethods_WhenCalled_ThenDoNothing(t *testing.T) {
	// Arrange
	logger := NewNoOpLogger()

	// Act & Assert (should not panic)
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	if logger.With(zap.String("key", "value")) != logger {
		t.Error("expected With to return same logger instance")
	}
	if err := logger.Sync(); err != nil {
		t.Errorf("expected no error from Sync, got %v", err)
	}
}
