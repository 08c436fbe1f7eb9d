package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingOpensAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slash.log")
	flagLogPath = path
	t.Cleanup(func() {
		closeLogFile()
		flagLogPath = ""
	})

	if err := setupLogging(nil, nil); err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	if logFile == nil {
		t.Fatal("setupLogging() should keep the log file handle")
	}
	f := logFile

	if err := closeLogging(nil, nil); err != nil {
		t.Fatalf("closeLogging() error = %v", err)
	}
	if logFile != nil {
		t.Error("closeLogging() should clear the log file handle")
	}
	if err := f.Close(); err == nil {
		t.Error("log file should already be closed")
	}

	// A second close is a no-op.
	if err := closeLogging(nil, nil); err != nil {
		t.Errorf("second closeLogging() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file should exist: %v", err)
	}
}

func TestSetupLoggingWithoutPath(t *testing.T) {
	flagLogPath = ""
	if err := setupLogging(nil, nil); err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	if logFile != nil {
		t.Error("no log file should be opened without --log")
	}
	if err := closeLogging(nil, nil); err != nil {
		t.Errorf("closeLogging() error = %v", err)
	}
}
