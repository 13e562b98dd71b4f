package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNew_WritesDailyFile(t *testing.T) {
	root := t.TempDir()
	log, err := New(root, false, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debugw("probe", "k", "v")
	_ = log.Sync()

	name := filepath.Join(root, "logs", time.Now().Format("2006-01-02")+".log")
	if _, err := os.Stat(name); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if Level().Level() != zap.DebugLevel {
		t.Fatalf("level = %v, want debug", Level().Level())
	}
	if !zap.L().Core().Enabled(zap.DebugLevel) {
		t.Fatalf("global logger not replaced")
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	if _, err := New(t.TempDir(), false, "chatty"); err != nil {
		t.Fatalf("New: %v", err)
	}
	if Level().Level() != zap.InfoLevel {
		t.Fatalf("level = %v, want info", Level().Level())
	}
}
