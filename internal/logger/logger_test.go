package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	l, err := New("warn", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info must be disabled at warn")
	}
	if !l.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error must be enabled at warn")
	}

	d, err := New("debug", true)
	if err != nil {
		t.Fatalf("New dev: %v", err)
	}
	if !d.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug must be enabled")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Fatalf("want error for unknown level")
	}
}
