package log

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prior := SetLogger(zap.New(core))
	defer SetLogger(prior)

	Printf("inserted %d strings", 3)
	Warn("odd", zap.Int("order", 7))
	Debug("quiet")

	if logs.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", logs.Len())
	}
	if got := logs.All()[0].Message; got != "inserted 3 strings" {
		t.Errorf("Printf message = %q", got)
	}
	if got := logs.FilterField(zap.Int("order", 7)).Len(); got != 1 {
		t.Errorf("expected one entry carrying the order field, got %d", got)
	}
}

func TestCallerIsCallSite(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prior := SetLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	defer SetLogger(prior)

	Info("from the test")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	caller := logs.All()[0].Caller
	if !caller.Defined || !strings.HasSuffix(caller.File, "woody_test.go") {
		t.Errorf("caller = %v, want woody_test.go", caller)
	}
}

func TestDefaultLoggerSkipsWrappers(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	// the package logger's options, applied to an observable core.
	wrapped := logger.WithOptions(zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))
	prior := SetLogger(wrapped)
	defer SetLogger(prior)

	Warn("from the test")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if file := logs.All()[0].Caller.File; !strings.HasSuffix(file, "woody_test.go") {
		t.Errorf("caller file = %q, want woody_test.go", file)
	}
}
