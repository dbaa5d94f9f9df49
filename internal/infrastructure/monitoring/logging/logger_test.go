package logging

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldConstructors(t *testing.T) {
	if f := String("k", "v"); f.Key != "k" || f.Value != "v" {
		t.Errorf("String field = %+v", f)
	}
	if f := Duration("d", time.Second); f.Value != time.Second {
		t.Errorf("Duration field = %+v", f)
	}
	if f := Err(nil); f.Value != "<nil>" {
		t.Errorf("Err(nil) field = %+v", f)
	}
}

func TestZapLoggerEmitsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core)

	log.Info("analysis complete",
		String("correlation_id", "abc"),
		Float64("point", 9000000),
		Bool("remote", false),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Message != "analysis complete" {
		t.Errorf("message = %q", e.Message)
	}
	fields := e.ContextMap()
	if fields["correlation_id"] != "abc" {
		t.Errorf("correlation_id = %v", fields["correlation_id"])
	}
	if fields["point"] != float64(9000000) {
		t.Errorf("point = %v", fields["point"])
	}
}

func TestWithAndNamedDoNotMutateParent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	parent := NewLoggerFromCore(core)

	child := parent.With(String("component", "gateway")).Named("gateway")
	child.Warn("fallback to local")
	parent.Info("plain")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if _, ok := entries[1].ContextMap()["component"]; ok {
		t.Error("parent logger inherited child field")
	}
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	SetDefault(nil) // no-op
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}

	nop := NewNopLogger()
	SetDefault(nop)
	if Default() != nop {
		t.Error("SetDefault did not replace default logger")
	}
}

func TestNewLoggerDefaults(t *testing.T) {
	log, err := NewLogger(LogConfig{})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	log.Debug("should be filtered at info level")
}
