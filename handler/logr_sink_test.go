package handler_test

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/willibrandon/glog"
	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/handler"
	"github.com/willibrandon/glog/sinks"
)

func TestLogrSink(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := glog.New(
		glog.WithSink(memSink),
		glog.WithLevel(core.DebugLevel),
	)

	logrLogger := logr.New(handler.NewLogrSink(logger))

	logrLogger.V(0).Info("info message", "key", "value")
	logrLogger.V(1).Info("debug message", "count", 42)
	logrLogger.V(2).Info("verbose message", "enabled", true)
	logrLogger.Error(errors.New("test error"), "error occurred", "operation", "test")

	events := memSink.Events()
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}

	expectedLevels := []core.Level{
		core.InfoLevel,
		core.DebugLevel,
		core.DebugLevel,
		core.ErrorLevel,
	}
	for i, event := range events {
		if event.Level != expectedLevels[i] {
			t.Errorf("Event %d: expected level %v, got %v", i, expectedLevels[i], event.Level)
		}
	}

	expectedMessages := []string{
		"info message key=value",
		"debug message count=42",
		"verbose message enabled=true",
		"error occurred operation=test error=test error",
	}
	for i, event := range events {
		if event.Message != expectedMessages[i] {
			t.Errorf("Event %d: expected %q, got %q", i, expectedMessages[i], event.Message)
		}
	}
}

func TestLogrSinkCallerAttribution(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logrLogger := logr.New(handler.NewLogrSink(glog.New(glog.WithSink(memSink))))

	logrLogger.Info("attributed")

	event := memSink.LastEvent()
	if event.File != "logr_sink_test.go" {
		t.Errorf("Expected file logr_sink_test.go, got %q", event.File)
	}
	if event.Line == 0 {
		t.Error("Expected a nonzero line")
	}
}

func TestLogrSinkWithValues(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := glog.New(glog.WithSink(memSink))

	logrLogger := logr.New(handler.NewLogrSink(logger)).WithValues(
		"service", "test-service",
		"version", "1.0.0",
	)

	logrLogger.Info("test message", "request_id", "123")

	events := memSink.Events()
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	expected := "test message service=test-service version=1.0.0 request_id=123"
	if events[0].Message != expected {
		t.Errorf("Expected %q, got %q", expected, events[0].Message)
	}
}

func TestLogrSinkWithName(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := glog.New(glog.WithSink(memSink))

	logrLogger := logr.New(handler.NewLogrSink(logger)).
		WithName("controller").
		WithName("reconciler")

	logrLogger.Info("reconciling", "resource", "pod/test")

	events := memSink.Events()
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	expected := "reconciling logger=controller.reconciler resource=pod/test"
	if events[0].Message != expected {
		t.Errorf("Expected %q, got %q", expected, events[0].Message)
	}
}

func TestLogrSinkEnabled(t *testing.T) {
	logger := glog.New(glog.WithSink(sinks.NewMemorySink()))
	logrLogger := logr.New(handler.NewLogrSink(logger))

	testCases := []struct {
		vLevel  int
		enabled bool
	}{
		{0, true},
		{1, false},
		{2, false},
	}

	for _, tc := range testCases {
		if logrLogger.V(tc.vLevel).Enabled() != tc.enabled {
			t.Errorf("V(%d).Enabled(): expected %v", tc.vLevel, tc.enabled)
		}
	}
}

func TestLogrSinkOddKeyValues(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := glog.New(glog.WithSink(memSink))
	logrLogger := logr.New(handler.NewLogrSink(logger))

	logrLogger.Info("test", "key1", "value1", "key2")

	events := memSink.Events()
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	expected := "test key1=value1 key2=<nil>"
	if events[0].Message != expected {
		t.Errorf("Expected %q, got %q", expected, events[0].Message)
	}
}

func TestNewLogrLogger(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logrLogger := glog.NewLogrLogger(
		glog.WithSink(memSink),
		glog.WithLevel(core.InfoLevel),
	)

	logrLogger.Info("test message", "key", "value")

	events := memSink.Events()
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].Message != "test message key=value" {
		t.Errorf("Unexpected message %q", events[0].Message)
	}
}
