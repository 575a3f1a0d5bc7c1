package sinks

import (
	"sync"
	"testing"

	"github.com/willibrandon/glog/core"
)

func TestMemorySinkStoresEvents(t *testing.T) {
	sink := NewMemorySink()

	sink.Emit(testEvent(core.InfoLevel, "first"))
	sink.Emit(testEvent(core.ErrorLevel, "second"))

	if sink.Count() != 2 {
		t.Fatalf("Expected 2 events, got %d", sink.Count())
	}

	events := sink.Events()
	if events[0].Message != "first" || events[1].Message != "second" {
		t.Errorf("Expected events in emission order, got %q then %q",
			events[0].Message, events[1].Message)
	}
}

func TestMemorySinkCopiesOnEmit(t *testing.T) {
	sink := NewMemorySink()

	event := testEvent(core.InfoLevel, "original")
	sink.Emit(event)
	event.Message = "mutated"

	if got := sink.LastEvent().Message; got != "original" {
		t.Errorf("Expected stored event to be unaffected by mutation, got %q", got)
	}
}

func TestMemorySinkClear(t *testing.T) {
	sink := NewMemorySink()
	sink.Emit(testEvent(core.InfoLevel, "x"))

	sink.Clear()

	if sink.Count() != 0 {
		t.Errorf("Expected 0 events after Clear, got %d", sink.Count())
	}
	if sink.LastEvent() != nil {
		t.Error("Expected nil LastEvent after Clear")
	}
}

func TestMemorySinkFindEvents(t *testing.T) {
	sink := NewMemorySink()
	sink.Emit(testEvent(core.DebugLevel, "noise"))
	sink.Emit(testEvent(core.ErrorLevel, "signal"))
	sink.Emit(testEvent(core.CriticalLevel, "signal"))

	errors := sink.FindEvents(func(e *core.LogEvent) bool {
		return e.Level >= core.ErrorLevel
	})
	if len(errors) != 2 {
		t.Errorf("Expected 2 matching events, got %d", len(errors))
	}

	if !sink.HasEvent(func(e *core.LogEvent) bool { return e.Level == core.CriticalLevel }) {
		t.Error("Expected HasEvent to find the critical event")
	}
	if sink.HasEvent(func(e *core.LogEvent) bool { return e.Level == core.WarningLevel }) {
		t.Error("Expected HasEvent to miss warning events")
	}
}

func TestMemorySinkConcurrentEmit(t *testing.T) {
	sink := NewMemorySink()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				sink.Emit(testEvent(core.InfoLevel, "concurrent"))
			}
		}()
	}
	wg.Wait()

	if sink.Count() != 1000 {
		t.Errorf("Expected 1000 events, got %d", sink.Count())
	}
}
