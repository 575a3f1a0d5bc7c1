package glog

import (
	"io"
	"testing"

	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/sinks"
)

// discardSink is a sink that discards all events (for benchmarking)
type discardSink struct{}

func (d *discardSink) Emit(event *core.LogEvent) {}
func (d *discardSink) Close() error              { return nil }

// Benchmark a plain enabled record. Caller lookup runs on every
// accepted record, so this measures the full event path minus output.
func BenchmarkInfo(b *testing.B) {
	logger := New(WithSink(&discardSink{}))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Info("This is a simple log message")
	}
}

// Benchmark sprint assembly of mixed arguments
func BenchmarkInfoMixedArgs(b *testing.B) {
	logger := New(WithSink(&discardSink{}))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Info("user ", 123, " performed ", "login")
	}
}

// Benchmark printf-style formatting
func BenchmarkInfof(b *testing.B) {
	logger := New(WithSink(&discardSink{}))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Infof("user %d performed %s", 123, "login")
	}
}

// Benchmark logging below the threshold (should be very fast)
func BenchmarkSuppressedDebug(b *testing.B) {
	logger := New(
		WithSink(&discardSink{}),
		WithLevel(core.InfoLevel),
	)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Debug("This should not be processed")
	}
}

// Benchmark the console sink with full prefix rendering
func BenchmarkConsoleSink(b *testing.B) {
	logger := New(WithSink(sinks.NewConsoleSinkWithWriter(io.Discard)))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Info("user 123 logged in")
	}
}

// Benchmark parallel logging through a shared logger
func BenchmarkParallelLogging(b *testing.B) {
	logger := New(WithSink(sinks.NewConsoleSinkWithWriter(io.Discard)))

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Info("parallel log message")
		}
	})
}

// Benchmark passing checks
func BenchmarkCheck(b *testing.B) {
	logger := New(WithSink(&discardSink{}))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.Check(i >= 0)
	}
}

func BenchmarkCheckEq(b *testing.B) {
	logger := New(WithSink(&discardSink{}))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.CheckEq(42, 42)
	}
}

func BenchmarkCheckLeMixed(b *testing.B) {
	logger := New(WithSink(&discardSink{}))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		logger.CheckLe(3, 3.5)
	}
}
