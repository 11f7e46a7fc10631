package benchmark

import (
	"strings"
	"testing"

	"github.com/ezsoft-tech/loggy/core"
	"github.com/ezsoft-tech/loggy/logger"
	"github.com/ezsoft-tech/loggy/table"
	"github.com/ezsoft-tech/loggy/textwidth"
)

var sinkString string

func newBenchLogger() *logger.Logger {
	return logger.NewBuilder().
		WithHandler(newNoopHandler()).
		WithWidth(core.Medium).
		Build()
}

// Benchmark full dispatch: caller lookup, render, sink
func BenchmarkLoggerInfo(b *testing.B) {
	log := newBenchLogger()
	defer log.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("Info message from the benchmark")
	}
}

func BenchmarkLoggerInfof(b *testing.B) {
	log := newBenchLogger()
	defer log.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Infof("user %s has %d items", "bob", 3)
	}
}

func BenchmarkLoggerJSON(b *testing.B) {
	log := newBenchLogger()
	defer log.Close()

	payload := `{"status":"success","items":[1,2,3],"user":{"name":"bob"}}`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info(payload, logger.AsJSON())
	}
}

type benchUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func BenchmarkLoggerModel(b *testing.B) {
	log := newBenchLogger()
	defer log.Close()

	payload := []benchUser{
		{Name: "alice", Email: "alice@example.com", Age: 31},
		{Name: "bob", Email: "bob@example.com", Age: 42},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info(payload, logger.AsModel())
	}
}

// Benchmark the renderer alone, without dispatch overhead
func BenchmarkRender(b *testing.B) {
	rec := &core.Record{
		Message:   "Debug message from the benchmark",
		Level:     core.DebugLevel,
		Width:     core.Medium,
		Source:    "bench",
		Function:  "BenchmarkRender()",
		Line:      1,
		Timestamp: "2026-08-30 12:00:00",
	}
	r := table.Renderer{}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sinkString = r.Render(rec)
	}
}

func BenchmarkRenderWide(b *testing.B) {
	rec := &core.Record{
		Message:   strings.Repeat("wide message with emoji \U0001F642 ", 10),
		Level:     core.InfoLevel,
		Width:     core.Large,
		Source:    "bench",
		Function:  "BenchmarkRenderWide()",
		Line:      1,
		Timestamp: "2026-08-30 12:00:00",
	}
	r := table.Renderer{}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sinkString = r.Render(rec)
	}
}

func BenchmarkStringWidth(b *testing.B) {
	s := "the quick brown fox \U0001F98A jumps over the lazy dog"
	var sink int

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sink = textwidth.StringWidth(s)
	}
	_ = sink
}

func BenchmarkWrap(b *testing.B) {
	s := strings.Repeat("lorem ipsum dolor sit amet ", 20)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = textwidth.Wrap(s, 78)
	}
}
