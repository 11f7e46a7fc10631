package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ezsoft-tech/loggy/handler"
	"github.com/ezsoft-tech/loggy/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
//
// The comparison is intentionally apples to oranges: Loggy renders a
// bordered multi-line table per call, the others a single line. The
// numbers show what the table layout costs relative to conventional
// console formats.
// ---------------------------------------------------------------------------

// newLoggyLogger returns a loggy logger that writes tables to io.Discard.
func newLoggyLogger() *logger.Logger {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: io.Discard,
	})
	return logger.NewBuilder().
		WithHandler(h).
		Build()
}

// newZapLogger returns a zap.Logger that writes console output to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger that writes text to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger that writes text to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel)
}

const benchMessage = "Processed request in 42ms"

func BenchmarkCompetitive_Loggy(b *testing.B) {
	log := newLoggyLogger()
	defer log.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info(benchMessage)
	}
}

func BenchmarkCompetitive_Zap(b *testing.B) {
	log := newZapLogger()
	defer log.Sync()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info(benchMessage)
	}
}

func BenchmarkCompetitive_Slog(b *testing.B) {
	log := newSlogLogger()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info(benchMessage)
	}
}

func BenchmarkCompetitive_Logrus(b *testing.B) {
	log := newLogrusLogger()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info(benchMessage)
	}
}

func BenchmarkCompetitive_Zerolog(b *testing.B) {
	log := newZerologLogger()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info().Msg(benchMessage)
	}
}
