package benchmark

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/alog/logger"
)

var errConnRefused = errors.New("connection refused")

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard, plain text).
// Caller lookup and coloring stay off unless a scenario measures them.
// ---------------------------------------------------------------------------

// newAlogLogger returns an alog logger that writes plain text to io.Discard.
func newAlogLogger() *logger.Logger {
	l, _ := logger.New("bench",
		logger.WithConsoleWriter(io.Discard),
		logger.WithCaller(false),
		logger.WithColoring(false, false),
	)
	return l
}

// newZapLogger returns a zap.Logger that writes console text to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
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
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes console text to
// io.Discard.
func newZerologLogger() zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: io.Discard, NoColor: true}
	return zerolog.New(cw).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message, no interpolation
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoNoFields(b *testing.B) {
	b.Run("alog", func(b *testing.B) {
		l := newAlogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Formatted message (printf interpolation)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoFormatted(b *testing.B) {
	b.Run("alog", func(b *testing.B) {
		l := newAlogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("user %s logged in from %s", "alice", "10.0.40.7")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger().Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("user %s logged in from %s", "alice", "10.0.40.7")
		}
	})

	// slog has no printf variant; the message is formatted up front.
	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(fmt.Sprintf("user %s logged in from %s", "alice", "10.0.40.7"))
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("user %s logged in from %s", "alice", "10.0.40.7")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("user %s logged in from %s", "alice", "10.0.40.7")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Error with an attached error value. alog captures a stack
// trace for the error line; the other frameworks attach the value only.
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_ErrorWithError(b *testing.B) {
	b.Run("alog", func(b *testing.B) {
		l := newAlogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithError(errConnRefused).Error("query failed")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error("query failed", zap.Error(errConnRefused))
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error("query failed", "error", errConnRefused)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithError(errConnRefused).Error("query failed")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error().Err(errConnRefused).Msg("query failed")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Caller annotation enabled
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_WithCaller(b *testing.B) {
	b.Run("alog", func(b *testing.B) {
		l, _ := logger.New("bench",
			logger.WithConsoleWriter(io.Discard),
			logger.WithColoring(false, false),
		)
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
		l := zap.New(core, zap.AddCaller())
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})
		l := slog.New(h)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		l.SetReportCaller(true)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		cw := zerolog.ConsoleWriter{Out: io.Discard, NoColor: true}
		l := zerolog.New(cw).With().Timestamp().Caller().Logger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – Parallel logging
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("alog", func(b *testing.B) {
		l := newAlogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Msg("parallel message")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 6 – File output
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	// The console sink stays attached and discards; the file write dominates.
	b.Run("alog", func(b *testing.B) {
		tmp, err := os.CreateTemp("", "alog_benchmark_*.log")
		if err != nil {
			b.Fatal(err)
		}
		tmp.Close()
		defer os.Remove(tmp.Name())

		l, err := logger.New("bench",
			logger.WithFile(tmp.Name()),
			logger.WithConsoleWriter(io.Discard),
			logger.WithCaller(false),
			logger.WithColoring(false, false),
		)
		if err != nil {
			b.Fatal(err)
		}
		defer l.Close()

		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		f, err := os.CreateTemp("", "zap_benchmark_*.log")
		if err != nil {
			b.Fatal(err)
		}
		defer os.Remove(f.Name())
		defer f.Close()

		enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(f), zap.DebugLevel)
		l := zap.New(core)

		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		f, err := os.CreateTemp("", "slog_benchmark_*.log")
		if err != nil {
			b.Fatal(err)
		}
		defer os.Remove(f.Name())
		defer f.Close()

		l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))

		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		f, err := os.CreateTemp("", "logrus_benchmark_*.log")
		if err != nil {
			b.Fatal(err)
		}
		defer os.Remove(f.Name())
		defer f.Close()

		l := logrus.New()
		l.SetOutput(f)
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true})

		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		f, err := os.CreateTemp("", "zerolog_benchmark_*.log")
		if err != nil {
			b.Fatal(err)
		}
		defer os.Remove(f.Name())
		defer f.Close()

		l := zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true}).With().Timestamp().Logger()

		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("file message")
		}
	})
}
