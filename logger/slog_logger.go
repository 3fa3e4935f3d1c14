package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger implements the [Logger] interface by delegating log operations
// to the standard library's slog package. It is the logger used by the
// cronmatch command line tool.
//
// In addition to the default slog levels, it introduces the Trace (Debug-4) level.
// To change the string representation of the Trace log level, use the ReplaceAttr
// field in [slog.HandlerOptions], e.g.
//
//	myLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
//		Level:     slog.Level(logger.LevelTrace),
//		AddSource: true,
//		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
//			if a.Key == slog.LevelKey {
//				level := a.Value.Any().(slog.Level)
//				if level == slog.Level(logger.LevelTrace) {
//					a.Value = slog.StringValue("TRACE")
//				}
//			}
//			return a
//		},
//	}))
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a new [SlogLogger] logging with ctx.
// It will panic if the logger is nil.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{
		ctx:    ctx,
		logger: logger,
	}
}

// Trace logs at the trace level.
func (l *SlogLogger) Trace(msg string, args ...any) {
	l.log(slog.Level(LevelTrace), msg, args...)
}

// Debug logs at the debug level.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs at the info level.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs at the warn level.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs at the error level.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

// Enabled reports whether the underlying slog.Logger handles records at
// the given level.
func (l *SlogLogger) Enabled(level Level) bool {
	return l.logger.Enabled(l.ctx, slog.Level(level))
}

// NewTextSlogLogger returns a [SlogLogger] writing text records to w at the
// given level and above, naming the trace level "TRACE".
func NewTextSlogLogger(w io.Writer, level Level) *SlogLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.Level(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == slog.Level(LevelTrace) {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	})
	return NewSlogLogger(context.Background(), slog.New(handler))
}

// log is the low-level logging method, obtaining the caller's PC for context.
func (l *SlogLogger) log(level slog.Level, msg string, args ...any) {
	if !l.logger.Enabled(l.ctx, level) {
		return
	}

	// skip [runtime.Callers, this function, this function's caller]
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	pc := pcs[0]

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.Add(args...)

	_ = l.logger.Handler().Handle(l.ctx, r)
}
