package turbojson

import "go.uber.org/zap"

// traceLogger is the minimal surface this package needs from a structured
// logger. It is satisfied by *zap.Logger directly, so callers normally
// just pass a *zap.Logger to WithTraceLogger/WithDecodeTraceLogger.
//
// Grounded on the zapcore JSON encoders in the retrieval pack (see
// DESIGN.md), which pair a byte-oriented encoder very similar to this
// package's own with a real structured-logging library.
type traceLogger interface {
	Debug(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// noopLogger is used whenever no trace logger is configured, so the hot
// path never has to nil-check before logging.
type noopLogger struct{}

func (noopLogger) Debug(string, ...zap.Field) {}
func (noopLogger) Error(string, ...zap.Field) {}

func traceLoggerOrNoop(l traceLogger) traceLogger {
	if l == nil {
		return noopLogger{}
	}
	return l
}

// NewDevelopmentTraceLogger returns a *zap.Logger suitable for passing to
// WithTraceLogger/WithDecodeTraceLogger during development. Production
// hosts are expected to build and configure their own *zap.Logger and
// pass it in directly; the engine never constructs or owns a logger for
// the caller.
func NewDevelopmentTraceLogger() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

func zapDepthField(depth int) zap.Field {
	return zap.Int("depth", depth)
}

func zapOffsetField(offset int) zap.Field {
	return zap.Int("offset", offset)
}
