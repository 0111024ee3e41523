package log

import "github.com/kataras/golog"

// Logger is the printf-style leveled logging interface.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// GologLogger adapts a kataras/golog logger to the Logger interface.
type GologLogger struct {
	logger *golog.Logger
}

var _ Logger = (*GologLogger)(nil)

// New creates a golog-backed logger writing to stderr at info level.
func New() *GologLogger {
	l := golog.New()
	l.SetTimeFormat("15:04:05")
	return &GologLogger{logger: l}
}

// Wrap adapts an existing golog.Logger.
func Wrap(logger *golog.Logger) *GologLogger {
	return &GologLogger{logger: logger}
}

// SetLevel sets the backend level ("debug", "info", "warn", "error", "disable").
func (l *GologLogger) SetLevel(level string) {
	l.logger.SetLevel(level)
}

// Debug logs debug messages.
func (l *GologLogger) Debug(format string, v ...any) {
	l.logger.Debugf(format, v...)
}

// Info logs informational messages.
func (l *GologLogger) Info(format string, v ...any) {
	l.logger.Infof(format, v...)
}

// Warn logs warning messages.
func (l *GologLogger) Warn(format string, v ...any) {
	l.logger.Warnf(format, v...)
}

// Error logs error messages.
func (l *GologLogger) Error(format string, v ...any) {
	l.logger.Errorf(format, v...)
}

// NoOpLogger discards everything. Useful in tests.
type NoOpLogger struct{}

var _ Logger = NoOpLogger{}

func (NoOpLogger) Debug(format string, v ...any) {}
func (NoOpLogger) Info(format string, v ...any)  {}
func (NoOpLogger) Warn(format string, v ...any)  {}
func (NoOpLogger) Error(format string, v ...any) {}

var defaultLogger Logger = New()

// SetDefault sets the package-level logger.
func SetDefault(logger Logger) {
	defaultLogger = logger
}

// Default returns the package-level logger.
func Default() Logger {
	return defaultLogger
}
