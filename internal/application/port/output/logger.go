package output

type LoggerPort interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	WithField(key string, value any) LoggerPort
	WithFields(fields map[string]any) LoggerPort

	Close() error
}

type nopLogger struct{}

// NopLogger discards everything.
func NopLogger() LoggerPort { return nopLogger{} }

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) WithField(string, any) LoggerPort { return n }
func (n nopLogger) WithFields(map[string]any) LoggerPort { return n }
func (nopLogger) Close() error { return nil }
