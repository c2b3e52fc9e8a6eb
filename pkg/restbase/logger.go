package restbase

// Logger is the structured logging interface used throughout the library.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

type noopLogger struct{}

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(msg string, fields map[string]interface{}) {}
func (noopLogger) Info(msg string, fields map[string]interface{})  {}
func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}
