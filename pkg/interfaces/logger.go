package interfaces

import "context"

// Logger is what the decoder, engine, fetch client and commands log through.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider returns the logger for a module name such as
// "pagetree.decoder".
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is optional. logging.WithFields uses it when present.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
