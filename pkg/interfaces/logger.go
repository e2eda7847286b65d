// Package interfaces holds the small contracts the blog module expects its
// host application to satisfy.
package interfaces

import "context"

// Logger is the leveled logging contract used throughout the module. The
// method set mirrors github.com/goliatone/go-logger so hosts already using
// that package can supply their loggers directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. An implementation may scope a child
// logger per name or return one shared instance for every caller.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for loggers that can bind persistent
// structured fields. Implementations return a new logger that attaches the
// supplied fields to every subsequent entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
