package logger

import "log/slog"

// Error creates an attribute for an error under the key "error".
// A nil error produces an empty attribute that slog drops silently.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records which subsystem produced the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
