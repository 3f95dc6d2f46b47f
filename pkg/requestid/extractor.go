package requestid

import (
	"context"
	"log/slog"
)

// LogExtractor adapts FromContext for the logger's context extractor hook so
// every record written during a request carries its request_id.
func LogExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
