package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/huyche/email-service/pkg/logger"
)

// HealthHandler returns an HTTP handler usable for both liveness and
// readiness probes.
//
// With no dependency functions supplied it answers 200 OK with body "ALIVE".
// With one or more, each function runs on every request; if all succeed the
// handler answers 200 OK with "READY", otherwise 500 with "NOT_READY".
func HealthHandler(log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(funcs) == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ALIVE"))
			return
		}

		for _, f := range funcs {
			if err := f(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
