package httpapi

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"
)

// apiKeyGuard enforces the x-api-key header on protected routes. A missing
// configured key rejects everything, matching the original behavior of
// refusing rather than silently opening the route.
func apiKeyGuard(apiKey string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("x-api-key")
			if got == "" {
				log.WarnContext(r.Context(), "api request without api key")
				respondError(w, http.StatusUnauthorized, "API key is required")
				return
			}
			if apiKey == "" {
				log.ErrorContext(r.Context(), "api key validation not configured")
				respondError(w, http.StatusUnauthorized, "API key validation not configured")
				return
			}
			if got != apiKey {
				log.WarnContext(r.Context(), "invalid api key attempt",
					slog.String("prefix", keyPrefix(got)))
				respondError(w, http.StatusUnauthorized, "Invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func keyPrefix(key string) string {
	if len(key) > 8 {
		return key[:8] + "..."
	}
	return key
}

// requestLogger records method, path, status, and latency for each request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			log.InfoContext(r.Context(), "request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

var corsAllowHeaders = strings.Join([]string{
	"Content-Type", "Authorization", "Accept", "x-api-key",
}, ", ")

var corsAllowMethods = strings.Join([]string{
	http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
	http.MethodPost, http.MethodDelete, http.MethodOptions,
}, ", ")

// cors handles cross-origin requests for the configured origins. Disallowed
// origins pass through without CORS headers and are blocked by the browser.
func cors(allowOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || !slices.Contains(allowOrigins, origin) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				h.Add("Vary", "Access-Control-Request-Method")
				h.Add("Vary", "Access-Control-Request-Headers")
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
