// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, and structured logging via slog.
//
// Construction goes through New or NewFromConfig with functional options.
// Run blocks until the context is cancelled, an interrupt or TERM signal
// arrives, or the listener fails; it then shuts the server down within the
// configured deadline. Errors are wrapped with the ErrStart and ErrShutdown
// sentinels so callers can distinguish them with errors.Is.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":3000"),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes; readiness checks are
// optional dependency functions executed on each request.
package httpserver
