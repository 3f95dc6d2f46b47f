// Package logger builds configured slog.Logger instances for the service.
//
// The factory supports JSON output for production and text output for local
// development, static attributes attached to every record, and context
// extractors that inject request-scoped values (such as the request ID) into
// each log record at write time.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Environment, "email-service"),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	slog.SetDefault(log)
package logger
