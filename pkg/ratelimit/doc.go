// Package ratelimit provides fixed-window request limiting for HTTP routes.
//
// The limiter tracks individual request timestamps in a sliding window, which
// gives exact per-window counts at the cost of storing one timestamp per
// request. Storage is pluggable through the Store interface; the in-memory
// store is suitable for the single-process deployments this service targets.
//
// The HTTP middleware applies one limiter per route group, keyed by client
// IP, and sets the conventional X-RateLimit-* and Retry-After headers. It
// fails open: a storage error or an empty key lets the request through
// rather than turning a limiter fault into an outage.
package ratelimit
