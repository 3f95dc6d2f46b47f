// Package clientip extracts the real client IP from HTTP requests behind
// reverse proxies. Forwarding headers are checked in priority order before
// falling back to the connection's remote address; every candidate is parsed
// and normalized so spoofed garbage never becomes a rate-limit key.
package clientip
