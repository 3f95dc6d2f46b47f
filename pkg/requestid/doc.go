// Package requestid assigns a unique identifier to every HTTP request and
// makes it available through the request context and the X-Request-ID
// response header. Incoming IDs are reused when well-formed so traces can
// span upstream proxies; anything else is replaced with a fresh UUID.
package requestid
