package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client's IP address for the request. Priority order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. X-Forwarded-For (standard proxy header, first valid IP)
//  3. X-Real-IP (nginx)
//  4. RemoteAddr (direct connection)
//
// Returns "" only when no candidate parses as an IP address.
func GetIP(r *http.Request) string {
	if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for candidate := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(strings.TrimSpace(candidate)); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare IP.
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string, returning "" for
// anything that is not a valid IPv4 or IPv6 address.
func parseIP(s string) string {
	if s == "" {
		return ""
	}
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
