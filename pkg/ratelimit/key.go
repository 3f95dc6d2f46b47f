package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/huyche/email-service/pkg/clientip"
)

// maxKeyLength caps stored key length; longer composites are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate-limit key from an HTTP request. An empty return
// value disables limiting for that request.
type KeyFunc func(*http.Request) string

// ByIP keys requests on the proxy-aware client IP.
func ByIP() KeyFunc {
	return clientip.GetIP
}

// Composite joins several key functions into one key. Oversized keys are
// hashed to a 128-bit hex digest so storage backends see bounded keys.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}
		if len(parts) == 1 && len(parts[0]) <= maxKeyLength {
			return parts[0]
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			sum := sha256.Sum256([]byte(combined))
			return hex.EncodeToString(sum[:16])
		}
		return combined
	}
}
