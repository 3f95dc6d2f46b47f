package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huyche/email-service/pkg/ratelimit"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows within limit and sets headers", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewSlidingWindow(store, 3, time.Minute)
		require.NoError(t, err)

		handler := ratelimit.Middleware(limiter, ratelimit.ByIP())(okHandler)

		for i := range 3 {
			req := httptest.NewRequest(http.MethodPost, "/email/send", nil)
			req.RemoteAddr = "192.0.2.1:1000"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.Itoa(3-i-1), rec.Header().Get("X-RateLimit-Remaining"))
			assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
		}
	})

	t.Run("blocks over limit with retry-after", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewSlidingWindow(store, 1, time.Minute)
		require.NoError(t, err)

		handler := ratelimit.Middleware(limiter, ratelimit.ByIP())(okHandler)

		req := httptest.NewRequest(http.MethodPost, "/email/send", nil)
		req.RemoteAddr = "192.0.2.1:1000"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("separate clients tracked separately", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewSlidingWindow(store, 1, time.Minute)
		require.NoError(t, err)

		handler := ratelimit.Middleware(limiter, ratelimit.ByIP())(okHandler)

		first := httptest.NewRequest(http.MethodPost, "/email/send", nil)
		first.RemoteAddr = "192.0.2.1:1000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, first)
		require.Equal(t, http.StatusOK, rec.Code)

		second := httptest.NewRequest(http.MethodPost, "/email/send", nil)
		second.RemoteAddr = "192.0.2.2:1000"
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, second)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("fails open on empty key", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewSlidingWindow(store, 1, time.Minute)
		require.NoError(t, err)

		emptyKey := func(*http.Request) string { return "" }
		handler := ratelimit.Middleware(limiter, emptyKey)(okHandler)

		for range 5 {
			req := httptest.NewRequest(http.MethodPost, "/email/send", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("nil key func panics at construction", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewSlidingWindow(store, 1, time.Minute)
		require.NoError(t, err)

		assert.Panics(t, func() {
			ratelimit.Middleware(limiter, nil)
		})
	})
}

func TestComposite(t *testing.T) {
	t.Parallel()

	byPath := func(r *http.Request) string { return r.URL.Path }

	t.Run("joins parts with colon", func(t *testing.T) {
		t.Parallel()

		key := ratelimit.Composite(ratelimit.ByIP(), byPath)
		req := httptest.NewRequest(http.MethodGet, "/email/test", nil)
		req.RemoteAddr = "192.0.2.1:1000"

		assert.Equal(t, "192.0.2.1:/email/test", key(req))
	})

	t.Run("hashes oversized keys", func(t *testing.T) {
		t.Parallel()

		long := func(*http.Request) string {
			b := make([]byte, 100)
			for i := range b {
				b[i] = 'a'
			}
			return string(b)
		}
		key := ratelimit.Composite(long, byPath)
		req := httptest.NewRequest(http.MethodGet, "/email/test", nil)

		got := key(req)
		assert.Len(t, got, 32)
	})

	t.Run("empty when all parts empty", func(t *testing.T) {
		t.Parallel()

		empty := func(*http.Request) string { return "" }
		key := ratelimit.Composite(empty, empty)
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Empty(t, key(req))
	})
}
