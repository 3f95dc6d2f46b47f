package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huyche/email-service/internal/email"
	"github.com/huyche/email-service/internal/httpapi"
	"github.com/huyche/email-service/pkg/mailer"
	"github.com/huyche/email-service/pkg/ratelimit"
)

type stubSender struct {
	mu       sync.Mutex
	messages []mailer.Message
	nextID   int
	sendErr  error
}

func (s *stubSender) Send(_ context.Context, msg mailer.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return "", s.sendErr
	}
	s.messages = append(s.messages, msg)
	s.nextID++
	return fmt.Sprintf("m-%d", s.nextID), nil
}

func (s *stubSender) Verify(context.Context) error { return nil }

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

type testAPI struct {
	router http.Handler
	stub   *stubSender
}

func newTestAPI(t *testing.T, cfg httpapi.Config) *testAPI {
	t.Helper()

	stub := &stubSender{}
	reg := mailer.NewRegistry()
	require.NoError(t, reg.Register(email.DefaultSender, stub))

	svc := email.NewService(reg, email.Config{
		OperatorEmail: "owner@portfolio.dev",
		OperatorPhone: "+1 555 0100",
	}, nil)

	store := ratelimit.NewMemoryStore()
	t.Cleanup(store.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	router, err := httpapi.NewRouter(svc, cfg, store, log)
	require.NoError(t, err)

	return &testAPI{router: router, stub: stub}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "192.0.2.1:1000"
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var env map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRouter_Banner(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, httpapi.Config{})
	rec, env := api.do(t, http.MethodGet, "/api", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(200), env["code"])
	assert.Equal(t, "Email Service API is running!", env["data"])
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, httpapi.Config{})
	rec, env := api.do(t, http.MethodGet, "/api/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].(map[string]any)
	assert.Equal(t, "OK", data["status"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestRouter_Send(t *testing.T) {
	t.Parallel()

	t.Run("successful send", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, env := api.do(t, http.MethodPost, "/api/email/send", map[string]any{
			"to":      "a@x.com",
			"subject": "Hi",
			"text":    "hello",
		}, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		data := env["data"].(map[string]any)
		assert.Equal(t, true, data["success"])
		assert.Equal(t, "m-1", data["messageId"])
		assert.Equal(t, "Email sent successfully", env["message"])
		assert.Equal(t, 1, api.stub.count())
	})

	t.Run("transport failure still answers 200", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		api.stub.sendErr = errors.New("connection refused")

		rec, env := api.do(t, http.MethodPost, "/api/email/send", map[string]any{
			"to":      "a@x.com",
			"subject": "Hi",
			"text":    "hello",
		}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		data := env["data"].(map[string]any)
		assert.Equal(t, false, data["success"])
		assert.Contains(t, data["error"], "connection refused")
	})

	t.Run("invalid recipient rejected", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, env := api.do(t, http.MethodPost, "/api/email/send", map[string]any{
			"to":      "not-an-email",
			"subject": "Hi",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", env["message"])
		errs := env["data"].(map[string]any)["errors"].(map[string]any)
		assert.Contains(t, errs, "to")
		assert.Zero(t, api.stub.count())
	})

	t.Run("missing recipient reports a single failure", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, env := api.do(t, http.MethodPost, "/api/email/send", map[string]any{
			"subject": "Hi",
			"text":    "hello",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errs := env["data"].(map[string]any)["errors"].(map[string]any)
		require.Len(t, errs["to"], 1)
		assert.Equal(t, "is required", errs["to"].([]any)[0])
		assert.Zero(t, api.stub.count())
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, _ := api.do(t, http.MethodPost, "/api/email/send", map[string]any{
			"to":       "a@x.com",
			"subject":  "Hi",
			"text":     "hello",
			"sneaky":   true,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rate limit enforced", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		body := map[string]any{"to": "a@x.com", "subject": "Hi", "text": "x"}

		for range 10 {
			rec, _ := api.do(t, http.MethodPost, "/api/email/send", body, nil)
			require.Equal(t, http.StatusOK, rec.Code)
		}
		rec, _ := api.do(t, http.MethodPost, "/api/email/send", body, nil)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})
}

func TestRouter_SendBulk(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, httpapi.Config{})
	rec, env := api.do(t, http.MethodPost, "/api/email/send-bulk", map[string]any{
		"to":      []string{"a@x.com", "b@x.com"},
		"subject": "Hi",
		"text":    "hello",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].(map[string]any)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(2), data["sent"])
	assert.Equal(t, float64(0), data["failed"])
	assert.Len(t, data["results"], 2)
	assert.Equal(t, "Bulk emails processed: 2 sent, 0 failed", env["message"])
}

func TestRouter_SendTemplate(t *testing.T) {
	t.Parallel()

	t.Run("known template", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, env := api.do(t, http.MethodPost, "/api/email/send-template", map[string]any{
			"to":        "a@x.com",
			"template":  "welcome",
			"variables": map[string]any{"name": "Alice"},
			"subject":   "Welcome!",
		}, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		data := env["data"].(map[string]any)
		assert.Equal(t, true, data["success"])
	})

	t.Run("unknown template answers 400 without sending", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, env := api.do(t, http.MethodPost, "/api/email/send-template", map[string]any{
			"to":       "a@x.com",
			"template": "ghost",
			"subject":  "Hi",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email template 'ghost' not found", env["message"])
		assert.Zero(t, api.stub.count())
	})
}

func TestRouter_APIKeyGuard(t *testing.T) {
	t.Parallel()

	portfolioBody := map[string]any{
		"email":   "visitor@x.com",
		"name":    "Jordan",
		"message": "hello",
	}

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{APIKey: "secret-key-123"})
		rec, env := api.do(t, http.MethodPost, "/api/email/response-portfolio", portfolioBody, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "API key is required", env["message"])
	})

	t.Run("wrong key", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{APIKey: "secret-key-123"})
		rec, env := api.do(t, http.MethodPost, "/api/email/response-portfolio", portfolioBody,
			map[string]string{"x-api-key": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid API key", env["message"])
	})

	t.Run("unconfigured key rejects", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, env := api.do(t, http.MethodPost, "/api/email/response-portfolio", portfolioBody,
			map[string]string{"x-api-key": "anything"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "API key validation not configured", env["message"])
	})

	t.Run("valid key sends both portfolio legs", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{APIKey: "secret-key-123"})
		rec, env := api.do(t, http.MethodPost, "/api/email/response-portfolio", portfolioBody,
			map[string]string{"x-api-key": "secret-key-123"})

		require.Equal(t, http.StatusOK, rec.Code)
		data := env["data"].(map[string]any)
		assert.Equal(t, true, data["success"])
		assert.Equal(t, 2, api.stub.count())
	})

	t.Run("delivery failure answers 500", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{APIKey: "secret-key-123"})
		api.stub.sendErr = errors.New("auth rejected")

		rec, env := api.do(t, http.MethodPost, "/api/email/response-portfolio", portfolioBody,
			map[string]string{"x-api-key": "secret-key-123"})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, fmt.Sprint(env["message"]), "auth rejected")
	})
}

func TestRouter_WelcomeUser(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{APIKey: "secret-key-123"})
		rec, env := api.do(t, http.MethodPost, "/api/email/welcome-user", map[string]any{
			"email":    "new@x.com",
			"name":     "Casey",
			"loginUrl": "https://app.transmaster.io/login",
		}, map[string]string{"x-api-key": "secret-key-123"})

		require.Equal(t, http.StatusOK, rec.Code)
		data := env["data"].(map[string]any)
		assert.Equal(t, true, data["success"])
	})

	t.Run("invalid login url", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{APIKey: "secret-key-123"})
		rec, _ := api.do(t, http.MethodPost, "/api/email/welcome-user", map[string]any{
			"email":    "new@x.com",
			"name":     "Casey",
			"loginUrl": "not-a-url",
		}, map[string]string{"x-api-key": "secret-key-123"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, api.stub.count())
	})
}

func TestRouter_TestAndTemplates(t *testing.T) {
	t.Parallel()

	t.Run("connection test", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, env := api.do(t, http.MethodGet, "/api/email/test", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		data := env["data"].(map[string]any)
		assert.Equal(t, true, data["success"])
	})

	t.Run("templates list", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, httpapi.Config{})
		rec, env := api.do(t, http.MethodGet, "/api/email/templates", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		data := env["data"].(map[string]any)
		assert.Equal(t, []any{"notification", "reset_password", "welcome"}, data["templates"])
	})
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	cfg := httpapi.Config{CORSOrigins: []string{"https://www.huyche.site"}}

	t.Run("allowed origin echoed", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, cfg)
		rec, _ := api.do(t, http.MethodGet, "/api/health", nil,
			map[string]string{"Origin": "https://www.huyche.site"})

		assert.Equal(t, "https://www.huyche.site", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, cfg)
		rec, _ := api.do(t, http.MethodOptions, "/api/email/send", nil, map[string]string{
			"Origin":                        "https://www.huyche.site",
			"Access-Control-Request-Method": http.MethodPost,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "x-api-key")
	})

	t.Run("disallowed origin gets no cors headers", func(t *testing.T) {
		t.Parallel()

		api := newTestAPI(t, cfg)
		rec, _ := api.do(t, http.MethodGet, "/api/health", nil,
			map[string]string{"Origin": "https://evil.example"})

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_RequestID(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, httpapi.Config{})

	rec, _ := api.do(t, http.MethodGet, "/api/health", nil, nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, _ = api.do(t, http.MethodGet, "/api/health", nil,
		map[string]string{"X-Request-ID": "my-trace-id"})
	assert.Equal(t, "my-trace-id", rec.Header().Get("X-Request-ID"))
}
