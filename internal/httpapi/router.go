package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/huyche/email-service/internal/email"
	"github.com/huyche/email-service/pkg/ratelimit"
	"github.com/huyche/email-service/pkg/requestid"
)

// Route-group rate limits, per client IP.
const (
	sendLimit  = 10
	sendWindow = time.Minute
	bulkLimit  = 3
	bulkWindow = 5 * time.Minute
	testLimit  = 5
	testWindow = time.Minute
)

// NewRouter assembles the full API under /api. The returned limiter store
// must stay alive for the router's lifetime; callers own svc and log.
func NewRouter(svc *email.Service, cfg Config, store ratelimit.Store, log *slog.Logger) (http.Handler, error) {
	h := &handler{svc: svc, log: log}

	byIP := ratelimit.ByIP()
	sendLimiter, err := ratelimit.NewSlidingWindow(store, sendLimit, sendWindow)
	if err != nil {
		return nil, err
	}
	bulkLimiter, err := ratelimit.NewSlidingWindow(store, bulkLimit, bulkWindow)
	if err != nil {
		return nil, err
	}
	testLimiter, err := ratelimit.NewSlidingWindow(store, testLimit, testWindow)
	if err != nil {
		return nil, err
	}

	guard := apiKeyGuard(cfg.APIKey, log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(cors(cfg.CORSOrigins))
	r.Use(requestLogger(log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.banner)
		r.Get("/health", h.health)

		r.Route("/email", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(ratelimit.Middleware(sendLimiter, byIP))
				r.Post("/send", h.send)
				r.Post("/send-template", h.sendTemplate)

				r.Group(func(r chi.Router) {
					r.Use(guard)
					r.Post("/response-portfolio", h.sendPortfolio)
					r.Post("/welcome-user", h.sendWelcome)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(ratelimit.Middleware(bulkLimiter, byIP))
				r.Post("/send-bulk", h.sendBulk)
			})

			r.Group(func(r chi.Router) {
				r.Use(ratelimit.Middleware(testLimiter, byIP))
				r.Get("/test", h.testConnection)
			})

			r.Get("/templates", h.listTemplates)
		})
	})

	return r, nil
}
