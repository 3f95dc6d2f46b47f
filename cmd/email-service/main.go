package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/huyche/email-service/internal/email"
	"github.com/huyche/email-service/internal/httpapi"
	"github.com/huyche/email-service/pkg/config"
	"github.com/huyche/email-service/pkg/httpserver"
	"github.com/huyche/email-service/pkg/logger"
	"github.com/huyche/email-service/pkg/mailer"
	"github.com/huyche/email-service/pkg/ratelimit"
	"github.com/huyche/email-service/pkg/requestid"
)

type appConfig struct {
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
	Port         int    `env:"PORT" envDefault:"4000"`
	MailerDriver string `env:"MAILER_DRIVER" envDefault:"smtp"` // "smtp" or "dev"
	DevMailDir   string `env:"DEV_MAIL_DIR" envDefault:"./tmp/mail"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("service exited", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(app.Environment, "email-service"),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)

	var svcCfg email.Config
	if err := config.Load(&svcCfg); err != nil {
		return err
	}
	var apiCfg httpapi.Config
	if err := config.Load(&apiCfg); err != nil {
		return err
	}

	sender, closeSender, err := buildSender(app, log)
	if err != nil {
		return err
	}
	defer closeSender()

	// Startup probe is advisory: a failure is logged and the service stays
	// up in degraded mode, surfacing errors on real sends instead.
	go func() {
		if err := sender.Verify(context.Background()); err != nil {
			log.Error("email transport verification failed", logger.Error(err))
		} else {
			log.Info("email transport is ready to send messages")
		}
	}()

	registry := mailer.NewRegistry()
	if err := registry.Register(email.DefaultSender, sender); err != nil {
		return err
	}

	svc := email.NewService(registry, svcCfg, log)

	store := ratelimit.NewMemoryStore()
	defer store.Close()

	router, err := httpapi.NewRouter(svc, apiCfg, store, log)
	if err != nil {
		return err
	}

	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	httpCfg.Addr = fmt.Sprintf(":%d", app.Port)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(context.Background(), router)
}

func buildSender(app appConfig, log *slog.Logger) (mailer.Sender, func(), error) {
	if app.MailerDriver == "dev" {
		log.Info("using development mail sender", slog.String("dir", app.DevMailDir))
		return mailer.NewDevSender(app.DevMailDir), func() {}, nil
	}

	var cfg mailer.Config
	if err := config.Load(&cfg); err != nil {
		return nil, nil, err
	}
	sender, err := mailer.NewSMTPSender(cfg, mailer.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return sender, sender.Close, nil
}
