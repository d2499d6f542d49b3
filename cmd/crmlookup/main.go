package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/octobees/leads-generator/crmlookup/internal/auth"
	"github.com/octobees/leads-generator/crmlookup/internal/config"
	"github.com/octobees/leads-generator/crmlookup/internal/export"
	"github.com/octobees/leads-generator/crmlookup/internal/handler"
	"github.com/octobees/leads-generator/crmlookup/internal/i18n"
	"github.com/octobees/leads-generator/crmlookup/internal/logger"
	middlewarepkg "github.com/octobees/leads-generator/crmlookup/internal/middleware"
	"github.com/octobees/leads-generator/crmlookup/internal/prompt"
	"github.com/octobees/leads-generator/crmlookup/internal/repository"
	"github.com/octobees/leads-generator/crmlookup/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: middlewarepkg.Chain(http.DefaultTransport,
			middlewarepkg.RateLimiter(cfg.RateLimitAPI),
			middlewarepkg.RequestID(),
			middlewarepkg.Logging(log),
		),
	}

	lookupHandler := handler.NewLookupHandler(handler.Dependencies{
		Credentials:   cfg.Credentials,
		Authenticator: auth.NewPasswordAuthenticator(cfg.LoginURL, httpClient),
		NewClient: func(session *auth.Session) service.QueryClient {
			return repository.NewSalesforceRepository(session.Client, session.InstanceURL, cfg.APIVersion, repository.WithLogger(log))
		},
		BatchOptions: []service.BatchOption{service.WithConcurrency(cfg.Concurrency)},
		Exporter: export.NewExporter(cfg.ExportDir,
			export.WithFormat(cfg.ExportFormat),
			export.WithPhoneRegion(cfg.PhoneRegion),
			export.WithLogger(log),
		),
		Prompter: prompt.NewConsole(os.Stdin, os.Stdout),
		Out:      os.Stdout,
		Catalog:  i18n.NewCatalog(i18n.DetectLocale(cfg.Lang), nil),
		Logger:   log,
	})

	if err := lookupHandler.Run(ctx); err != nil {
		log.Error("lookup session ended with error", "err", err)
		stop()
		os.Exit(1)
	}
}
