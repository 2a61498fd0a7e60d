package main

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4/middleware"

	"tryonapi/config"
	"tryonapi/controllers"
	"tryonapi/services"
)

func main() {
	cfg := config.LoadConfig()

	err := sentry.Init(sentry.ClientOptions{
		// Empty DSN disables sending events.
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Env,
		Release:          "tryonapi@1.0.0",
		Debug:            false,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	generator := services.NewTryOnGenerator(cfg)
	e := controllers.SetupServer(cfg, generator)

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	log.Printf("[Boot] Try-on API listening on :%s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
