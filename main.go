package main

import (
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/jsphweid/automidi/cmd"
	"github.com/jsphweid/automidi/config"
	"github.com/jsphweid/automidi/logger"
)

func main() {
	// a missing .env is fine, the environment is used as is
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Debug:       cfg.Debug,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			defer logger.Flush()
		}
	}

	cmd.Execute(cfg)
}
