// package main provides the entry point for the academy-backend microservice,
// which loads the tutoring-center directory from its source spreadsheet and
// serves the password-gated search, suggestion, and detail APIs.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/hanamedu/academy-backend/internal/api"
	"github.com/hanamedu/academy-backend/internal/config"
	"github.com/hanamedu/academy-backend/internal/services"
	"github.com/hanamedu/academy-backend/restapi/modules/auth"
	"github.com/hanamedu/academy-backend/sheets"
)

var logger = sheets.InitLogger() // setup the logger

func main() {
	cfg, err := config.Load(sheets.GetEnvDefault("CONFIG_PATH", "config.yaml"))
	if err != nil {
		logger.Sugar().Fatalf("Failed to load config: %v", err)
	}

	client := sheets.NewClient(cfg.SheetID)
	store := services.NewStore(client, cfg.DataGID, cfg.DataAsOf)
	sessions := auth.NewSessions(client, cfg.PasswordGID)

	//
	// Initial directory load with backoff retry
	//

	const initialInterval = 10 * time.Second
	const maxInterval = 2 * time.Minute

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval
	bo.MaxInterval = maxInterval
	bo.MaxElapsedTime = 0 // Set to 0 for indefinite retries

	err = backoff.RetryNotify(func() error {
		fmt.Println("Attempting to load directory from source sheet")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		return store.Load(ctx)
	}, bo, func(err error, _ time.Duration) {
		fmt.Printf("Retrying initial directory load: %v\n", err)
	})
	if err != nil {
		logger.Sugar().Fatalf("Backoff Error %v\n", err)
	}

	app := api.NewFiberApp(store, sessions, cfg.CORSOrigins)

	logger.Sugar().Infof("academy-backend listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Sugar().Fatalf("Server stopped: %v", err)
	}
}
