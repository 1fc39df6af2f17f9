package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/listingdesk/backoffice/internal/config"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/postgres"
)

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "Print the schema SQL without executing it")
	flag.Parse()

	if *dryRun {
		if err := postgres.WriteSchema(os.Stdout); err != nil {
			log.Fatalf("Failed to print schema: %v", err)
		}
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)
	db, err := postgres.NewDB(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.ApplySchema(ctx); err != nil {
		logger.Fatalw("Failed to apply schema", "error", err)
	}
	logger.Info("Migration completed successfully")
}
