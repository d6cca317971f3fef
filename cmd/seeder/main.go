// Command seeder publishes demo events from a YAML fixtures file through the
// regular creation path (validation, uploads, geocoding). Fixtures whose
// title and date already exist are skipped, so it is safe to re-run.
//
// Flags:
//
//	--fixtures       path to the fixtures YAML (overrides config)
//	--dry-run        validate fixtures without writing
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/eventorias-backend/internal/app"
	"github.com/heartmarshall/eventorias-backend/internal/app/seeder"
	"github.com/heartmarshall/eventorias-backend/internal/config"
)

func main() {
	fixturesFlag := flag.String("fixtures", "", "path to the fixtures YAML")
	dryRunFlag := flag.Bool("dry-run", false, "validate fixtures without writing")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fixturesFlag != "" {
		seederCfg.FixturesPath = *fixturesFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.FixturesPath == "" {
		logger.Error("no fixtures file, set --fixtures or SEEDER_FIXTURES_PATH")
		os.Exit(1)
	}

	fixtures, err := seeder.LoadFixtures(seederCfg.FixturesPath)
	if err != nil {
		logger.Error("load fixtures", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	writer, err := app.OpenEventWriter(ctx, appCfg, logger)
	if err != nil {
		logger.Error("open backends", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer writer.Close()

	pipeline := seeder.NewPipeline(logger, writer.Service, writer, *seederCfg)
	if err := pipeline.Run(ctx, fixtures); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("seeding completed with errors")
		os.Exit(1)
	}
}
