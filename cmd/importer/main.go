package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"campus-compliments/internal/catalog"
	"campus-compliments/internal/config"
	"campus-compliments/internal/logger"
	"campus-compliments/internal/migrate"
	"campus-compliments/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the building catalog JSON file to import")
	configDir := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file flag is required")
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	log.Info().Str("file", *file).Msg("import_started")

	buildings, err := catalog.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse catalog")
	}
	log.Info().Int("buildings", len(buildings)).Msg("catalog_parsed")

	ctx := context.Background()

	// Ensure tables exist
	if err := migrate.Run(ctx, cfg.DBSource); err != nil {
		log.Fatal().Err(err).Msg("cannot ensure schema")
	}

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Insert records
	copied, err := repo.ReplaceBuildings(ctx, buildings)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert buildings")
	}

	// Verify data
	if err := verifyImport(ctx, repo, len(buildings)); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int64("copied", copied).Msg("import_finished")
}

func verifyImport(ctx context.Context, repo *repository.Repository, expectedCount int) error {
	stored, err := repo.ListBuildings(ctx)
	if err != nil {
		return fmt.Errorf("failed to read back buildings: %w", err)
	}

	if len(stored) != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, len(stored))
	}

	if expectedCount > 0 {
		log.Info().Str("sample", stored[0].String()).Msg("import_sample")
	}
	return nil
}
