package main

import (
	"os"

	"glass-connect-backend/internal/config"
	"glass-connect-backend/internal/database"
	"glass-connect-backend/internal/logger"
	"glass-connect-backend/internal/repository"
	"glass-connect-backend/internal/seed"
	"glass-connect-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var seedFile string

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", seed.DefaultPath, "Seed file to load")
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the reference vocabularies into the database",
	Long: `Load the lab offer taxonomy and the ERC panels from a YAML seed file.

Database settings are read the same way as the server (environment, .env,
config/config.yaml). Existing options are updated in place. Nothing is
written when any record is invalid.

Examples:
  glassctl seed
  glassctl seed --file config/taxonomy.yaml`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return withCode(ExitConfigError, "loading configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, os.Stderr)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{ConnectTimeout: cfg.DatabaseConnectTimeout})
	if err != nil {
		return withCode(ExitConfigError, "connecting to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	taxonomyService := service.NewTaxonomyService(repository.NewTaxonomyRepository(db))
	result, err := seed.Run(seedFile, taxonomyService)
	if err != nil {
		return withCode(ExitDataError, "seeding %s: %v", seedFile, err)
	}

	out := cmd.OutOrStdout()
	if humanOutput {
		outputHuman(out, "Loaded %d taxonomy options and %d ERC disciplines", result.Options, result.Disciplines)
		return nil
	}
	return outputJSON(out, result)
}
