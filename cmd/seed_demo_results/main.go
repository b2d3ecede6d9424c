package main

import (
	"context"
	"fmt"
	"os"

	"via-proposito/cmd/seed_demo_results/internal/seedmodels"
	"via-proposito/internal/config"
	"via-proposito/internal/database"
	"via-proposito/internal/domain"
	"via-proposito/internal/logger"
	"via-proposito/internal/repository"
	"via-proposito/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const defaultSeedFile = "configs/seed_data/demo_results.yaml"

func main() {
	_ = godotenv.Load()

	var seedFile string
	cmd := &cobra.Command{
		Use:          "seed_demo_results",
		Short:        "Store demo test results for the admin dashboard",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), seedFile)
		},
	}
	cmd.Flags().StringVarP(&seedFile, "file", "f", defaultSeedFile, "YAML seed file")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, seedFile string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", seedFile, err)
	}
	var file seedmodels.SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}
	log.Info("Loaded seed data", zap.String("path", seedFile), zap.Int("results", len(file.Results)))

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN(), database.PoolConfig{})
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewSQLXTestResultRepository(db)
	// Seeding always allows retakes and skips the stats cache.
	svc := service.NewTestResultService(repo, repository.NewTransactionManagerAdapter(db), nil, true)

	stored := 0
	for _, seed := range file.Results {
		req, err := seed.ToRequest()
		if err != nil {
			log.Error("Skipping invalid seed", zap.Error(err))
			continue
		}
		resp, err := svc.Submit(ctx, req)
		if err != nil {
			log.Error("Failed to store seed", zap.String("email", domain.NormalizeEmail(seed.Email)), zap.Error(err))
			continue
		}
		stored++
		log.Info("Stored demo result", zap.String("id", resp.ID), zap.String("result", resp.Result))
	}
	log.Info("Seeding completed", zap.Int("stored", stored), zap.Int("total", len(file.Results)))
	return nil
}
