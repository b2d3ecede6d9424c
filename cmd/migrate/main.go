package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"via-proposito/internal/config"
	"via-proposito/internal/database"
	"via-proposito/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the database schema",
		SilenceUsage: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *database.Migrator) error {
					if err := m.Up(); err != nil {
						return err
					}
					return printVersion(cmd, m)
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (default 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil {
						return fmt.Errorf("invalid steps %q: %w", args[0], err)
					}
					steps = n
				}
				return withMigrator(func(m *database.Migrator) error {
					if err := m.Down(steps); err != nil {
						return err
					}
					return printVersion(cmd, m)
				})
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Verify the connection and list the public tables",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(func(db *sqlx.DB) error {
					var now time.Time
					if err := db.GetContext(cmd.Context(), &now, "SELECT NOW()"); err != nil {
						return fmt.Errorf("connection check failed: %w", err)
					}
					cmd.Printf("connected, server time %s\n", now.Format(time.RFC3339))

					var tables []string
					if err := db.SelectContext(cmd.Context(), &tables,
						"SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name"); err != nil {
						return fmt.Errorf("could not list tables: %w", err)
					}
					if len(tables) == 0 {
						cmd.Println("no tables found, run 'migrate up'")
					}
					for _, t := range tables {
						cmd.Printf("  %s\n", t)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *database.Migrator) error {
					return printVersion(cmd, m)
				})
			},
		},
	)
	return root
}

// withMigrator connects to the configured database and runs fn with a Migrator.
func withMigrator(fn func(*database.Migrator) error) error {
	return withDB(func(db *sqlx.DB) error {
		m, err := database.NewMigrator(db.DB)
		if err != nil {
			return err
		}
		defer m.Close()

		names, _ := database.MigrationNames()
		logger.Get().Info("Loaded embedded migrations", zap.Strings("files", names))
		return fn(m)
	})
}

func withDB(fn func(*sqlx.DB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return err
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN(), database.PoolConfig{MaxOpenConns: 2})
	if err != nil {
		l.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()
	return fn(db)
}

func printVersion(cmd *cobra.Command, m *database.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	cmd.Printf("schema version %d (dirty=%t)\n", version, dirty)
	return nil
}
