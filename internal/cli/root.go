// Package cli holds the foodgram command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodgram/internal/config"
	"github.com/BruksfildServices01/foodgram/internal/db"
	"github.com/BruksfildServices01/foodgram/internal/logger"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "foodgram",
	Short: "Recipe sharing API",
	Long: `foodgram serves the recipe sharing API and carries the operational
commands around it: schema migration, catalog loading and admin bootstrap.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(loadDataCmd)
	rootCmd.AddCommand(createAdminCmd)
}

// bootstrap loads the environment and configures logging.
func bootstrap() (*config.Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := config.Load()
	if err := logger.Init(cfg.IsProduction()); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

// openDB connects and migrates the schema.
func openDB(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	conn, err := db.NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.Migrate(conn.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return conn, nil
}
