package cli

import (
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/foodgram/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if _, err := openDB(cmd.Context(), cfg); err != nil {
			return err
		}
		logger.Info("schema up to date")
		return nil
	},
}
