package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/foodgram/internal/fixtures"
	"github.com/BruksfildServices01/foodgram/internal/logger"
)

var (
	ingredientsFile string
	tagsFile        string
)

var loadDataCmd = &cobra.Command{
	Use:   "load-data",
	Short: "Load ingredients and tags from JSON, CSV or YAML files",
	Long: `Load the ingredient and tag catalogs. Existing ingredients with the same
name and unit are skipped; existing tags are matched by slug and renamed.`,
	RunE: runLoadData,
}

func init() {
	loadDataCmd.Flags().StringVar(&ingredientsFile, "ingredients", "", "Ingredients file (.json, .csv, .yaml)")
	loadDataCmd.Flags().StringVar(&tagsFile, "tags", "", "Tags file (.json, .csv, .yaml)")
}

func runLoadData(cmd *cobra.Command, _ []string) error {
	if ingredientsFile == "" && tagsFile == "" {
		return errors.New("nothing to load: pass --ingredients and/or --tags")
	}

	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := cmd.Context()
	conn, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}

	if ingredientsFile != "" {
		rows, err := fixtures.ReadIngredients(ingredientsFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", ingredientsFile, err)
		}
		n, err := fixtures.LoadIngredients(ctx, conn, rows)
		if err != nil {
			return fmt.Errorf("load ingredients: %w", err)
		}
		logger.Info("ingredients loaded", zap.Int("read", len(rows)), zap.Int64("inserted", n))
	}

	if tagsFile != "" {
		rows, err := fixtures.ReadTags(tagsFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", tagsFile, err)
		}
		n, err := fixtures.LoadTags(ctx, conn, rows)
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		logger.Info("tags loaded", zap.Int("read", len(rows)), zap.Int64("affected", n))
	}
	return nil
}
