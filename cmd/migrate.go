package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "create the recipe schema if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			return err
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			slog.Error("Migration failed", "error", err)
			return err
		}

		version, err := db.SchemaVersion(ctx)
		if err != nil {
			return err
		}
		slog.Info("Migration completed successfully!", slog.Int("schema_version", version))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCMD)
}
