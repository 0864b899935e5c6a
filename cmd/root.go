package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ellavondegurechaff/recipe-store/internal/config"
	"github.com/ellavondegurechaff/recipe-store/internal/logger"
)

const appName = "recipes"

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Recipe store HTTP service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		slog.SetDefault(logger.New(appName, cfg.Log, os.Stdout))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
}

// Execute runs the command line with ctx cancelled on SIGINT/SIGTERM.
func Execute(ctx context.Context, version, commit string) error {
	buildVersion, buildCommit = version, commit
	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", version, commit)
	return rootCmd.ExecuteContext(ctx)
}
