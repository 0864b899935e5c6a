package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ellavondegurechaff/recipe-store/backend"
	"github.com/ellavondegurechaff/recipe-store/backend/handlers"
	"github.com/ellavondegurechaff/recipe-store/internal/domain/recipes"
	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database"
	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database/repositories"
	"github.com/ellavondegurechaff/recipe-store/internal/logger"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	skipMigrate  bool
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "run the recipe HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCMD.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not create the schema before serving")
	rootCmd.AddCommand(serveCMD)
}

func serve(ctx context.Context) error {
	slog.Info("Starting Recipe Store API",
		slog.String("version", buildVersion),
		slog.String("commit", buildCommit))

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		return err
	}
	defer db.Close()

	logger.LogSystem("Database connected successfully",
		slog.Duration("took", time.Since(dbStartTime)))

	if !skipMigrate {
		if err := db.Migrate(ctx); err != nil {
			logger.LogError("Schema migration failed", err)
			return err
		}
	}

	repo := repositories.NewRecipeRepository(db.BunDB(), cfg.DB.QueryTimeout.Duration)
	webApp := &handlers.WebApp{
		Config:  cfg,
		DB:      db,
		Recipes: recipes.NewService(repo),
		Version: buildVersion,
		Commit:  buildCommit,
	}

	g, gctx := errgroup.WithContext(ctx)
	app := backend.NewApp(gctx, webApp, cfg.Web)
	address := cfg.Web.Address()

	g.Go(func() error {
		slog.Info("Starting backend server", slog.String("address", address))
		return app.Listen(address)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down backend server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout.Duration)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Server stopped with error", slog.String("error", err.Error()))
		return err
	}

	slog.Info("Backend server shutdown complete")
	return nil
}
