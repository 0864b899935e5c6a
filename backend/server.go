package backend

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ellavondegurechaff/recipe-store/backend/handlers"
	"github.com/ellavondegurechaff/recipe-store/backend/middleware"
	"github.com/ellavondegurechaff/recipe-store/internal/config"
)

// NewApp builds the Fiber application serving the recipe API. ctx bounds
// background work owned by middleware.
func NewApp(ctx context.Context, webApp *handlers.WebApp, cfg config.WebConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:                 "Recipe Store API",
		ErrorHandler:            middleware.CustomErrorHandler,
		BodyLimit:               cfg.BodyLimit,
		ProxyHeader:             cfg.ProxyHeader,
		EnableTrustedProxyCheck: len(cfg.TrustedProxies) > 0,
		TrustedProxies:          cfg.TrustedProxies,
		DisableStartupMessage:   true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Requested-With",
	}))
	app.Use(middleware.LoggingMiddleware())
	app.Use(middleware.Metrics())
	if cfg.RateLimit > 0 {
		app.Use(middleware.RateLimit(ctx, cfg.RateLimit))
	}

	setupRoutes(app, webApp)

	return app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	// Operational endpoints first so they never reach /:id
	app.Get("/health", handlers.HealthCheck(webApp))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", handlers.RecipesList(webApp))
	app.Post("/", handlers.RecipesCreate(webApp))
	app.Delete("/", handlers.RecipesDeleteByBody(webApp))

	app.Get("/:id<int>", handlers.RecipesDetail(webApp))
	app.Put("/:id<int>", handlers.RecipesUpdate(webApp))
	app.Delete("/:id<int>", handlers.RecipesDelete(webApp))
}
