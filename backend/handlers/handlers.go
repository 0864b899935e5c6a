package handlers

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ellavondegurechaff/recipe-store/backend/models"
	"github.com/ellavondegurechaff/recipe-store/backend/utils"
	"github.com/ellavondegurechaff/recipe-store/internal/config"
	"github.com/ellavondegurechaff/recipe-store/internal/domain/recipes"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config  *config.Config
	DB      Pinger
	Recipes recipes.Service
	Version string
	Commit  string
}

// parseInt64 is a utility function to parse int64 from string
func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := models.NewHealthCheck(webApp.Version, webApp.Commit)

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := webApp.DB.Ping(ctx); err != nil {
			slog.Warn("Health check: database unreachable",
				slog.String("type", "http"),
				slog.String("error", err.Error()))
			health.AddComponent("database", "unhealthy", err.Error())
		} else {
			health.AddComponent("database", "healthy", "")
		}

		status := fiber.StatusOK
		if health.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return utils.SendJSON(c, status, health)
	}
}
