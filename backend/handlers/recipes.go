package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ellavondegurechaff/recipe-store/backend/models"
	"github.com/ellavondegurechaff/recipe-store/backend/utils"
	"github.com/ellavondegurechaff/recipe-store/internal/domain/recipes"
)

const (
	messageRecipeDeleted = "Recipe deleted"
	messageRecipeUpdated = "Recipe updated"
)

// recipeID reads the :id route parameter. A value that is not an int64
// cannot name a stored recipe, so it is reported as not found.
func recipeID(c *fiber.Ctx) (int64, bool) {
	id, err := parseInt64(c.Params("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func RecipesList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := webApp.Recipes.List(c.UserContext())
		if err != nil {
			slog.Error("Failed to list recipes", slog.String("error", err.Error()))
			return utils.SendServiceError(c, err)
		}
		return utils.SendJSON(c, fiber.StatusOK, models.RecipeListResponse{Recipes: list})
	}
}

func RecipesCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input recipes.RecipeInput
		if err := utils.DecodeJSON(c, &input); err != nil {
			return utils.SendBadRequest(c, "Invalid request body: "+err.Error(), nil)
		}

		recipe, err := webApp.Recipes.Create(c.UserContext(), input)
		if err != nil {
			slog.Error("Failed to create recipe",
				slog.String("recipe_name", input.RecipeName),
				slog.String("error", err.Error()))
			return utils.SendServiceError(c, err)
		}

		slog.Info("Recipe created",
			slog.Int64("recipe_id", recipe.ID),
			slog.String("recipe_name", recipe.RecipeName))

		return utils.SendJSON(c, fiber.StatusOK, recipe)
	}
}

func RecipesDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recipeID(c)
		if !ok {
			return utils.SendNotFound(c, recipes.ErrNotFound.Error())
		}

		recipe, err := webApp.Recipes.Get(c.UserContext(), id)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendJSON(c, fiber.StatusOK, recipe)
	}
}

func RecipesUpdate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recipeID(c)
		if !ok {
			return utils.SendNotFound(c, recipes.ErrNotFound.Error())
		}

		var input recipes.RecipeInput
		if err := utils.DecodeJSON(c, &input); err != nil {
			return utils.SendBadRequest(c, "Invalid request body: "+err.Error(), nil)
		}

		if err := webApp.Recipes.Update(c.UserContext(), id, input); err != nil {
			slog.Warn("Failed to update recipe",
				slog.Int64("recipe_id", id),
				slog.String("error", err.Error()))
			return utils.SendServiceError(c, err)
		}

		slog.Info("Recipe updated", slog.Int64("recipe_id", id))
		return utils.SendMessage(c, messageRecipeUpdated)
	}
}

func RecipesDelete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recipeID(c)
		if !ok {
			return utils.SendNotFound(c, recipes.ErrNotFound.Error())
		}
		return deleteRecipe(c, webApp, id)
	}
}

// RecipesDeleteByBody serves DELETE / with {"id": n}.
func RecipesDeleteByBody(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.DeleteRequest
		if err := utils.DecodeJSON(c, &req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body: "+err.Error(), nil)
		}
		if req.ID == nil {
			return utils.SendBadRequest(c, "id is required", map[string]string{
				"id": "is required",
			})
		}
		return deleteRecipe(c, webApp, int64(*req.ID))
	}
}

func deleteRecipe(c *fiber.Ctx, webApp *WebApp, id int64) error {
	if err := webApp.Recipes.Delete(c.UserContext(), id); err != nil {
		slog.Warn("Failed to delete recipe",
			slog.Int64("recipe_id", id),
			slog.String("error", err.Error()))
		return utils.SendServiceError(c, err)
	}

	slog.Info("Recipe deleted", slog.Int64("recipe_id", id))
	return utils.SendMessage(c, messageRecipeDeleted)
}
