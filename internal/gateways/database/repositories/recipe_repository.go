package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/ellavondegurechaff/recipe-store/internal/domain/recipes"
	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database/models"
)

const recipeEntity = "recipe"

type recipeRepository struct {
	*BaseRepository
}

var _ recipes.Repository = &recipeRepository{}

func NewRecipeRepository(db *bun.DB, timeout time.Duration) *recipeRepository {
	return &recipeRepository{BaseRepository: NewBaseRepository(db, timeout)}
}

func (r *recipeRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	rows := make([]*models.Recipe, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Order("recipe_name ASC", "id ASC").
		Scan(ctx)

	return rows, r.HandleErrorWithID("list", recipeEntity, nil, err)
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.DateCreated.IsZero() {
		recipe.DateCreated = time.Now().UTC()
	}

	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(recipe).
			Returning("*").
			Exec(ctx)
		return err
	})

	return r.HandleErrorWithID("create", recipeEntity, nil, err)
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	recipe := new(models.Recipe)
	err := r.db.NewSelect().
		Model(recipe).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", recipeEntity, id, err)
	}
	return recipe, nil
}

// Update overwrites the content columns and date_created of an existing row.
func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(recipe).
			Column("recipe_name", "ingredients", "instructions", "date_created").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})

	return r.HandleErrorWithID("update", recipeEntity, recipe.ID, err)
}

func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.Recipe)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})

	return r.HandleErrorWithID("delete", recipeEntity, id, err)
}
