package repositories_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ellavondegurechaff/recipe-store/internal/config"
	"github.com/ellavondegurechaff/recipe-store/internal/domain/recipes"
	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database"
	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database/models"
	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database/repositories"
)

// openTestDB connects to the database named by RECIPES_TEST_DB_URL, runs the
// migration, and empties the recipe table. Tests are skipped without it.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	url := os.Getenv("RECIPES_TEST_DB_URL")
	if url == "" {
		t.Skip("RECIPES_TEST_DB_URL not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, config.DBConfig{URL: url, PoolSize: 4})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(db.Close)

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	// a second run must be a no-op
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() second run error = %v", err)
	}
	if _, err := db.ExecWithLog(ctx, "TRUNCATE TABLE recipe RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}

func TestRecipeRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewRecipeRepository(db.BunDB(), 5*time.Second)
	ctx := context.Background()

	start := time.Now().UTC().Add(-time.Second)
	tea := &models.Recipe{
		RecipeName:   "Tea",
		Ingredients:  []string{"water", "tea leaves"},
		Instructions: "Boil and steep.",
	}
	if err := repo.Create(ctx, tea); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if tea.ID <= 0 {
		t.Fatalf("Create() id = %d, want positive", tea.ID)
	}
	if tea.DateCreated.Before(start) {
		t.Errorf("Create() date_created = %v, want >= %v", tea.DateCreated, start)
	}

	got, err := repo.GetByID(ctx, tea.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.RecipeName != tea.RecipeName || got.Instructions != tea.Instructions ||
		len(got.Ingredients) != 2 || got.Ingredients[1] != "tea leaves" {
		t.Errorf("GetByID() = %+v, want %+v", got, tea)
	}

	second := &models.Recipe{RecipeName: "Coffee", Ingredients: []string{"beans"}, Instructions: "Brew."}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.ID == tea.ID {
		t.Errorf("Create() reused id %d", tea.ID)
	}
}

func TestRecipeRepository_ListOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewRecipeRepository(db.BunDB(), 5*time.Second)
	ctx := context.Background()

	for _, name := range []string{"Banana Bread", "Apple Pie", "Carrot Cake"} {
		if err := repo.Create(ctx, &models.Recipe{RecipeName: name, Ingredients: []string{}, Instructions: "Bake."}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"Apple Pie", "Banana Bread", "Carrot Cake"}
	if len(rows) != len(want) {
		t.Fatalf("List() returned %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].RecipeName != w {
			t.Errorf("List()[%d] = %q, want %q", i, rows[i].RecipeName, w)
		}
	}
}

func TestRecipeRepository_UpdateAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewRecipeRepository(db.BunDB(), 5*time.Second)
	ctx := context.Background()

	orig := &models.Recipe{RecipeName: "Soup", Ingredients: []string{"water"}, Instructions: "Heat."}
	if err := repo.Create(ctx, orig); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated := &models.Recipe{
		ID:           orig.ID,
		RecipeName:   "Tomato Soup",
		Ingredients:  []string{"water", "tomatoes"},
		Instructions: "Heat and blend.",
		DateCreated:  orig.DateCreated.Add(time.Minute),
	}
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, err := repo.GetByID(ctx, orig.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.RecipeName != "Tomato Soup" || len(got.Ingredients) != 2 || got.Instructions != "Heat and blend." {
		t.Errorf("GetByID() after update = %+v", got)
	}
	if got.DateCreated.Before(orig.DateCreated) {
		t.Errorf("date_created went backwards: %v < %v", got.DateCreated, orig.DateCreated)
	}

	missing := &models.Recipe{ID: 999999, RecipeName: "x", Ingredients: []string{}, Instructions: "y", DateCreated: time.Now()}
	if err := repo.Update(ctx, missing); !errors.Is(err, recipes.ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, orig.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, orig.ID); !errors.Is(err, recipes.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	for i := 0; i < 2; i++ {
		if err := repo.Delete(ctx, orig.ID); !errors.Is(err, recipes.ErrNotFound) {
			t.Errorf("Delete() repeat %d error = %v, want ErrNotFound", i+1, err)
		}
	}
}
