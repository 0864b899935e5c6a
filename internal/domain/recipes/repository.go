package recipes

import (
	"context"

	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database/models"
)

//go:generate mockgen -destination=mock/repository.go -package=mock . Repository

// Repository persists recipes. Update and Delete return an error matching
// ErrNotFound when no row has the given id; every write runs in its own
// transaction.
type Repository interface {
	List(ctx context.Context) ([]*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id int64) error
}
