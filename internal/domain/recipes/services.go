package recipes

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database/models"
)

//go:generate mockgen -destination=mock/service.go -package=mock . Service

type Service interface {
	List(ctx context.Context) ([]Recipe, error)
	Create(ctx context.Context, input RecipeInput) (*Recipe, error)
	Get(ctx context.Context, id int64) (*Recipe, error)
	Update(ctx context.Context, id int64, input RecipeInput) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repository Repository
	validate   *validator.Validate
	now        func() time.Time
}

var _ Service = (*service)(nil)

type Option func(*service)

// WithClock replaces the clock used for date_created.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func NewService(repository Repository, opts ...Option) *service {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	s := &service{
		repository: repository,
		validate:   validate,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) List(ctx context.Context) ([]Recipe, error) {
	rows, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	out := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input RecipeInput) (*Recipe, error) {
	if err := s.Validate(input); err != nil {
		return nil, err
	}

	row := &models.Recipe{
		RecipeName:   input.RecipeName,
		Ingredients:  []string(input.Ingredients),
		Instructions: input.instructions(),
		DateCreated:  s.now(),
	}
	if err := s.repository.Create(ctx, row); err != nil {
		return nil, err
	}

	recipe := fromModel(row)
	return &recipe, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Recipe, error) {
	row, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe := fromModel(row)
	return &recipe, nil
}

// Update replaces every content field and resets date_created to now.
func (s *service) Update(ctx context.Context, id int64, input RecipeInput) error {
	if err := s.Validate(input); err != nil {
		return err
	}

	return s.repository.Update(ctx, &models.Recipe{
		ID:           id,
		RecipeName:   input.RecipeName,
		Ingredients:  []string(input.Ingredients),
		Instructions: input.instructions(),
		DateCreated:  s.now(),
	})
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

// Validate checks input and returns a *ValidationError describing every
// failing field.
func (s *service) Validate(input RecipeInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate recipe: %w", err)
	}

	ve := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fe.Field()] = describe(fe)
	}
	return ve
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
