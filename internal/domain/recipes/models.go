package recipes

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ellavondegurechaff/recipe-store/internal/gateways/database/models"
)

type Recipe struct {
	ID           int64     `json:"id"`
	RecipeName   string    `json:"recipe_name"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	DateCreated  time.Time `json:"date_created"`
}

// RecipeInput is the body accepted by create and update. Instructions must
// be present but may be empty.
type RecipeInput struct {
	RecipeName   string      `json:"recipe_name" validate:"required,max=100"`
	Ingredients  Ingredients `json:"ingredients" validate:"required"`
	Instructions *string     `json:"instructions" validate:"required,max=1000"`
}

func (in RecipeInput) instructions() string {
	if in.Instructions == nil {
		return ""
	}
	return *in.Instructions
}

// Ingredients decodes either a JSON array of strings or a single
// newline-separated string, which is what the web form submits.
type Ingredients []string

func (in *Ingredients) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*in = nil
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		var lines []string
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		*in = lines
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("ingredients must be a list of strings: %w", err)
	}
	*in = list
	return nil
}

func fromModel(m *models.Recipe) Recipe {
	ingredients := m.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return Recipe{
		ID:           m.ID,
		RecipeName:   m.RecipeName,
		Ingredients:  ingredients,
		Instructions: m.Instructions,
		DateCreated:  m.DateCreated,
	}
}
