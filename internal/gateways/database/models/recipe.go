package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Recipe struct {
	bun.BaseModel `bun:"table:recipe,alias:r"`

	ID           int64     `bun:"id,pk,autoincrement"`
	RecipeName   string    `bun:"recipe_name,type:varchar(100),notnull"`
	Ingredients  []string  `bun:"ingredients,type:varchar[],array,notnull"`
	Instructions string    `bun:"instructions,type:varchar(1000),notnull"`
	DateCreated  time.Time `bun:"date_created,notnull,default:current_timestamp"`
}
