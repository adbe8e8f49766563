package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CookingTimeMin = 1
	CookingTimeMax = 300
	AmountMin      = 1
	AmountMax      = 1000
)

type Recipe struct {
	ID          uint             `json:"id" gorm:"primarykey"`
	AuthorID    uint             `json:"author_id" gorm:"not null"`
	Author      User             `json:"author" gorm:"foreignKey:AuthorID"`
	Name        string           `json:"name" gorm:"not null;size:200"`
	Image       string           `json:"image" gorm:"not null"`
	Text        string           `json:"text" gorm:"type:text"`
	CookingTime int              `json:"cooking_time" gorm:"not null"`
	Ingredients []IngredientLine `json:"ingredients" gorm:"foreignKey:RecipeID"`
	Tags        []Tag            `json:"tags" gorm:"many2many:recipe_tags;"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"-" gorm:"index"`
}

// IngredientLine is one (ingredient, amount) row of a recipe. The
// composite unique index backs the duplicate-ingredient invariant.
type IngredientLine struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	RecipeID     uint       `json:"recipe_id" gorm:"not null;uniqueIndex:uidx_recipe_ingredient"`
	IngredientID uint       `json:"ingredient_id" gorm:"not null;uniqueIndex:uidx_recipe_ingredient"`
	Ingredient   Ingredient `json:"ingredient" gorm:"foreignKey:IngredientID"`
	Amount       int        `json:"amount" gorm:"not null"`
}

func (IngredientLine) TableName() string {
	return "ingredient_lines"
}
