package repositories

import (
	"foodgram-backend/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	GetByID(id uint) (*models.Recipe, error)
	GetList(params models.RecipeListParams) ([]models.Recipe, int64, error)
	GetByAuthor(authorID uint) ([]models.Recipe, error)
	ReplaceAssociations(recipe *models.Recipe, lines []models.IngredientLine, tags []models.Tag) error
	Delete(id uint) error
	CartIngredientTotals(userID uint) ([]models.ShoppingListItem, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists the recipe together with its ingredient lines and tag
// links. gorm writes the associations in the same transaction as the row
// itself, so a failure leaves nothing behind.
func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Omit("Tags.*") links the existing tag rows without rewriting them.
		return tx.Omit("Tags.*").Create(recipe).Error
	})
}

func (r *recipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	return &recipe, err
}

func (r *recipeRepository) GetList(params models.RecipeListParams) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	query := r.db.Model(&models.Recipe{}).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient")

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.TagID > 0 {
		query = query.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id = ?", params.TagID)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("recipes.id desc").Offset(offset).Limit(params.Limit).Find(&recipes).Error

	return recipes, total, err
}

func (r *recipeRepository) GetByAuthor(authorID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Where("author_id = ?", authorID).Order("id desc").Find(&recipes).Error
	return recipes, err
}

// ReplaceAssociations rewrites the recipe scalars and its full association
// set in one transaction: clear the old lines and tag links, recreate the
// new ones. Readers see either the old set or the new set, never a mix.
func (r *recipeRepository) ReplaceAssociations(recipe *models.Recipe, lines []models.IngredientLine, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientLine{}).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}

		if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
			return err
		}

		return tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(map[string]interface{}{
			"name":         recipe.Name,
			"image":        recipe.Image,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
		}).Error
	})
}

// Delete removes the recipe and every row referencing it. The pivot rows
// carry no lifecycle of their own, so they go with the recipe.
func (r *recipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.IngredientLine{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.CartEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

// CartIngredientTotals reduces the ingredient lines of every recipe in the
// user's cart into one row per (name, measurement unit) group. Grouping is
// by name and unit rather than ingredient id, so reference-data duplicates
// sharing both merge into a single line.
func (r *recipeRepository) CartIngredientTotals(userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem

	query := `
		SELECT
			ingredients.name AS name,
			ingredients.measurement_unit AS measurement_unit,
			SUM(ingredient_lines.amount) AS total_amount
		FROM ingredient_lines
		JOIN cart_entries ON cart_entries.recipe_id = ingredient_lines.recipe_id
		JOIN ingredients ON ingredients.id = ingredient_lines.ingredient_id
		JOIN recipes ON recipes.id = ingredient_lines.recipe_id
		WHERE cart_entries.user_id = ? AND recipes.deleted_at IS NULL
		GROUP BY ingredients.name, ingredients.measurement_unit
		ORDER BY ingredients.name, ingredients.measurement_unit
	`

	err := r.db.Raw(query, userID).Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
