package repositories

import (
	"foodgram-backend/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	GetByID(id uint) (*models.Ingredient, error)
	GetByIDs(ids []uint) ([]models.Ingredient, error)
	Search(namePrefix string) ([]models.Ingredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.First(&ingredient, id).Error
	return &ingredient, err
}

func (r *ingredientRepository) GetByIDs(ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) Search(namePrefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := r.db.Order("name")
	if namePrefix != "" {
		query = query.Where("name LIKE ?", namePrefix+"%")
	}
	err := query.Find(&ingredients).Error
	return ingredients, err
}
