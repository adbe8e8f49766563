package services

import (
	"errors"
	"fmt"

	"foodgram-backend/models"
	"foodgram-backend/repositories"

	"gorm.io/gorm"
)

type IngredientService interface {
	GetIngredients(namePrefix string) ([]models.Ingredient, error)
	GetIngredient(id uint) (*models.Ingredient, error)
}

type ingredientService struct {
	ingredientRepo repositories.IngredientRepository
}

func NewIngredientService(ingredientRepo repositories.IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepo: ingredientRepo}
}

func (s *ingredientService) GetIngredients(namePrefix string) ([]models.Ingredient, error) {
	return s.ingredientRepo.Search(namePrefix)
}

func (s *ingredientService) GetIngredient(id uint) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ingredient %d", models.ErrUnknownReference, id)
		}
		return nil, err
	}
	return ingredient, nil
}
