package services

import (
	"fmt"
	"strings"

	"foodgram-backend/models"
	"foodgram-backend/repositories"
)

// Header line of the downloadable list. Literal content, matching what
// clients already parse.
const shoppingListHeader = "Список покупок:"

// ShoppingListService reduces the ingredient lines of every recipe in the
// user's cart into one consolidated list. Each call re-reads the current
// cart state; nothing is cached.
type ShoppingListService interface {
	Aggregate(userID uint) ([]models.ShoppingListItem, error)
	RenderText(userID uint) (string, error)
}

type shoppingListService struct {
	recipeRepo repositories.RecipeRepository
}

func NewShoppingListService(recipeRepo repositories.RecipeRepository) ShoppingListService {
	return &shoppingListService{recipeRepo: recipeRepo}
}

func (s *shoppingListService) Aggregate(userID uint) ([]models.ShoppingListItem, error) {
	items, err := s.recipeRepo.CartIngredientTotals(userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ShoppingListItem{}
	}
	return items, nil
}

func (s *shoppingListService) RenderText(userID uint) (string, error) {
	items, err := s.Aggregate(userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(shoppingListHeader + "\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s - %d, %s\n", item.Name, item.TotalAmount, item.MeasurementUnit)
	}
	return b.String(), nil
}
