package services

import (
	"fmt"

	"foodgram-backend/models"
)

// ValidateComposition checks a candidate set of ingredient lines and tag
// references before anything touches the store. It is pure and shared by
// create and update.
func ValidateComposition(req models.RecipeRequest) error {
	if len(req.Ingredients) == 0 {
		return fmt.Errorf("%w: recipe must contain at least one ingredient", models.ErrValidation)
	}
	if len(req.Tags) == 0 {
		return fmt.Errorf("%w: recipe must contain at least one tag", models.ErrValidation)
	}

	if req.CookingTime < models.CookingTimeMin || req.CookingTime > models.CookingTimeMax {
		return fmt.Errorf("%w: cooking_time must be between %d and %d, got %d",
			models.ErrValidation, models.CookingTimeMin, models.CookingTimeMax, req.CookingTime)
	}

	seenIngredients := make(map[uint]bool, len(req.Ingredients))
	for i, line := range req.Ingredients {
		if line.Amount < models.AmountMin || line.Amount > models.AmountMax {
			return fmt.Errorf("%w: amount must be between %d and %d, got %d (line %d, ingredient %d)",
				models.ErrValidation, models.AmountMin, models.AmountMax, line.Amount, i+1, line.ID)
		}
		if seenIngredients[line.ID] {
			return fmt.Errorf("%w: ingredient %d appears more than once", models.ErrDuplicateAssociation, line.ID)
		}
		seenIngredients[line.ID] = true
	}

	seenTags := make(map[uint]bool, len(req.Tags))
	for _, tagID := range req.Tags {
		if seenTags[tagID] {
			return fmt.Errorf("%w: tag %d appears more than once", models.ErrDuplicateAssociation, tagID)
		}
		seenTags[tagID] = true
	}

	return nil
}
