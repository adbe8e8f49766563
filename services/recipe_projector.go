package services

import "foodgram-backend/models"

// ProjectRecipe shapes a recipe for the response. Summary mode is what
// favorite/cart/subscription listings carry; full mode adds the author,
// associations, body text and the caller's membership flags.
func ProjectRecipe(recipe *models.Recipe, mode models.ProjectionMode, flags models.RecipeFlags) interface{} {
	if mode == models.ProjectionSummary {
		return SummarizeRecipe(recipe)
	}

	lines := make([]models.IngredientLineResponse, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		lines = append(lines, models.IngredientLineResponse{
			ID:              line.IngredientID,
			Name:            line.Ingredient.Name,
			MeasurementUnit: line.Ingredient.MeasurementUnit,
			Amount:          line.Amount,
		})
	}

	tags := recipe.Tags
	if tags == nil {
		tags = []models.Tag{}
	}

	return models.RecipeResponse{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           ProjectUser(&recipe.Author, flags.AuthorSubscribed),
		Ingredients:      lines,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		IsFavorited:      flags.IsFavorited,
		IsInShoppingCart: flags.IsInShoppingCart,
	}
}

func ProjectUser(user *models.User, isSubscribed bool) models.UserSummary {
	return models.UserSummary{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}

func SummarizeRecipe(recipe *models.Recipe) models.RecipeSummary {
	return models.RecipeSummary{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

func SummarizeRecipes(recipes []models.Recipe) []models.RecipeSummary {
	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, SummarizeRecipe(&recipes[i]))
	}
	return summaries
}
