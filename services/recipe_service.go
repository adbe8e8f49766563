package services

import (
	"errors"
	"fmt"

	"foodgram-backend/models"
	"foodgram-backend/repositories"

	"gorm.io/gorm"
)

type RecipeService interface {
	CreateRecipe(req models.RecipeRequest, authorID uint) (*models.Recipe, error)
	GetRecipe(id uint) (*models.Recipe, error)
	GetRecipes(params models.RecipeListParams) ([]models.Recipe, int64, error)
	UpdateRecipe(id uint, req models.RecipeRequest, userID uint) (*models.Recipe, error)
	DeleteRecipe(id uint, userID uint) error
}

type recipeService struct {
	recipeRepo     repositories.RecipeRepository
	tagRepo        repositories.TagRepository
	ingredientRepo repositories.IngredientRepository
}

func NewRecipeService(recipeRepo repositories.RecipeRepository, tagRepo repositories.TagRepository, ingredientRepo repositories.IngredientRepository) RecipeService {
	return &recipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
	}
}

// CreateRecipe validates the submission, resolves its references and
// persists the recipe with all association rows as one atomic unit.
func (s *recipeService) CreateRecipe(req models.RecipeRequest, authorID uint) (*models.Recipe, error) {
	if err := ValidateComposition(req); err != nil {
		return nil, err
	}

	lines, tags, err := s.resolveReferences(req)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Ingredients: lines,
		Tags:        tags,
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}

	// Reload so lines carry resolved ingredient names and units.
	return s.recipeRepo.GetByID(recipe.ID)
}

func (s *recipeService) GetRecipe(id uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", models.ErrUnknownReference, id)
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetRecipes(params models.RecipeListParams) ([]models.Recipe, int64, error) {
	return s.recipeRepo.GetList(params)
}

// UpdateRecipe replaces the whole association set of the recipe. The
// stored author must match the acting user; the author is never
// reassigned.
func (s *recipeService) UpdateRecipe(id uint, req models.RecipeRequest, userID uint) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(id)
	if err != nil {
		return nil, err
	}

	if recipe.AuthorID != userID {
		return nil, fmt.Errorf("%w: only the author can update a recipe", models.ErrAuthorization)
	}

	if err := ValidateComposition(req); err != nil {
		return nil, err
	}

	lines, tags, err := s.resolveReferences(req)
	if err != nil {
		return nil, err
	}

	recipe.Name = req.Name
	recipe.Image = req.Image
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime

	if err := s.recipeRepo.ReplaceAssociations(recipe, lines, tags); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(recipe.ID)
}

func (s *recipeService) DeleteRecipe(id uint, userID uint) error {
	recipe, err := s.GetRecipe(id)
	if err != nil {
		return err
	}

	if recipe.AuthorID != userID {
		return fmt.Errorf("%w: only the author can delete a recipe", models.ErrAuthorization)
	}

	return s.recipeRepo.Delete(id)
}

// resolveReferences turns a validated submission into association rows,
// rejecting ids that do not resolve against the reference tables.
func (s *recipeService) resolveReferences(req models.RecipeRequest) ([]models.IngredientLine, []models.Tag, error) {
	ingredientIDs := make([]uint, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		ingredientIDs = append(ingredientIDs, line.ID)
	}

	ingredients, err := s.ingredientRepo.GetByIDs(ingredientIDs)
	if err != nil {
		return nil, nil, err
	}

	ingredientByID := make(map[uint]models.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientByID[ingredient.ID] = ingredient
	}

	lines := make([]models.IngredientLine, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		if _, ok := ingredientByID[line.ID]; !ok {
			return nil, nil, fmt.Errorf("%w: ingredient %d", models.ErrUnknownReference, line.ID)
		}
		lines = append(lines, models.IngredientLine{
			IngredientID: line.ID,
			Amount:       line.Amount,
		})
	}

	tags, err := s.tagRepo.GetByIDs(req.Tags)
	if err != nil {
		return nil, nil, err
	}

	tagByID := make(map[uint]models.Tag, len(tags))
	for _, tag := range tags {
		tagByID[tag.ID] = tag
	}

	ordered := make([]models.Tag, 0, len(req.Tags))
	for _, tagID := range req.Tags {
		tag, ok := tagByID[tagID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: tag %d", models.ErrUnknownReference, tagID)
		}
		ordered = append(ordered, tag)
	}

	return lines, ordered, nil
}
