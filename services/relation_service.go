package services

import (
	"errors"
	"fmt"

	"foodgram-backend/models"
	"foodgram-backend/repositories"

	"gorm.io/gorm"
)

// RelationService is the toggle state machine over the favorite, cart and
// subscription pivots. Each pair is either absent or present; adding a
// present pair is a conflict, removing an absent one is a distinct
// absent-relation failure.
type RelationService interface {
	AddFavorite(userID, recipeID uint) (*models.Recipe, error)
	RemoveFavorite(userID, recipeID uint) error
	AddToCart(userID, recipeID uint) (*models.Recipe, error)
	RemoveFromCart(userID, recipeID uint) error
	Subscribe(followerID, followingID uint) (*models.User, error)
	Unsubscribe(followerID, followingID uint) error
	GetSubscriptions(followerID uint) ([]models.SubscriptionResponse, error)
	RecipeFlags(userID uint, recipe *models.Recipe) (models.RecipeFlags, error)
}

type relationService struct {
	relationRepo repositories.RelationRepository
	recipeRepo   repositories.RecipeRepository
	userRepo     repositories.UserRepository
}

func NewRelationService(relationRepo repositories.RelationRepository, recipeRepo repositories.RecipeRepository, userRepo repositories.UserRepository) RelationService {
	return &relationService{
		relationRepo: relationRepo,
		recipeRepo:   recipeRepo,
		userRepo:     userRepo,
	}
}

func (s *relationService) AddFavorite(userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.add(models.RelationFavorite, userID, recipeID, "recipe is already in favorites"); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *relationService) RemoveFavorite(userID, recipeID uint) error {
	return s.remove(models.RelationFavorite, userID, recipeID, "recipe is not in favorites")
}

func (s *relationService) AddToCart(userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.add(models.RelationCart, userID, recipeID, "recipe is already in the shopping cart"); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *relationService) RemoveFromCart(userID, recipeID uint) error {
	return s.remove(models.RelationCart, userID, recipeID, "recipe is not in the shopping cart")
}

func (s *relationService) Subscribe(followerID, followingID uint) (*models.User, error) {
	if followerID == followingID {
		return nil, fmt.Errorf("%w: cannot subscribe to yourself", models.ErrConflict)
	}

	user, err := s.userRepo.GetByID(followingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", models.ErrUnknownReference, followingID)
		}
		return nil, err
	}

	if err := s.add(models.RelationSubscription, followerID, followingID, "already subscribed"); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *relationService) Unsubscribe(followerID, followingID uint) error {
	return s.remove(models.RelationSubscription, followerID, followingID, "not subscribed to this user")
}

func (s *relationService) GetSubscriptions(followerID uint) ([]models.SubscriptionResponse, error) {
	users, err := s.relationRepo.Following(followerID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.SubscriptionResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, models.SubscriptionResponse{
			UserSummary:  ProjectUser(&user, true),
			Recipes:      SummarizeRecipes(user.Recipes),
			RecipesCount: len(user.Recipes),
		})
	}
	return responses, nil
}

func (s *relationService) RecipeFlags(userID uint, recipe *models.Recipe) (models.RecipeFlags, error) {
	var flags models.RecipeFlags
	if userID == 0 {
		return flags, nil
	}

	var err error
	if flags.IsFavorited, err = s.relationRepo.Exists(models.RelationFavorite, userID, recipe.ID); err != nil {
		return flags, err
	}
	if flags.IsInShoppingCart, err = s.relationRepo.Exists(models.RelationCart, userID, recipe.ID); err != nil {
		return flags, err
	}
	if flags.AuthorSubscribed, err = s.relationRepo.Exists(models.RelationSubscription, userID, recipe.AuthorID); err != nil {
		return flags, err
	}
	return flags, nil
}

// add moves a pair from absent to present. The existence check gives the
// friendly message; the unique index remains the backstop, so a
// concurrent duplicate surfaces as the same conflict kind.
func (s *relationService) add(kind models.RelationKind, ownerID, targetID uint, conflictMsg string) error {
	exists, err := s.relationRepo.Exists(kind, ownerID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", models.ErrConflict, conflictMsg)
	}

	if err := s.relationRepo.Create(kind, ownerID, targetID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", models.ErrConflict, conflictMsg)
		}
		return err
	}
	return nil
}

func (s *relationService) remove(kind models.RelationKind, ownerID, targetID uint, absentMsg string) error {
	deleted, err := s.relationRepo.Delete(kind, ownerID, targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", models.ErrAbsentRelation, absentMsg)
	}
	return nil
}

func (s *relationService) getRecipe(recipeID uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", models.ErrUnknownReference, recipeID)
		}
		return nil, err
	}
	return recipe, nil
}
