package repositories

import (
	"fmt"

	"foodgram-backend/models"

	"gorm.io/gorm"
)

// RelationRepository is a single store over the three uniqueness-backed
// (owner, target) pivots. Favorite and CartEntry pair a user with a
// recipe; Subscription pairs a follower with a followed user.
type RelationRepository interface {
	Exists(kind models.RelationKind, ownerID, targetID uint) (bool, error)
	Create(kind models.RelationKind, ownerID, targetID uint) error
	Delete(kind models.RelationKind, ownerID, targetID uint) (bool, error)
	Following(followerID uint) ([]models.User, error)
}

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func pivotRow(kind models.RelationKind, ownerID, targetID uint) (interface{}, error) {
	switch kind {
	case models.RelationFavorite:
		return &models.Favorite{UserID: ownerID, RecipeID: targetID}, nil
	case models.RelationCart:
		return &models.CartEntry{UserID: ownerID, RecipeID: targetID}, nil
	case models.RelationSubscription:
		return &models.Subscription{FollowerID: ownerID, FollowingID: targetID}, nil
	}
	return nil, fmt.Errorf("unknown relation kind %q", kind)
}

func (r *relationRepository) scope(kind models.RelationKind, ownerID, targetID uint) (*gorm.DB, error) {
	switch kind {
	case models.RelationFavorite:
		return r.db.Model(&models.Favorite{}).
			Where("user_id = ? AND recipe_id = ?", ownerID, targetID), nil
	case models.RelationCart:
		return r.db.Model(&models.CartEntry{}).
			Where("user_id = ? AND recipe_id = ?", ownerID, targetID), nil
	case models.RelationSubscription:
		return r.db.Model(&models.Subscription{}).
			Where("follower_id = ? AND following_id = ?", ownerID, targetID), nil
	}
	return nil, fmt.Errorf("unknown relation kind %q", kind)
}

func (r *relationRepository) Exists(kind models.RelationKind, ownerID, targetID uint) (bool, error) {
	query, err := r.scope(kind, ownerID, targetID)
	if err != nil {
		return false, err
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *relationRepository) Create(kind models.RelationKind, ownerID, targetID uint) error {
	row, err := pivotRow(kind, ownerID, targetID)
	if err != nil {
		return err
	}
	return r.db.Create(row).Error
}

// Delete reports whether a row was actually removed so the caller can
// distinguish toggle-off from remove-when-absent.
func (r *relationRepository) Delete(kind models.RelationKind, ownerID, targetID uint) (bool, error) {
	query, err := r.scope(kind, ownerID, targetID)
	if err != nil {
		return false, err
	}

	row, err := pivotRow(kind, ownerID, targetID)
	if err != nil {
		return false, err
	}

	result := query.Delete(row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *relationRepository) Following(followerID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN subscriptions ON subscriptions.following_id = users.id").
		Where("subscriptions.follower_id = ?", followerID).
		Preload("Recipes").
		Order("subscriptions.id").
		Find(&users).Error
	return users, err
}
