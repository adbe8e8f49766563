package models

import "time"

// RelationKind selects one of the uniqueness-constrained (owner, target)
// pivots managed by the toggle relation service.
type RelationKind string

const (
	RelationFavorite     RelationKind = "favorite"
	RelationCart         RelationKind = "shopping_cart"
	RelationSubscription RelationKind = "subscription"
)

type Favorite struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uidx_favorite_user_recipe"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;uniqueIndex:uidx_favorite_user_recipe"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

type CartEntry struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uidx_cart_user_recipe"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;uniqueIndex:uidx_cart_user_recipe"`
	CreatedAt time.Time `json:"created_at"`
}

func (CartEntry) TableName() string {
	return "cart_entries"
}

type Subscription struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	FollowerID  uint      `json:"follower_id" gorm:"not null;uniqueIndex:uidx_subscription_pair"`
	FollowingID uint      `json:"following_id" gorm:"not null;uniqueIndex:uidx_subscription_pair"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
