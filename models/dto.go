package models

type RegisterRequest struct {
	Username  string   `json:"username" validate:"required,min=3,max=150"`
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"first_name" validate:"required,max=150"`
	LastName  string   `json:"last_name" validate:"required,max=150"`
	Password  string   `json:"password" validate:"required,min=6"`
	Role      UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type IngredientLineRequest struct {
	ID     uint `json:"id" validate:"required"`
	Amount int  `json:"amount" validate:"required"`
}

type RecipeRequest struct {
	Name        string                  `json:"name" validate:"required,min=1,max=200"`
	Text        string                  `json:"text" validate:"required"`
	Image       string                  `json:"image" validate:"required"`
	CookingTime int                     `json:"cooking_time" validate:"required"`
	Ingredients []IngredientLineRequest `json:"ingredients"`
	Tags        []uint                  `json:"tags"`
}

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=10"`
	Color string `json:"color" validate:"required,min=1,max=100"`
	Slug  string `json:"slug" validate:"required,min=1,max=10"`
}

type RecipeListParams struct {
	AuthorID uint `form:"author_id"`
	TagID    uint `form:"tag_id"`
	Page     int  `form:"page,default=1"`
	Limit    int  `form:"limit,default=10"`
}

// ProjectionMode picks which fields of a recipe representation are
// exposed. Summary is what favorite/cart/subscription listings carry.
type ProjectionMode int

const (
	ProjectionFull ProjectionMode = iota
	ProjectionSummary
)

type UserSummary struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type IngredientLineResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeResponse struct {
	ID               uint                     `json:"id"`
	Tags             []Tag                    `json:"tags"`
	Author           UserSummary              `json:"author"`
	Ingredients      []IngredientLineResponse `json:"ingredients"`
	Name             string                   `json:"name"`
	Image            string                   `json:"image"`
	Text             string                   `json:"text"`
	CookingTime      int                      `json:"cooking_time"`
	IsFavorited      bool                     `json:"is_favorited"`
	IsInShoppingCart bool                     `json:"is_in_shopping_cart"`
}

type RecipeSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeFlags are the per-caller membership flags of the full projection.
type RecipeFlags struct {
	IsFavorited      bool
	IsInShoppingCart bool
	AuthorSubscribed bool
}

type SubscriptionResponse struct {
	UserSummary
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int             `json:"recipes_count"`
}

// ShoppingListItem is one consolidated group of the aggregated cart.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	TotalAmount     int    `json:"total_amount"`
}
