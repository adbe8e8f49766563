package services

import (
	"testing"

	"foodgram-backend/models"
	"foodgram-backend/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newShoppingListService(db *gorm.DB) ShoppingListService {
	return NewShoppingListService(repositories.NewRecipeRepository(db))
}

// seedCartRecipe creates a recipe with the given ingredient lines and puts
// it into the user's cart.
func seedCartRecipe(t *testing.T, db *gorm.DB, userID, authorID uint, name string, lines []models.IngredientLineRequest) *models.Recipe {
	t.Helper()

	tag := seedTag(t, db, name[:min(len(name), 10)])
	req := recipeRequest(lines, []uint{tag.ID})
	req.Name = name

	recipe, err := newRecipeService(db).CreateRecipe(req, authorID)
	require.NoError(t, err)

	_, err = newRelationService(db).AddToCart(userID, recipe.ID)
	require.NoError(t, err)
	return recipe
}

func TestShoppingListSumsAcrossRecipes(t *testing.T) {
	db := newTestDB(t)
	svc := newShoppingListService(db)

	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	flour := seedIngredient(t, db, "flour", "g")
	seedCartRecipe(t, db, user.ID, author.ID, "Pancakes", []models.IngredientLineRequest{
		{ID: flour.ID, Amount: 200},
	})
	seedCartRecipe(t, db, user.ID, author.ID, "Bread", []models.IngredientLineRequest{
		{ID: flour.ID, Amount: 150},
	})

	items, err := svc.Aggregate(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ShoppingListItem{Name: "flour", MeasurementUnit: "g", TotalAmount: 350}, items[0])
}

func TestShoppingListMergesDuplicateIngredientRows(t *testing.T) {
	db := newTestDB(t)
	svc := newShoppingListService(db)

	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	// Two distinct reference rows carrying the same name and unit merge
	// into one group.
	saltA := seedIngredient(t, db, "salt", "g")
	saltB := seedIngredient(t, db, "salt", "g")
	require.NotEqual(t, saltA.ID, saltB.ID)

	seedCartRecipe(t, db, user.ID, author.ID, "Soup", []models.IngredientLineRequest{
		{ID: saltA.ID, Amount: 10},
	})
	seedCartRecipe(t, db, user.ID, author.ID, "Stew", []models.IngredientLineRequest{
		{ID: saltB.ID, Amount: 5},
	})

	items, err := svc.Aggregate(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ShoppingListItem{Name: "salt", MeasurementUnit: "g", TotalAmount: 15}, items[0])
}

func TestShoppingListOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := newShoppingListService(db)

	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	sugarKg := seedIngredient(t, db, "sugar", "kg")
	sugarG := seedIngredient(t, db, "sugar", "g")
	butter := seedIngredient(t, db, "butter", "g")

	seedCartRecipe(t, db, user.ID, author.ID, "Cake", []models.IngredientLineRequest{
		{ID: sugarKg.ID, Amount: 1},
		{ID: butter.ID, Amount: 100},
	})
	seedCartRecipe(t, db, user.ID, author.ID, "Tea", []models.IngredientLineRequest{
		{ID: sugarG.ID, Amount: 20},
	})

	items, err := svc.Aggregate(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Ordered by name, then by unit within the same name.
	assert.Equal(t, "butter", items[0].Name)
	assert.Equal(t, "sugar", items[1].Name)
	assert.Equal(t, "g", items[1].MeasurementUnit)
	assert.Equal(t, "sugar", items[2].Name)
	assert.Equal(t, "kg", items[2].MeasurementUnit)
}

func TestShoppingListEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newShoppingListService(db)

	user := seedUser(t, db, "alice")

	items, err := svc.Aggregate(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	text, err := svc.RenderText(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Список покупок:\n", text)
}

func TestShoppingListScopedToUser(t *testing.T) {
	db := newTestDB(t)
	svc := newShoppingListService(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	flour := seedIngredient(t, db, "flour", "g")
	seedCartRecipe(t, db, alice.ID, bob.ID, "Pancakes", []models.IngredientLineRequest{
		{ID: flour.ID, Amount: 200},
	})

	items, err := svc.Aggregate(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestShoppingListReflectsCartState(t *testing.T) {
	db := newTestDB(t)
	svc := newShoppingListService(db)
	relations := newRelationService(db)

	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	flour := seedIngredient(t, db, "flour", "g")
	milk := seedIngredient(t, db, "milk", "ml")
	pancakes := seedCartRecipe(t, db, user.ID, author.ID, "Pancakes", []models.IngredientLineRequest{
		{ID: flour.ID, Amount: 200},
		{ID: milk.ID, Amount: 300},
	})
	seedCartRecipe(t, db, user.ID, author.ID, "Bread", []models.IngredientLineRequest{
		{ID: flour.ID, Amount: 150},
	})

	// Aggregation is read-only; repeated calls see the same totals.
	for i := 0; i < 2; i++ {
		items, err := svc.Aggregate(user.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 350, items[0].TotalAmount)
	}

	require.NoError(t, relations.RemoveFromCart(user.ID, pancakes.ID))

	items, err := svc.Aggregate(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ShoppingListItem{Name: "flour", MeasurementUnit: "g", TotalAmount: 150}, items[0])
}

func TestRenderTextFormat(t *testing.T) {
	db := newTestDB(t)
	svc := newShoppingListService(db)

	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	flour := seedIngredient(t, db, "мука", "г")
	milk := seedIngredient(t, db, "молоко", "мл")
	seedCartRecipe(t, db, user.ID, author.ID, "Блины", []models.IngredientLineRequest{
		{ID: flour.ID, Amount: 200},
		{ID: milk.ID, Amount: 300},
	})

	text, err := svc.RenderText(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Список покупок:\nмолоко - 300, мл\nмука - 200, г\n", text)
}
