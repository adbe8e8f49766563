package services

import (
	"fmt"
	"strings"
	"testing"

	"foodgram-backend/models"
	"foodgram-backend/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database per test keeps connections of the same
	// pool on one schema without sharing state across tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.IngredientLine{},
		&models.Favorite{},
		&models.CartEntry{},
		&models.Subscription{},
	))

	return db
}

func newRecipeService(db *gorm.DB) RecipeService {
	return NewRecipeService(
		repositories.NewRecipeRepository(db),
		repositories.NewTagRepository(db),
		repositories.NewIngredientRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{
		Name:  name,
		Color: "#" + name,
		Slug:  name,
	}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func seedIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func recipeRequest(lines []models.IngredientLineRequest, tags []uint) models.RecipeRequest {
	return models.RecipeRequest{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		Image:       "recipes/images/pancakes.png",
		CookingTime: 20,
		Ingredients: lines,
		Tags:        tags,
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestCreateRecipePersistsAssociations(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	milk := seedIngredient(t, db, "milk", "ml")
	breakfast := seedTag(t, db, "breakfast")
	quick := seedTag(t, db, "quick")

	req := recipeRequest(
		[]models.IngredientLineRequest{
			{ID: flour.ID, Amount: 200},
			{ID: milk.ID, Amount: 300},
		},
		[]uint{breakfast.ID, quick.ID},
	)

	recipe, err := svc.CreateRecipe(req, author.ID)
	require.NoError(t, err)

	assert.Equal(t, author.ID, recipe.AuthorID)
	assert.Equal(t, "Pancakes", recipe.Name)

	amounts := map[uint]int{}
	for _, line := range recipe.Ingredients {
		amounts[line.IngredientID] = line.Amount
	}
	assert.Equal(t, map[uint]int{flour.ID: 200, milk.ID: 300}, amounts)

	tagIDs := map[uint]bool{}
	for _, tag := range recipe.Tags {
		tagIDs[tag.ID] = true
	}
	assert.Equal(t, map[uint]bool{breakfast.ID: true, quick.ID: true}, tagIDs)

	// Lines come back with resolved reference data for re-display.
	for _, line := range recipe.Ingredients {
		assert.NotEmpty(t, line.Ingredient.Name)
		assert.NotEmpty(t, line.Ingredient.MeasurementUnit)
	}
}

func TestCreateRecipeDuplicateIngredientRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	tag := seedTag(t, db, "breakfast")

	req := recipeRequest(
		[]models.IngredientLineRequest{
			{ID: flour.ID, Amount: 200},
			{ID: flour.ID, Amount: 100},
		},
		[]uint{tag.ID},
	)

	_, err := svc.CreateRecipe(req, author.ID)
	require.ErrorIs(t, err, models.ErrDuplicateAssociation)

	assert.EqualValues(t, 0, countRows(t, db, &models.Recipe{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.IngredientLine{}))
}

func TestCreateRecipeDuplicateTagRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	tag := seedTag(t, db, "breakfast")

	req := recipeRequest(
		[]models.IngredientLineRequest{{ID: flour.ID, Amount: 200}},
		[]uint{tag.ID, tag.ID},
	)

	_, err := svc.CreateRecipe(req, author.ID)
	require.ErrorIs(t, err, models.ErrDuplicateAssociation)
	assert.EqualValues(t, 0, countRows(t, db, &models.Recipe{}))
}

func TestCreateRecipeAmountBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	tag := seedTag(t, db, "breakfast")

	for _, amount := range []int{0, 1001} {
		req := recipeRequest(
			[]models.IngredientLineRequest{{ID: flour.ID, Amount: amount}},
			[]uint{tag.ID},
		)

		_, err := svc.CreateRecipe(req, author.ID)
		require.ErrorIs(t, err, models.ErrValidation, "amount %d must be rejected", amount)
	}

	assert.EqualValues(t, 0, countRows(t, db, &models.Recipe{}))
}

func TestCreateRecipeCookingTimeBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	tag := seedTag(t, db, "breakfast")

	for _, cookingTime := range []int{0, 301} {
		req := recipeRequest(
			[]models.IngredientLineRequest{{ID: flour.ID, Amount: 200}},
			[]uint{tag.ID},
		)
		req.CookingTime = cookingTime

		_, err := svc.CreateRecipe(req, author.ID)
		require.ErrorIs(t, err, models.ErrValidation, "cooking time %d must be rejected", cookingTime)
	}
}

func TestCreateRecipeEmptyCollectionsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	tag := seedTag(t, db, "breakfast")

	noIngredients := recipeRequest(nil, []uint{tag.ID})
	_, err := svc.CreateRecipe(noIngredients, author.ID)
	require.ErrorIs(t, err, models.ErrValidation)

	noTags := recipeRequest([]models.IngredientLineRequest{{ID: flour.ID, Amount: 200}}, nil)
	_, err = svc.CreateRecipe(noTags, author.ID)
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateRecipeUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	tag := seedTag(t, db, "breakfast")

	unknownIngredient := recipeRequest(
		[]models.IngredientLineRequest{{ID: flour.ID + 100, Amount: 200}},
		[]uint{tag.ID},
	)
	_, err := svc.CreateRecipe(unknownIngredient, author.ID)
	require.ErrorIs(t, err, models.ErrUnknownReference)

	unknownTag := recipeRequest(
		[]models.IngredientLineRequest{{ID: flour.ID, Amount: 200}},
		[]uint{tag.ID + 100},
	)
	_, err = svc.CreateRecipe(unknownTag, author.ID)
	require.ErrorIs(t, err, models.ErrUnknownReference)

	assert.EqualValues(t, 0, countRows(t, db, &models.Recipe{}))
}

func TestUpdateRecipeReplacesAssociations(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	milk := seedIngredient(t, db, "milk", "ml")
	breakfast := seedTag(t, db, "breakfast")
	dinner := seedTag(t, db, "dinner")

	created, err := svc.CreateRecipe(recipeRequest(
		[]models.IngredientLineRequest{
			{ID: flour.ID, Amount: 200},
			{ID: milk.ID, Amount: 300},
		},
		[]uint{breakfast.ID},
	), author.ID)
	require.NoError(t, err)

	update := recipeRequest(
		[]models.IngredientLineRequest{{ID: milk.ID, Amount: 150}},
		[]uint{dinner.ID},
	)
	update.Name = "Milk soup"

	updated, err := svc.UpdateRecipe(created.ID, update, author.ID)
	require.NoError(t, err)

	assert.Equal(t, "Milk soup", updated.Name)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, milk.ID, updated.Ingredients[0].IngredientID)
	assert.Equal(t, 150, updated.Ingredients[0].Amount)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, dinner.ID, updated.Tags[0].ID)

	// The dropped line is gone, not merged.
	assert.EqualValues(t, 1, countRows(t, db, &models.IngredientLine{}))
}

func TestUpdateRecipeFailedValidationLeavesStateIntact(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	milk := seedIngredient(t, db, "milk", "ml")
	tag := seedTag(t, db, "breakfast")

	created, err := svc.CreateRecipe(recipeRequest(
		[]models.IngredientLineRequest{
			{ID: flour.ID, Amount: 200},
			{ID: milk.ID, Amount: 300},
		},
		[]uint{tag.ID},
	), author.ID)
	require.NoError(t, err)

	badUpdate := recipeRequest(
		[]models.IngredientLineRequest{{ID: flour.ID, Amount: 2000}},
		[]uint{tag.ID},
	)
	_, err = svc.UpdateRecipe(created.ID, badUpdate, author.ID)
	require.ErrorIs(t, err, models.ErrValidation)

	current, err := svc.GetRecipe(created.ID)
	require.NoError(t, err)
	assert.Len(t, current.Ingredients, 2)
}

func TestUpdateRecipeRejectsNonAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "flour", "g")
	tag := seedTag(t, db, "breakfast")

	req := recipeRequest([]models.IngredientLineRequest{{ID: flour.ID, Amount: 200}}, []uint{tag.ID})
	created, err := svc.CreateRecipe(req, author.ID)
	require.NoError(t, err)

	_, err = svc.UpdateRecipe(created.ID, req, other.ID)
	require.ErrorIs(t, err, models.ErrAuthorization)

	err = svc.DeleteRecipe(created.ID, other.ID)
	require.ErrorIs(t, err, models.ErrAuthorization)
}

func TestDeleteRecipeRemovesAssociations(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(db)

	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "flour", "g")
	tag := seedTag(t, db, "breakfast")

	req := recipeRequest([]models.IngredientLineRequest{{ID: flour.ID, Amount: 200}}, []uint{tag.ID})
	created, err := svc.CreateRecipe(req, author.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(created.ID, author.ID))

	_, err = svc.GetRecipe(created.ID)
	require.ErrorIs(t, err, models.ErrUnknownReference)
	assert.EqualValues(t, 0, countRows(t, db, &models.IngredientLine{}))
}
