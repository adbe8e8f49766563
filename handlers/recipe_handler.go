package handlers

import (
	"net/http"
	"strconv"

	"foodgram-backend/helper"
	"foodgram-backend/models"
	"foodgram-backend/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type RecipeHandler struct {
	recipeService       services.RecipeService
	relationService     services.RelationService
	shoppingListService services.ShoppingListService
	Helper              *helper.HTTPHelper
}

func NewRecipeHandler(recipeService services.RecipeService, relationService services.RelationService, shoppingListService services.ShoppingListService, httpHelper *helper.HTTPHelper) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		relationService:     relationService,
		shoppingListService: shoppingListService,
		Helper:              httpHelper,
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		h.Helper.SendValidationError(c, err.(validator.ValidationErrors))
		return
	}

	recipe, err := h.recipeService.CreateRecipe(req, userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	flags, err := h.relationService.RecipeFlags(userID.(uint), recipe)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Recipe created successfully", services.ProjectRecipe(recipe, models.ProjectionFull, flags))
}

func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var params models.RecipeListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	recipes, total, err := h.recipeService.GetRecipes(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(recipes))
	for i := range recipes {
		flags, err := h.relationService.RecipeFlags(userID.(uint), &recipes[i])
		if err != nil {
			h.Helper.SendDomainError(c, err)
			return
		}
		responses = append(responses, services.ProjectRecipe(&recipes[i], models.ProjectionFull, flags))
	}

	h.Helper.SendSuccess(c, "Success", map[string]interface{}{
		"recipes": responses,
		"paging":  h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	recipe, err := h.recipeService.GetRecipe(uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	flags, err := h.relationService.RecipeFlags(userID.(uint), recipe)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", services.ProjectRecipe(recipe, models.ProjectionFull, flags))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		h.Helper.SendValidationError(c, err.(validator.ValidationErrors))
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(uint(id), req, userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	flags, err := h.relationService.RecipeFlags(userID.(uint), recipe)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe updated successfully", services.ProjectRecipe(recipe, models.ProjectionFull, flags))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.recipeService.DeleteRecipe(uint(id), userID.(uint)); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	recipe, err := h.relationService.AddFavorite(userID.(uint), uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Recipe added to favorites", services.ProjectRecipe(recipe, models.ProjectionSummary, models.RecipeFlags{}))
}

func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.relationService.RemoveFavorite(userID.(uint), uint(id)); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe removed from favorites", h.Helper.EmptyJsonMap())
}

func (h *RecipeHandler) AddToCart(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	recipe, err := h.relationService.AddToCart(userID.(uint), uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Recipe added to shopping cart", services.ProjectRecipe(recipe, models.ProjectionSummary, models.RecipeFlags{}))
}

func (h *RecipeHandler) RemoveFromCart(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.relationService.RemoveFromCart(userID.(uint), uint(id)); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe removed from shopping cart", h.Helper.EmptyJsonMap())
}

func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	userID, _ := c.Get("user_id")

	text, err := h.shoppingListService.RenderText(userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	c.String(http.StatusOK, text)
}
