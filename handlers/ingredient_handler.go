package handlers

import (
	"strconv"

	"foodgram-backend/helper"
	"foodgram-backend/services"

	"github.com/gin-gonic/gin"
)

type IngredientHandler struct {
	ingredientService services.IngredientService
	Helper            *helper.HTTPHelper
}

func NewIngredientHandler(ingredientService services.IngredientService, httpHelper *helper.HTTPHelper) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService, Helper: httpHelper}
}

func (h *IngredientHandler) GetIngredients(c *gin.Context) {
	ingredients, err := h.ingredientService.GetIngredients(c.Query("name"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredients)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ingredient ID", h.Helper.EmptyJsonMap())
		return
	}

	ingredient, err := h.ingredientService.GetIngredient(uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredient)
}
