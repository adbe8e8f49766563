package handlers

import (
	"strconv"

	"foodgram-backend/helper"
	"foodgram-backend/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	relationService services.RelationService
	Helper          *helper.HTTPHelper
}

func NewUserHandler(relationService services.RelationService, httpHelper *helper.HTTPHelper) *UserHandler {
	return &UserHandler{relationService: relationService, Helper: httpHelper}
}

func (h *UserHandler) Subscribe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.relationService.Subscribe(userID.(uint), uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Subscribed successfully", services.ProjectUser(user, true))
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.relationService.Unsubscribe(userID.(uint), uint(id)); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Unsubscribed successfully", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) GetSubscriptions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	subscriptions, err := h.relationService.GetSubscriptions(userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", subscriptions)
}
