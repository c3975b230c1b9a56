package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	login   *action.Action
	profile *action.Action
}

func NewAuthHandler(reg *action.Registry, authService services.AuthService) *AuthHandler {
	h := &AuthHandler{}

	h.login = reg.Public(func() any { return new(models.LoginRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return authService.Login(input.(*models.LoginRequest))
		})

	h.profile = reg.Read(nil,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return authService.GetProfile(actor.ID)
		})

	return h
}

func (h *AuthHandler) Login(c *gin.Context) {
	helper.Respond(c, h.login.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *AuthHandler) Profile(c *gin.Context) {
	helper.Respond(c, h.profile.Invoke(c.Request.Context(), helper.ActorFrom(c), nil))
}
