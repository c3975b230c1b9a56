package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes user management. Every operation here is
// super_admin-only, including reads.
type UserHandler struct {
	list          *action.Action
	get           *action.Action
	create        *action.Action
	update        *action.Action
	resetPassword *action.Action
	remove        *action.Action
}

func NewUserHandler(reg *action.Registry, userService services.UserService) *UserHandler {
	h := &UserHandler{}

	h.list = reg.SuperAdmin(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			users, total, err := userService.GetList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: users, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.get = reg.SuperAdmin(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return userService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.SuperAdmin(func() any { return new(models.CreateUserRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return userService.Create(input.(*models.CreateUserRequest))
		})

	h.update = reg.SuperAdmin(func() any { return new(models.UpdateUserRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return userService.Update(input.(*models.UpdateUserRequest))
		})

	h.resetPassword = reg.SuperAdmin(func() any { return new(models.ResetPasswordRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := userService.ResetPassword(input.(*models.ResetPasswordRequest)); err != nil {
				return nil, err
			}
			return gin.H{"message": "password reset"}, nil
		})

	h.remove = reg.SuperAdmin(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := userService.Delete(actor, input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "user deleted"}, nil
		})

	return h
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.update.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdateUserRequest).ID = id
		return nil
	}))
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.resetPassword.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.ResetPasswordRequest).ID = id
		return nil
	}))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
