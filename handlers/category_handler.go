package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	list   *action.Action
	get    *action.Action
	create *action.Action
	update *action.Action
	remove *action.Action
}

func NewCategoryHandler(reg *action.Registry, categoryService services.CategoryService) *CategoryHandler {
	h := &CategoryHandler{}

	h.list = reg.Read(nil,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return categoryService.GetAll()
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return categoryService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.Write(func() any { return new(models.CreateCategoryRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return categoryService.Create(input.(*models.CreateCategoryRequest))
		})

	h.update = reg.Write(func() any { return new(models.UpdateCategoryRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return categoryService.Update(input.(*models.UpdateCategoryRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := categoryService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "category deleted"}, nil
		})

	return h
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), nil))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.update.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdateCategoryRequest).ID = id
		return nil
	}))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
