package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	list   *action.Action
	get    *action.Action
	create *action.Action
	remove *action.Action
}

func NewTagHandler(reg *action.Registry, tagService services.TagService) *TagHandler {
	h := &TagHandler{}

	h.list = reg.Read(nil,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return tagService.GetAll()
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return tagService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.Write(func() any { return new(models.CreateTagRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return tagService.Create(input.(*models.CreateTagRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := tagService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "tag deleted"}, nil
		})

	return h
}

func (h *TagHandler) GetTags(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), nil))
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
