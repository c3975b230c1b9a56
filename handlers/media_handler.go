package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	list   *action.Action
	get    *action.Action
	create *action.Action
	update *action.Action
	remove *action.Action
}

func NewMediaHandler(reg *action.Registry, mediaService services.MediaService) *MediaHandler {
	h := &MediaHandler{}

	h.list = reg.Read(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			items, total, err := mediaService.GetList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: items, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return mediaService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.Write(func() any { return new(models.CreateMediaItemRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return mediaService.Create(input.(*models.CreateMediaItemRequest))
		})

	h.update = reg.Write(func() any { return new(models.UpdateMediaItemRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return mediaService.Update(input.(*models.UpdateMediaItemRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := mediaService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "media item deleted"}, nil
		})

	return h
}

func (h *MediaHandler) GetMediaItems(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *MediaHandler) GetMediaItem(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *MediaHandler) CreateMediaItem(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *MediaHandler) UpdateMediaItem(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.update.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdateMediaItemRequest).ID = id
		return nil
	}))
}

func (h *MediaHandler) DeleteMediaItem(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
