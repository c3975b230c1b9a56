package handlers

import (
	"context"

	"backoffice-api/action"
	"backoffice-api/helper"
	"backoffice-api/models"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	list       *action.Action
	publicList *action.Action
	get        *action.Action
	create     *action.Action
	update     *action.Action
	remove     *action.Action
}

func NewPostHandler(reg *action.Registry, postService services.PostService) *PostHandler {
	h := &PostHandler{}

	h.list = reg.Read(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			posts, total, err := postService.GetList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: posts, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.publicList = reg.Public(newListInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			params := input.(*models.ListParams)
			params.Normalize()
			posts, total, err := postService.GetPublicList(*params)
			if err != nil {
				return nil, err
			}
			return models.Paged{Items: posts, Total: total, Page: params.Page, Limit: params.Limit}, nil
		})

	h.get = reg.Read(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return postService.Get(input.(*models.IDRequest).ID)
		})

	h.create = reg.Write(func() any { return new(models.CreatePostRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return postService.Create(actor, input.(*models.CreatePostRequest))
		})

	h.update = reg.Write(func() any { return new(models.UpdatePostRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return postService.Update(actor, input.(*models.UpdatePostRequest))
		})

	h.remove = reg.Delete(newIDInput,
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			if err := postService.Delete(input.(*models.IDRequest).ID); err != nil {
				return nil, err
			}
			return gin.H{"message": "post deleted"}, nil
		})

	return h
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	helper.Respond(c, h.list.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *PostHandler) GetPublicPosts(c *gin.Context) {
	helper.Respond(c, h.publicList.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindQuery))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.get.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	helper.Respond(c, h.create.Invoke(c.Request.Context(), helper.ActorFrom(c), c.ShouldBindJSON))
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.update.Invoke(c.Request.Context(), helper.ActorFrom(c), func(dst any) error {
		if err := c.ShouldBindJSON(dst); err != nil {
			return err
		}
		dst.(*models.UpdatePostRequest).ID = id
		return nil
	}))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := helper.ParseIDParam(c, "id")
	if !ok {
		return
	}
	helper.Respond(c, h.remove.Invoke(c.Request.Context(), helper.ActorFrom(c), bindID(id)))
}
